package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Discover resolves a batch target into the list of recording files to
// process. A file target is returned as-is; a directory target is globbed
// with the configured recording pattern.
func Discover(target, pattern string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat target %q: %w", target, err)
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	matches, err := filepath.Glob(filepath.Join(target, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q in %q: %w", pattern, target, err)
	}
	files := matches[:0]
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && !info.IsDir() {
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}
