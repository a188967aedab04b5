// Package testsupport provides shared fixtures for spikemask tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"spikemask/internal/config"
)

// NewConfig produces a config seeded with a unique temp log directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
	cfg.Analysis.LockTimeoutSeconds = 1
	return &cfg
}
