package artifacts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingData marks a polarity without usable spike data; the polarity
	// is skipped, never failed.
	ErrMissingData = errors.New("missing spike data")
	// ErrDataConsistency marks a spike-count mismatch between times and
	// waveforms. Fatal for the polarity, not for the recording.
	ErrDataConsistency = errors.New("data consistency error")
	// ErrInvalidSign marks an unrecognized polarity sign. This is a
	// programming or configuration error and is surfaced immediately.
	ErrInvalidSign = errors.New("invalid sign")
	// ErrAuxSource marks an unreadable concurrent-activity source.
	ErrAuxSource = errors.New("concurrent activity source error")
)

// Wrap builds an error message that includes recording context while tagging
// it with the provided sentinel for later classification.
func Wrap(marker error, recording, operation, message string, err error) error {
	detail := buildDetail(recording, operation, message)
	if marker == nil {
		marker = ErrDataConsistency
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(recording, operation, message string) string {
	parts := make([]string, 0, 3)
	if recording = strings.TrimSpace(recording); recording != "" {
		parts = append(parts, recording)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "processing failure"
	}
	return strings.Join(parts, ": ")
}
