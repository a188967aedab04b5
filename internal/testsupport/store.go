package testsupport

import (
	"context"
	"path/filepath"
	"testing"

	"spikemask/internal/store"
)

// RecordingPath returns a recording file path inside a per-test temp dir.
func RecordingPath(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// MustOpenRecording opens a recording store for tests and registers cleanup.
func MustOpenRecording(t testing.TB, path string) *store.Recording {
	t.Helper()

	rec, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		rec.Close()
	})
	return rec
}

// SeedSpikeTrain stores times and waveforms for one polarity.
func SeedSpikeTrain(t testing.TB, rec *store.Recording, sign store.Sign, times []float64, waveforms store.Waveforms) {
	t.Helper()

	ctx := context.Background()
	if err := rec.PutTimes(ctx, sign, times); err != nil {
		t.Fatalf("PutTimes: %v", err)
	}
	if err := rec.PutWaveforms(ctx, sign, waveforms); err != nil {
		t.Fatalf("PutWaveforms: %v", err)
	}
}

// FlatWaveforms builds an n x cols matrix filled with a constant value.
func FlatWaveforms(n, cols int, value float64) store.Waveforms {
	samples := make([]float64, n*cols)
	for i := range samples {
		samples[i] = value
	}
	return store.Waveforms{Rows: n, Cols: cols, Samples: samples}
}
