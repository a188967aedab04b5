package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"spikemask/internal/store"
)

func openRecording(t *testing.T) *store.Recording {
	t.Helper()
	rec, err := store.Open(filepath.Join(t.TempDir(), "data_test.sdb"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestTimesRoundTrip(t *testing.T) {
	rec := openRecording(t)
	ctx := context.Background()

	times := []float64{0, 1.5, 3.25, 600}
	if err := rec.PutTimes(ctx, store.SignPositive, times); err != nil {
		t.Fatalf("PutTimes failed: %v", err)
	}

	got, err := rec.Times(ctx, store.SignPositive)
	if err != nil {
		t.Fatalf("Times failed: %v", err)
	}
	if len(got) != len(times) {
		t.Fatalf("expected %d times, got %d", len(times), len(got))
	}
	for i := range times {
		if got[i] != times[i] {
			t.Fatalf("time %d: expected %v, got %v", i, times[i], got[i])
		}
	}
}

func TestTimesMissingRecord(t *testing.T) {
	rec := openRecording(t)

	_, err := rec.Times(context.Background(), store.SignNegative)
	if !errors.Is(err, store.ErrRecordMissing) {
		t.Fatalf("expected ErrRecordMissing, got %v", err)
	}
}

func TestWaveformsRoundTrip(t *testing.T) {
	rec := openRecording(t)
	ctx := context.Background()

	w := store.Waveforms{Rows: 2, Cols: 3, Samples: []float64{1, 2, 3, 4, 5, 6}}
	if err := rec.PutWaveforms(ctx, store.SignNegative, w); err != nil {
		t.Fatalf("PutWaveforms failed: %v", err)
	}

	got, err := rec.Waveforms(ctx, store.SignNegative)
	if err != nil {
		t.Fatalf("Waveforms failed: %v", err)
	}
	if got.Rows != 2 || got.Cols != 3 {
		t.Fatalf("expected 2x3 matrix, got %dx%d", got.Rows, got.Cols)
	}
	row := got.Row(1)
	if row[0] != 4 || row[2] != 6 {
		t.Fatalf("unexpected second row: %v", row)
	}
}

func TestPutWaveformsRejectsBadShape(t *testing.T) {
	rec := openRecording(t)

	w := store.Waveforms{Rows: 2, Cols: 3, Samples: []float64{1, 2, 3}}
	if err := rec.PutWaveforms(context.Background(), store.SignPositive, w); err == nil {
		t.Fatal("expected error for shape mismatch")
	}
}

func TestArtifactCodesCreatesZeroFilled(t *testing.T) {
	rec := openRecording(t)
	ctx := context.Background()

	codes, err := rec.ArtifactCodes(ctx, store.SignPositive, 4)
	if err != nil {
		t.Fatalf("ArtifactCodes failed: %v", err)
	}
	if len(codes) != 4 {
		t.Fatalf("expected 4 codes, got %d", len(codes))
	}
	for i, c := range codes {
		if c != 0 {
			t.Fatalf("code %d: expected 0, got %d", i, c)
		}
	}

	has, err := rec.HasArtifacts(ctx, store.SignPositive)
	if err != nil {
		t.Fatalf("HasArtifacts failed: %v", err)
	}
	if !has {
		t.Fatal("expected artifacts record created")
	}
}

func TestArtifactCodesPersistAndReload(t *testing.T) {
	rec := openRecording(t)
	ctx := context.Background()

	codes := []int8{0, 1, 2, 4, 8}
	if err := rec.PutArtifactCodes(ctx, store.SignNegative, codes); err != nil {
		t.Fatalf("PutArtifactCodes failed: %v", err)
	}

	got, err := rec.ArtifactCodes(ctx, store.SignNegative, 5)
	if err != nil {
		t.Fatalf("ArtifactCodes failed: %v", err)
	}
	for i := range codes {
		if got[i] != codes[i] {
			t.Fatalf("code %d: expected %d, got %d", i, codes[i], got[i])
		}
	}
}

func TestArtifactCodesLengthMismatchResets(t *testing.T) {
	rec := openRecording(t)
	ctx := context.Background()

	if err := rec.PutArtifactCodes(ctx, store.SignPositive, []int8{1, 2}); err != nil {
		t.Fatalf("PutArtifactCodes failed: %v", err)
	}

	codes, err := rec.ArtifactCodes(ctx, store.SignPositive, 3)
	if err != nil {
		t.Fatalf("ArtifactCodes failed: %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("expected 3 codes, got %d", len(codes))
	}
	for i, c := range codes {
		if c != 0 {
			t.Fatalf("code %d: expected 0 after reset, got %d", i, c)
		}
	}
}
