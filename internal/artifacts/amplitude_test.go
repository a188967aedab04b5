package artifacts

import (
	"errors"
	"testing"

	"spikemask/internal/store"
)

func testAmplitudeSpec() AmplitudeSpec {
	return AmplitudeSpec{Code: CodeAmplitude, Name: "amplitude", MaxHeight: 1000}
}

func waveformsFromRows(rows [][]float64) store.Waveforms {
	w := store.Waveforms{Rows: len(rows)}
	if len(rows) > 0 {
		w.Cols = len(rows[0])
	}
	for _, row := range rows {
		w.Samples = append(w.Samples, row...)
	}
	return w
}

func TestMarkAmplitudePositive(t *testing.T) {
	w := waveformsFromRows([][]float64{
		{10, 999.9, 20},
		{10, 1000, 20},
		{10, 1500, 20},
		{-2000, 10, 20}, // large negative swing is fine on the positive sign
	})
	mask, code, err := MarkAmplitude(w, store.SignPositive, testAmplitudeSpec())
	if err != nil {
		t.Fatalf("MarkAmplitude failed: %v", err)
	}
	if code != CodeAmplitude {
		t.Fatalf("expected code %d, got %d", CodeAmplitude, code)
	}
	want := []bool{false, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("spike %d: expected flagged=%v, mask=%v", i, want[i], mask)
		}
	}
}

func TestMarkAmplitudeNegative(t *testing.T) {
	w := waveformsFromRows([][]float64{
		{-10, -999.9, -20},
		{-10, -1000, -20},
		{-10, -1500, -20},
		{2000, -10, -20},
	})
	mask, _, err := MarkAmplitude(w, store.SignNegative, testAmplitudeSpec())
	if err != nil {
		t.Fatalf("MarkAmplitude failed: %v", err)
	}
	want := []bool{false, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("spike %d: expected flagged=%v, mask=%v", i, want[i], mask)
		}
	}
}

func TestMarkAmplitudeUnknownSign(t *testing.T) {
	w := waveformsFromRows([][]float64{{1, 2, 3}})
	_, _, err := MarkAmplitude(w, store.Sign("bipolar"), testAmplitudeSpec())
	if err == nil {
		t.Fatal("expected error for unknown sign")
	}
	if !errors.Is(err, ErrInvalidSign) {
		t.Fatalf("expected ErrInvalidSign, got %v", err)
	}
}
