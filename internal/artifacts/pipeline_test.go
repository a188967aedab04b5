package artifacts_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"spikemask/internal/artifacts"
	"spikemask/internal/store"
	"spikemask/internal/testsupport"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSpecs() artifacts.Specs {
	specs := artifacts.DefaultSpecs()
	specs.Rate.MaxSpikesPerBin = 2
	specs.Double.FeatureIndex = 0
	return specs
}

func TestPipelineEndToEnd(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_e2e.sdb"))
	times := []float64{0, 10, 10.2, 600}
	w := store.Waveforms{Rows: 4, Cols: 1, Samples: []float64{5, 8, 3, 2}}
	testsupport.SeedSpikeTrain(t, rec, store.SignPositive, times, w)

	pipeline := artifacts.NewPipeline(discardLogger(), testSpecs(), true)
	result := pipeline.ProcessRecording(context.Background(), rec, nil)
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	codes, err := rec.Artifacts(context.Background(), store.SignPositive)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}
	// The saturated bin tags the first three spikes; the close pair then
	// retags its loser (smaller feature, positive sign) with the double code.
	want := []int8{1, 1, 8, 0}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("spike %d: expected code %d, got %v", i, want[i], codes)
		}
	}
}

func TestPipelineResetIdempotence(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_reset.sdb"))
	times := []float64{0, 10, 10.2, 600}
	w := store.Waveforms{Rows: 4, Cols: 1, Samples: []float64{5, 8, 3, 2}}
	testsupport.SeedSpikeTrain(t, rec, store.SignPositive, times, w)

	pipeline := artifacts.NewPipeline(discardLogger(), testSpecs(), true)
	ctx := context.Background()

	pipeline.ProcessRecording(ctx, rec, nil)
	first, err := rec.Artifacts(ctx, store.SignPositive)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}

	pipeline.ProcessRecording(ctx, rec, nil)
	second, err := rec.Artifacts(ctx, store.SignPositive)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("code array length changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("spike %d: codes differ between runs: %v vs %v", i, first, second)
		}
	}
}

func TestPipelineOverwriteSemantics(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_overwrite.sdb"))
	// Three spikes saturate the first bin; the middle one also breaches the
	// amplitude bound. Amplitude runs after rate, so its code wins.
	times := []float64{0, 10, 20, 600}
	w := store.Waveforms{Rows: 4, Cols: 1, Samples: []float64{5, 1200, 3, 2}}
	testsupport.SeedSpikeTrain(t, rec, store.SignPositive, times, w)

	pipeline := artifacts.NewPipeline(discardLogger(), testSpecs(), true)
	result := pipeline.ProcessRecording(context.Background(), rec, nil)
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	codes, err := rec.Artifacts(context.Background(), store.SignPositive)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}
	want := []int8{1, 2, 1, 0}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("spike %d: expected code %d, got %v", i, want[i], codes)
		}
	}
}

func TestPipelineConcurrentRejectionOrder(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_conc.sdb"))
	// Both spikes of a close pair sit in a contaminated window; the double
	// detector runs last and retags the pair's loser.
	times := []float64{1000, 1000.5}
	w := store.Waveforms{Rows: 2, Cols: 1, Samples: []float64{9, 4}}
	testsupport.SeedSpikeTrain(t, rec, store.SignPositive, times, w)

	windows := &artifacts.ContaminatedWindows{Edges: []float64{800}, BinLength: 500}
	pipeline := artifacts.NewPipeline(discardLogger(), testSpecs(), true)
	result := pipeline.ProcessRecording(context.Background(), rec, windows)
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	codes, err := rec.Artifacts(context.Background(), store.SignPositive)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}
	want := []int8{4, 8}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("spike %d: expected code %d, got %v", i, want[i], codes)
		}
	}
}

func TestPipelineSkipsEmptyPolarity(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_skip.sdb"))
	ctx := context.Background()
	if err := rec.PutTimes(ctx, store.SignPositive, nil); err != nil {
		t.Fatalf("PutTimes: %v", err)
	}

	pipeline := artifacts.NewPipeline(discardLogger(), artifacts.DefaultSpecs(), true)
	result := pipeline.ProcessRecording(ctx, rec, nil)
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}
	for _, sr := range result.Signs {
		if !sr.Skipped {
			t.Fatalf("expected polarity %s skipped, got %+v", sr.Sign, sr)
		}
	}

	for _, sign := range store.Signs() {
		has, err := rec.HasArtifacts(ctx, sign)
		if err != nil {
			t.Fatalf("HasArtifacts failed: %v", err)
		}
		if has {
			t.Fatalf("expected no artifacts record for skipped polarity %s", sign)
		}
	}
}

func TestPipelineMismatchFailsOnePolarityOnly(t *testing.T) {
	rec := testsupport.MustOpenRecording(t, testsupport.RecordingPath(t, "data_mismatch.sdb"))
	ctx := context.Background()

	// Positive polarity: five timestamps but only four waveform rows.
	if err := rec.PutTimes(ctx, store.SignPositive, []float64{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("PutTimes: %v", err)
	}
	if err := rec.PutWaveforms(ctx, store.SignPositive, testsupport.FlatWaveforms(4, 3, 1)); err != nil {
		t.Fatalf("PutWaveforms: %v", err)
	}
	// Negative polarity is consistent and must still complete.
	testsupport.SeedSpikeTrain(t, rec, store.SignNegative, []float64{10, 500}, testsupport.FlatWaveforms(2, 3, -5))

	pipeline := artifacts.NewPipeline(discardLogger(), artifacts.DefaultSpecs(), true)
	result := pipeline.ProcessRecording(ctx, rec, nil)

	if !result.Failed() {
		t.Fatal("expected recording marked failed")
	}
	pos, neg := result.Signs[0], result.Signs[1]
	if !errors.Is(pos.Err, artifacts.ErrDataConsistency) {
		t.Fatalf("expected data consistency error for pos, got %v", pos.Err)
	}
	if neg.Err != nil || neg.Skipped {
		t.Fatalf("expected neg polarity processed, got %+v", neg)
	}

	codes, err := rec.Artifacts(ctx, store.SignNegative)
	if err != nil {
		t.Fatalf("Artifacts failed: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("expected 2 codes for neg, got %d", len(codes))
	}
}
