package artifacts

import (
	"testing"

	"spikemask/internal/store"
)

func testBincountSpec() BincountSpec {
	return BincountSpec{Code: CodeBincount, Name: "bincount", MaxChannelFraction: 0.5}
}

func TestResolveContaminatedEdges(t *testing.T) {
	profile := store.ConcurrentProfile{
		Counts:    []int64{1, 9, 8, 2},
		Channels:  16,
		Start:     0,
		Stop:      2500,
		BinLength: 500,
	}
	windows := ResolveContaminatedEdges(profile, testBincountSpec())

	// Cutoff is 8 channels; only counts strictly above it contaminate.
	if len(windows.Edges) != 1 {
		t.Fatalf("expected 1 contaminated edge, got %v", windows.Edges)
	}
	if windows.Edges[0] != 500 {
		t.Fatalf("expected edge 500, got %v", windows.Edges[0])
	}
	if windows.BinLength != 500 {
		t.Fatalf("expected bin length 500, got %v", windows.BinLength)
	}
}

func TestResolveContaminatedEdgesShortCountProfile(t *testing.T) {
	// Fewer counts than bins: the trailing bins contribute nothing.
	profile := store.ConcurrentProfile{
		Counts:    []int64{9},
		Channels:  10,
		Start:     0,
		Stop:      5000,
		BinLength: 500,
	}
	windows := ResolveContaminatedEdges(profile, testBincountSpec())
	if len(windows.Edges) != 1 || windows.Edges[0] != 0 {
		t.Fatalf("expected only edge 0, got %v", windows.Edges)
	}
}

func TestMarkConcurrentClosedInterval(t *testing.T) {
	times := []float64{499.9, 500, 750, 1000, 1000.1}
	windows := ContaminatedWindows{Edges: []float64{500}, BinLength: 500}

	mask, code := MarkConcurrent(times, windows, testBincountSpec())
	if code != CodeBincount {
		t.Fatalf("expected code %d, got %d", CodeBincount, code)
	}
	want := []bool{false, true, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Fatalf("spike %d: expected flagged=%v, mask=%v", i, want[i], mask)
		}
	}
}

func TestMarkConcurrentNoEdges(t *testing.T) {
	mask, _ := MarkConcurrent([]float64{1, 2, 3}, ContaminatedWindows{BinLength: 500}, testBincountSpec())
	for i, flagged := range mask {
		if flagged {
			t.Fatalf("spike %d flagged without contaminated edges", i)
		}
	}
}
