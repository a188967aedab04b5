package artifacts

import (
	"spikemask/internal/store"
)

// ContaminatedWindows is the per-session output of the concurrent-activity
// resolver: the start edges of bins where too many channels fired at once,
// plus the bin width. Derived once and reused across polarities.
type ContaminatedWindows struct {
	Edges     []float64
	BinLength float64
}

// ResolveContaminatedEdges converts a raw per-bin channel-count profile into
// the list of contaminated bin start edges. A bin is contaminated when its
// channel count exceeds MaxChannelFraction of the total channel count.
func ResolveContaminatedEdges(profile store.ConcurrentProfile, spec BincountSpec) ContaminatedWindows {
	edges := binEdges(profile.Start, profile.Stop, profile.BinLength)
	cutoff := spec.MaxChannelFraction * float64(profile.Channels)

	windows := ContaminatedWindows{BinLength: profile.BinLength}
	bins := len(edges) - 1
	if bins > len(profile.Counts) {
		bins = len(profile.Counts)
	}
	for k := 0; k < bins; k++ {
		if float64(profile.Counts[k]) > cutoff {
			windows.Edges = append(windows.Edges, edges[k])
		}
	}
	return windows
}

// MarkConcurrent flags every spike falling in the closed interval
// [edge, edge+binLength] of any contaminated edge.
func MarkConcurrent(times []float64, windows ContaminatedWindows, spec BincountSpec) ([]bool, Code) {
	mask := make([]bool, len(times))
	for _, edge := range windows.Edges {
		markWindow(mask, times, edge, edge+windows.BinLength)
	}
	return mask, spec.Code
}
