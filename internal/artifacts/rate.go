package artifacts

// MarkRateSaturation flags every spike inside a time bin holding more than
// MaxSpikesPerBin events. The time range is binned twice, once anchored at the
// first timestamp and once shifted by half a bin, so a saturated burst cannot
// slip through by straddling an arbitrary bin boundary. An anchoring with
// fewer than two edges contributes nothing.
func MarkRateSaturation(times []float64, spec RateSpec) ([]bool, Code) {
	mask := make([]bool, len(times))
	if len(times) == 0 {
		return mask, spec.Code
	}

	first, last := times[0], times[len(times)-1]
	for _, shift := range []float64{0, spec.BinLength / 2} {
		edges := binEdges(first+shift, last+shift, spec.BinLength)
		if len(edges) < 2 {
			continue
		}
		for k := 0; k+1 < len(edges); k++ {
			lo := searchGE(times, edges[k])
			var hi int
			if k+1 == len(edges)-1 {
				// The final bin is closed on the right.
				hi = searchGT(times, edges[k+1])
			} else {
				hi = searchGE(times, edges[k+1])
			}
			if hi-lo > spec.MaxSpikesPerBin {
				markWindow(mask, times, edges[k], edges[k]+spec.BinLength)
			}
		}
	}
	return mask, spec.Code
}
