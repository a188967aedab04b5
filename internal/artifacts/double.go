package artifacts

import (
	"spikemask/internal/store"
)

// MarkDoubles flags one spike of every adjacent pair closer together than
// MinDist: such pairs are almost certainly two detections of the same event.
// The spike with the better feature value at FeatureIndex is kept (larger for
// positive polarity, smaller for negative); the other is flagged. When the
// comparison is not strictly in the earlier spike's favor, including exact
// ties, the earlier spike is the one flagged.
func MarkDoubles(times []float64, w store.Waveforms, sign store.Sign, spec DoubleSpec) ([]bool, Code) {
	mask := make([]bool, len(times))
	if spec.FeatureIndex < 0 || spec.FeatureIndex >= w.Cols {
		return mask, spec.Code
	}

	for i := 0; i+1 < len(times); i++ {
		if times[i+1]-times[i] >= spec.MinDist {
			continue
		}
		current := w.Row(i)[spec.FeatureIndex]
		next := w.Row(i + 1)[spec.FeatureIndex]

		kill := i
		if sign == store.SignPositive && current > next {
			kill = i + 1
		} else if sign == store.SignNegative && current < next {
			kill = i + 1
		}
		mask[kill] = true
	}
	return mask, spec.Code
}
