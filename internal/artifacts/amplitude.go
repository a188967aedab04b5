package artifacts

import (
	"spikemask/internal/store"
)

// MarkAmplitude flags spikes whose waveform breaches the absolute amplitude
// bound: for positive polarity the row maximum must stay below MaxHeight, for
// negative polarity the row minimum must stay above -MaxHeight.
func MarkAmplitude(w store.Waveforms, sign store.Sign, spec AmplitudeSpec) ([]bool, Code, error) {
	mask := make([]bool, w.Rows)
	if w.Cols == 0 {
		if !sign.Valid() {
			return nil, spec.Code, Wrap(ErrInvalidSign, "", "amplitude", "unknown sign "+string(sign), nil)
		}
		return mask, spec.Code, nil
	}

	switch sign {
	case store.SignPositive:
		for i := 0; i < w.Rows; i++ {
			if rowMax(w.Row(i)) >= spec.MaxHeight {
				mask[i] = true
			}
		}
	case store.SignNegative:
		for i := 0; i < w.Rows; i++ {
			if rowMin(w.Row(i)) <= -spec.MaxHeight {
				mask[i] = true
			}
		}
	default:
		return nil, spec.Code, Wrap(ErrInvalidSign, "", "amplitude", "unknown sign "+string(sign), nil)
	}

	return mask, spec.Code, nil
}

func rowMax(samples []float64) float64 {
	max := samples[0]
	for _, v := range samples[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func rowMin(samples []float64) float64 {
	min := samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
