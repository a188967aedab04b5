package artifacts

// Code tags a spike with the detector that flagged it. Zero means no detector
// flagged the spike. The codes are powers of two but are assigned, not
// combined: a spike flagged by several detectors keeps only the code of the
// last one in the fixed execution order.
type Code int8

const (
	CodeNone      Code = 0
	CodeRate      Code = 1
	CodeAmplitude Code = 2
	CodeBincount  Code = 4
	CodeDouble    Code = 8
)

// RateSpec parameterizes the firing-rate saturation detector.
// The defaults flag bins firing above 200 Hz.
type RateSpec struct {
	Code            Code
	Name            string
	BinLength       float64 // msec
	MaxSpikesPerBin int
}

// AmplitudeSpec parameterizes the absolute amplitude detector.
type AmplitudeSpec struct {
	Code      Code
	Name      string
	MaxHeight float64 // µV
}

// BincountSpec parameterizes the cross-channel concurrent-activity detector.
type BincountSpec struct {
	Code               Code
	Name               string
	MaxChannelFraction float64
}

// DoubleSpec parameterizes the duplicate-pair detector. FeatureIndex is the
// waveform sample compared between the two spikes of a close pair.
type DoubleSpec struct {
	Code         Code
	Name         string
	FeatureIndex int
	MinDist      float64 // msec
}

// Specs bundles the four detector parameter sets. Constructed once at process
// start and passed explicitly; never read from ambient state.
type Specs struct {
	Rate      RateSpec
	Amplitude AmplitudeSpec
	Bincount  BincountSpec
	Double    DoubleSpec
}

// DefaultSpecs returns the fixed production detector parameters.
func DefaultSpecs() Specs {
	return Specs{
		Rate: RateSpec{
			Code:            CodeRate,
			Name:            "rate",
			BinLength:       500,
			MaxSpikesPerBin: 100,
		},
		Amplitude: AmplitudeSpec{
			Code:      CodeAmplitude,
			Name:      "amplitude",
			MaxHeight: 1000,
		},
		Bincount: BincountSpec{
			Code:               CodeBincount,
			Name:               "bincount",
			MaxChannelFraction: 0.5,
		},
		Double: DoubleSpec{
			Code:         CodeDouble,
			Name:         "double",
			FeatureIndex: 18,
			MinDist:      1.5,
		},
	}
}

// CodeName returns the human-readable name for a detector code.
func CodeName(c Code) string {
	switch c {
	case CodeNone:
		return "clean"
	case CodeRate:
		return "rate"
	case CodeAmplitude:
		return "amplitude"
	case CodeBincount:
		return "bincount"
	case CodeDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Codes lists the detector codes in pipeline execution order.
func Codes() []Code {
	return []Code{CodeRate, CodeAmplitude, CodeBincount, CodeDouble}
}
