package artifacts

import (
	"context"
	"errors"
	"log/slog"

	"spikemask/internal/store"
)

// Pipeline runs the detector battery over one recording at a time, one
// polarity at a time, and owns the artifact code array while doing so.
type Pipeline struct {
	specs  Specs
	reset  bool
	logger *slog.Logger
}

// NewPipeline constructs a pipeline. When reset is true the artifact codes of
// a polarity are zeroed before each analysis pass.
func NewPipeline(logger *slog.Logger, specs Specs, reset bool) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{specs: specs, reset: reset, logger: logger}
}

// SignResult summarizes one polarity pass.
type SignResult struct {
	Sign    store.Sign
	Spikes  int
	Skipped bool
	Flagged map[Code]int
	Err     error
}

// RecordingResult collects both polarity passes of one recording. Err is set
// when the recording could not be opened or locked at all.
type RecordingResult struct {
	Path  string
	Signs []SignResult
	Err   error
}

// Failed reports whether the recording or any of its polarities failed.
func (r RecordingResult) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, sr := range r.Signs {
		if sr.Err != nil {
			return true
		}
	}
	return false
}

// Flagged sums the flag counts of a detector code across polarities.
func (r RecordingResult) Flagged(code Code) int {
	total := 0
	for _, sr := range r.Signs {
		total += sr.Flagged[code]
	}
	return total
}

// Spikes sums the processed spike counts across polarities.
func (r RecordingResult) Spikes() int {
	total := 0
	for _, sr := range r.Signs {
		total += sr.Spikes
	}
	return total
}

// ProcessRecording runs both polarities of a recording. Polarity failures are
// logged and recorded in the result; they never abort the other polarity.
// windows may be nil, in which case concurrent-activity rejection is skipped.
func (p *Pipeline) ProcessRecording(ctx context.Context, rec *store.Recording, windows *ContaminatedWindows) RecordingResult {
	result := RecordingResult{Path: rec.Path()}
	for _, sign := range store.Signs() {
		sr := p.processSign(ctx, rec, sign, windows)
		logger := p.logger.With("recording", rec.Path(), "sign", string(sign))
		switch {
		case sr.Err != nil:
			logger.Error("polarity failed", "error", sr.Err)
		case sr.Skipped:
			logger.Info("no spikes, polarity skipped")
		default:
			logger.Info("polarity processed", "spikes", sr.Spikes,
				"rate", sr.Flagged[CodeRate],
				"amplitude", sr.Flagged[CodeAmplitude],
				"bincount", sr.Flagged[CodeBincount],
				"double", sr.Flagged[CodeDouble])
		}
		result.Signs = append(result.Signs, sr)
	}
	return result
}

func (p *Pipeline) processSign(ctx context.Context, rec *store.Recording, sign store.Sign, windows *ContaminatedWindows) SignResult {
	result := SignResult{Sign: sign, Flagged: make(map[Code]int)}

	times, err := rec.Times(ctx, sign)
	if errors.Is(err, store.ErrRecordMissing) || (err == nil && len(times) == 0) {
		result.Skipped = true
		return result
	}
	if err != nil {
		result.Err = Wrap(ErrMissingData, rec.Path(), "load times", string(sign), err)
		return result
	}
	result.Spikes = len(times)

	waveforms, err := rec.Waveforms(ctx, sign)
	if err != nil {
		result.Err = Wrap(ErrDataConsistency, rec.Path(), "load waveforms", string(sign), err)
		return result
	}
	if waveforms.Rows != len(times) {
		result.Err = Wrap(ErrDataConsistency, rec.Path(), "load waveforms",
			string(sign)+": spike count mismatch between times and waveforms", nil)
		return result
	}

	codes, err := rec.ArtifactCodes(ctx, sign, len(times))
	if err != nil {
		result.Err = err
		return result
	}
	if p.reset {
		for i := range codes {
			codes[i] = 0
		}
	}

	mask, code := MarkRateSaturation(times, p.specs.Rate)
	result.Flagged[code] = apply(codes, mask, code)

	mask, code, err = MarkAmplitude(waveforms, sign, p.specs.Amplitude)
	if err != nil {
		result.Err = err
		return result
	}
	result.Flagged[code] = apply(codes, mask, code)

	if windows != nil {
		mask, code = MarkConcurrent(times, *windows, p.specs.Bincount)
		result.Flagged[code] = apply(codes, mask, code)
	}

	mask, code = MarkDoubles(times, waveforms, sign, p.specs.Double)
	result.Flagged[code] = apply(codes, mask, code)

	for c, n := range result.Flagged {
		p.logger.Debug("marked spikes", "recording", rec.Path(), "sign", string(sign),
			"detector", CodeName(c), "count", n)
	}

	if err := rec.PutArtifactCodes(ctx, sign, codes); err != nil {
		result.Err = err
		return result
	}
	return result
}

// apply assigns the detector code to every flagged spike, overwriting any
// code an earlier detector left there, and returns the flag count.
func apply(codes []int8, mask []bool, code Code) int {
	count := 0
	for i, flagged := range mask {
		if flagged {
			codes[i] = int8(code)
			count++
		}
	}
	return count
}
