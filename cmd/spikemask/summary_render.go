package main

import (
	"path/filepath"

	"spikemask/internal/artifacts"
	"spikemask/internal/batch"
)

func renderSummary(summary batch.Summary) string {
	headers := []string{"Recording", "Spikes", "Rate", "Amplitude", "Bincount", "Double", "Status"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(summary.Recordings))
	for _, rec := range summary.Recordings {
		rows = append(rows, []string{
			filepath.Base(rec.Path),
			formatCount(rec.Spikes()),
			formatCount(rec.Flagged(artifacts.CodeRate)),
			formatCount(rec.Flagged(artifacts.CodeAmplitude)),
			formatCount(rec.Flagged(artifacts.CodeBincount)),
			formatCount(rec.Flagged(artifacts.CodeDouble)),
			recordingStatus(rec),
		})
	}
	return renderRows(headers, rows, aligns)
}

func recordingStatus(rec artifacts.RecordingResult) string {
	if rec.Err != nil {
		return "failed: " + rec.Err.Error()
	}
	processed := 0
	for _, sr := range rec.Signs {
		if sr.Err != nil {
			return "failed: " + sr.Err.Error()
		}
		if !sr.Skipped {
			processed++
		}
	}
	if processed == 0 {
		return "skipped"
	}
	return "ok"
}
