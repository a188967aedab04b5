// Package batch discovers recording files and runs the artifact pipeline
// over each one, best-effort: a failing recording or polarity never stops
// the rest of the batch.
package batch
