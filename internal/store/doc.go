// Package store persists spike recordings as SQLite files of array records
// keyed by (sign, name). A recording holds, per polarity, the spike times,
// the waveform matrix, and the per-spike artifact codes. The package also
// reads the session-wide concurrent-activity source file.
package store
