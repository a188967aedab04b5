package store

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
    sign    TEXT NOT NULL,
    name    TEXT NOT NULL,
    rows    INTEGER NOT NULL,
    cols    INTEGER NOT NULL,
    payload BLOB NOT NULL,
    PRIMARY KEY (sign, name)
);

CREATE TABLE IF NOT EXISTS attrs (
    name  TEXT PRIMARY KEY,
    value REAL NOT NULL
);
`

// Record names within a recording. Each polarity carries its own copy.
const (
	RecordTimes     = "times"
	RecordSpikes    = "spikes"
	RecordArtifacts = "artifacts"
)

// Concurrent-activity source layout: one "count" record with an empty sign
// plus the recording-wide attributes.
const (
	recordCount = "count"

	attrChannels  = "nch"
	attrStart     = "start"
	attrStop      = "stop"
	attrBinLength = "binms"
)
