package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Sign identifies which polarity of the signal a spike train was detected on.
type Sign string

const (
	SignPositive Sign = "pos"
	SignNegative Sign = "neg"
)

// Signs returns both polarities in processing order.
func Signs() []Sign {
	return []Sign{SignPositive, SignNegative}
}

// Valid reports whether the sign is one of the two known polarities.
func (s Sign) Valid() bool {
	return s == SignPositive || s == SignNegative
}

// ErrRecordMissing marks a record lookup that found nothing. Callers use it to
// distinguish an absent polarity (skipped, not an error) from storage failure.
var ErrRecordMissing = errors.New("record missing")

// Waveforms is an N x W matrix of per-spike samples stored row-major.
type Waveforms struct {
	Rows    int
	Cols    int
	Samples []float64
}

// Row returns the samples of spike i without copying.
func (w Waveforms) Row(i int) []float64 {
	return w.Samples[i*w.Cols : (i+1)*w.Cols]
}

// Recording manages one recording file backed by SQLite.
type Recording struct {
	db   *sql.DB
	path string
}

// Open connects to a recording file and ensures the record schema exists.
func Open(path string) (*Recording, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open recording db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(recordsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Recording{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (r *Recording) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Path returns the recording file path.
func (r *Recording) Path() string {
	return r.path
}

// Times returns the spike timestamps for a polarity in milliseconds.
// Returns ErrRecordMissing when the polarity has no times record.
func (r *Recording) Times(ctx context.Context, sign Sign) ([]float64, error) {
	rows, _, payload, err := r.getRecord(ctx, sign, RecordTimes)
	if err != nil {
		return nil, err
	}
	times, err := decodeFloat64s(payload, rows)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", sign, RecordTimes, err)
	}
	return times, nil
}

// Waveforms returns the waveform matrix for a polarity.
func (r *Recording) Waveforms(ctx context.Context, sign Sign) (Waveforms, error) {
	rows, cols, payload, err := r.getRecord(ctx, sign, RecordSpikes)
	if err != nil {
		return Waveforms{}, err
	}
	samples, err := decodeFloat64s(payload, rows*cols)
	if err != nil {
		return Waveforms{}, fmt.Errorf("decode %s/%s: %w", sign, RecordSpikes, err)
	}
	return Waveforms{Rows: rows, Cols: cols, Samples: samples}, nil
}

// ArtifactCodes returns the artifact code array for a polarity, creating a
// zero-filled record of length n when none exists. An existing record whose
// length does not match n is replaced with a fresh zero-filled one.
func (r *Recording) ArtifactCodes(ctx context.Context, sign Sign, n int) ([]int8, error) {
	rows, _, payload, err := r.getRecord(ctx, sign, RecordArtifacts)
	switch {
	case errors.Is(err, ErrRecordMissing):
		codes := make([]int8, n)
		if err := r.PutArtifactCodes(ctx, sign, codes); err != nil {
			return nil, err
		}
		return codes, nil
	case err != nil:
		return nil, err
	}

	if rows != n {
		codes := make([]int8, n)
		if err := r.PutArtifactCodes(ctx, sign, codes); err != nil {
			return nil, err
		}
		return codes, nil
	}

	codes, err := decodeInt8s(payload, rows)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", sign, RecordArtifacts, err)
	}
	return codes, nil
}

// Artifacts returns the persisted artifact codes for a polarity.
// Returns ErrRecordMissing when the polarity has never been processed.
func (r *Recording) Artifacts(ctx context.Context, sign Sign) ([]int8, error) {
	rows, _, payload, err := r.getRecord(ctx, sign, RecordArtifacts)
	if err != nil {
		return nil, err
	}
	codes, err := decodeInt8s(payload, rows)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", sign, RecordArtifacts, err)
	}
	return codes, nil
}

// HasArtifacts reports whether a polarity has an artifacts record.
func (r *Recording) HasArtifacts(ctx context.Context, sign Sign) (bool, error) {
	_, _, _, err := r.getRecord(ctx, sign, RecordArtifacts)
	if errors.Is(err, ErrRecordMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PutArtifactCodes writes the artifact code array for a polarity in place.
func (r *Recording) PutArtifactCodes(ctx context.Context, sign Sign, codes []int8) error {
	return r.putRecord(ctx, sign, RecordArtifacts, len(codes), 1, encodeInt8s(codes))
}

// PutTimes stores the spike timestamps for a polarity.
func (r *Recording) PutTimes(ctx context.Context, sign Sign, times []float64) error {
	return r.putRecord(ctx, sign, RecordTimes, len(times), 1, encodeFloat64s(times))
}

// PutWaveforms stores the waveform matrix for a polarity.
func (r *Recording) PutWaveforms(ctx context.Context, sign Sign, w Waveforms) error {
	if len(w.Samples) != w.Rows*w.Cols {
		return fmt.Errorf("waveforms: %d samples for %dx%d matrix", len(w.Samples), w.Rows, w.Cols)
	}
	return r.putRecord(ctx, sign, RecordSpikes, w.Rows, w.Cols, encodeFloat64s(w.Samples))
}

func (r *Recording) getRecord(ctx context.Context, sign Sign, name string) (rows, cols int, payload []byte, err error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT rows, cols, payload FROM records WHERE sign = ? AND name = ?`,
		string(sign), name,
	)
	if err := row.Scan(&rows, &cols, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil, fmt.Errorf("%s/%s: %w", sign, name, ErrRecordMissing)
		}
		return 0, 0, nil, fmt.Errorf("get record %s/%s: %w", sign, name, err)
	}
	return rows, cols, payload, nil
}

func (r *Recording) putRecord(ctx context.Context, sign Sign, name string, rows, cols int, payload []byte) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO records (sign, name, rows, cols, payload) VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (sign, name) DO UPDATE SET rows = excluded.rows, cols = excluded.cols, payload = excluded.payload`,
		string(sign), name, rows, cols, payload,
	)
	if err != nil {
		return fmt.Errorf("put record %s/%s: %w", sign, name, err)
	}
	return nil
}
