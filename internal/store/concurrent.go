package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ConcurrentProfile is the session-wide auxiliary data describing how many
// channels were simultaneously active per time bin. Read-only input.
type ConcurrentProfile struct {
	Counts    []int64
	Channels  int
	Start     float64
	Stop      float64
	BinLength float64
}

// ReadConcurrentProfile loads the concurrent-activity source file: the per-bin
// channel counts plus the nch/start/stop/binms attributes.
func ReadConcurrentProfile(ctx context.Context, path string) (ConcurrentProfile, error) {
	rec, err := Open(path)
	if err != nil {
		return ConcurrentProfile{}, err
	}
	defer rec.Close()

	rows, _, payload, err := rec.getRecord(ctx, "", recordCount)
	if err != nil {
		return ConcurrentProfile{}, err
	}
	counts, err := decodeInt64s(payload, rows)
	if err != nil {
		return ConcurrentProfile{}, fmt.Errorf("decode %s: %w", recordCount, err)
	}

	profile := ConcurrentProfile{Counts: counts}
	attrs := map[string]*float64{
		attrStart:     &profile.Start,
		attrStop:      &profile.Stop,
		attrBinLength: &profile.BinLength,
	}
	var channels float64
	attrs[attrChannels] = &channels
	for name, dest := range attrs {
		value, err := rec.attr(ctx, name)
		if err != nil {
			return ConcurrentProfile{}, err
		}
		*dest = value
	}
	profile.Channels = int(channels)
	return profile, nil
}

// WriteConcurrentProfile persists a concurrent-activity source file.
func WriteConcurrentProfile(ctx context.Context, path string, profile ConcurrentProfile) error {
	rec, err := Open(path)
	if err != nil {
		return err
	}
	defer rec.Close()

	if err := rec.putRecord(ctx, "", recordCount, len(profile.Counts), 1, encodeInt64s(profile.Counts)); err != nil {
		return err
	}
	attrs := map[string]float64{
		attrChannels:  float64(profile.Channels),
		attrStart:     profile.Start,
		attrStop:      profile.Stop,
		attrBinLength: profile.BinLength,
	}
	for name, value := range attrs {
		if err := rec.putAttr(ctx, name, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recording) attr(ctx context.Context, name string) (float64, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM attrs WHERE name = ?`, name)
	var value float64
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("attr %s: %w", name, ErrRecordMissing)
		}
		return 0, fmt.Errorf("get attr %s: %w", name, err)
	}
	return value, nil
}

func (r *Recording) putAttr(ctx context.Context, name string, value float64) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO attrs (name, value) VALUES (?, ?)
         ON CONFLICT (name) DO UPDATE SET value = excluded.value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("put attr %s: %w", name, err)
	}
	return nil
}
