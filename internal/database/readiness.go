package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrDatasetMissing is reported when the configured dataset row is absent.
var ErrDatasetMissing = errors.New("dataset row missing")

// DatasetCheck is the readiness check for the postgres dataset source.
// It satisfies handler.Pinger.
type DatasetCheck struct {
	db   *sql.DB
	name string
}

func NewDatasetCheck(db *sql.DB, name string) *DatasetCheck {
	return &DatasetCheck{db: db, name: name}
}

// PingContext succeeds when the pool answers and the dataset row exists.
func (d *DatasetCheck) PingContext(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	const q = `SELECT EXISTS (SELECT 1 FROM datasets WHERE name = $1)`
	var exists bool
	if err := d.db.QueryRowContext(ctx, q, d.name).Scan(&exists); err != nil {
		return fmt.Errorf("check dataset: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrDatasetMissing, d.name)
	}
	return nil
}
