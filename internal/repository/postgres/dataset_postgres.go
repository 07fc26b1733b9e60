package postgres

import (
	"context"
	"database/sql"

	"salesdash/internal/model"
	"salesdash/internal/repository"
)

// DatasetPostgres is a PostgreSQL implementation of repository.DatasetRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DatasetPostgres struct {
	db *sql.DB
}

// NewDatasetPostgres creates a new DatasetPostgres repository.
func NewDatasetPostgres(db *sql.DB) *DatasetPostgres {
	return &DatasetPostgres{db: db}
}

var _ repository.DatasetRepository = (*DatasetPostgres)(nil)

// FindByName fetches a single dataset by its name.
func (r *DatasetPostgres) FindByName(ctx context.Context, name string) (*model.Dataset, error) {
	const q = `
		SELECT name, document, updated_at
		FROM datasets
		WHERE name = $1
	`
	var (
		d   model.Dataset
		doc []byte
	)
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&d.Name, &doc, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Document = doc
	return &d, nil
}
