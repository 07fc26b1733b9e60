package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"salesdash/internal/repository"
)

// Repository reads a named dataset document through a DatasetRepository.
type Repository struct {
	repo repository.DatasetRepository
	name string
}

func NewRepository(repo repository.DatasetRepository, name string) *Repository {
	return &Repository{repo: repo, name: name}
}

func (r *Repository) Read(ctx context.Context) ([]byte, error) {
	ds, err := r.repo.FindByName(ctx, r.name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: dataset %q", ErrNotFound, r.name)
		}
		return nil, fmt.Errorf("find dataset: %w", err)
	}
	return ds.Document, nil
}

func (r *Repository) Name() string {
	return "postgres:" + r.name
}
