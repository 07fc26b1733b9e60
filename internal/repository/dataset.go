package repository

import (
	"context"

	"salesdash/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// DatasetRepository defines read-only data access for dashboard datasets.
// No business logic here; strictly persistence operations.
type DatasetRepository interface {
	// FindByName returns the dataset stored under name.
	// It returns sql.ErrNoRows when no such dataset exists.
	FindByName(ctx context.Context, name string) (*model.Dataset, error)
}
