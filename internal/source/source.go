// Package source provides the backing stores the dashboard dataset can be
// read from: a local file, an object in S3-compatible storage, or a row in
// PostgreSQL. Every read goes to the store; nothing is cached.
package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the backing store has no dataset.
var ErrNotFound = errors.New("dataset not found")

// Source reads the raw dataset bytes.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	// Name identifies the source in logs, e.g. "file:dummyData.json".
	Name() string
}
