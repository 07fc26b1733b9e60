package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"salesdash/internal/storage"
)

// Object reads the dataset from a single key in object storage.
type Object struct {
	store storage.Storage
	key   string
}

func NewObject(store storage.Storage, key string) *Object {
	return &Object{store: store, key: key}
}

func (o *Object) Read(ctx context.Context) ([]byte, error) {
	rc, _, err := o.store.Get(ctx, o.key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return b, nil
}

func (o *Object) Name() string {
	return "object:" + o.key
}
