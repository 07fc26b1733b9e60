package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains read access to S3-compatible object stores.
// Implementations stream object content; no local disk is used.

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is a reusable, S3-compatible object storage client interface.
type Storage interface {
	// Get retrieves an object's content as a streaming reader alongside its info.
	// Callers must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
