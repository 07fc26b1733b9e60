package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File reads the dataset from a fixed path on local disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (f *File) Name() string {
	return "file:" + f.path
}
