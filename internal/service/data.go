package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"salesdash/internal/source"
)

var (
	// ErrLoadFailed wraps every failure to produce the dataset.
	ErrLoadFailed = errors.New("failed to load data")
	// ErrMalformed marks a dataset that is not syntactically valid JSON.
	ErrMalformed = errors.New("dataset is not valid JSON")
)

// DataService serves the dashboard dataset.
type DataService interface {
	// Load reads the dataset from its source and returns it unchanged.
	// The document is only checked for JSON syntax; its shape is opaque.
	Load(ctx context.Context) (json.RawMessage, error)
}

type dataService struct {
	src    source.Source
	logger *zap.Logger
}

// NewDataService constructs a DataService reading from src on every call.
func NewDataService(src source.Source, logger *zap.Logger) DataService {
	return &dataService{src: src, logger: logger}
}

func (s *dataService) Load(ctx context.Context) (json.RawMessage, error) {
	b, err := s.src.Read(ctx)
	if err != nil {
		s.logger.Error("data_load_failed",
			zap.String("source", s.src.Name()),
			zap.Bool("not_found", errors.Is(err, source.ErrNotFound)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	// json.Valid accepts invalid UTF-8 inside strings.
	if !utf8.Valid(b) || !json.Valid(b) {
		s.logger.Error("data_load_failed",
			zap.String("source", s.src.Name()),
			zap.Error(ErrMalformed),
		)
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, ErrMalformed)
	}
	return json.RawMessage(b), nil
}
