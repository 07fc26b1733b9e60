package mocks

import (
	"context"

	"salesdash/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) FindByName(ctx context.Context, name string) (*model.Dataset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dataset), args.Error(1)
}
