package source

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdash/internal/model"
	repoMocks "salesdash/internal/repository/mocks"
	"salesdash/internal/storage"
	storeMocks "salesdash/internal/storage/mocks"
)

func TestFile_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dummyData.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"salesReps":[]}`), 0o644))

	t.Run("existing file", func(t *testing.T) {
		b, err := NewFile(path).Read(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, `{"salesReps":[]}`, string(b))
	})

	t.Run("missing file", func(t *testing.T) {
		b, err := NewFile(filepath.Join(dir, "missing.json")).Read(context.Background())
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, err := NewFile(dir).Read(context.Background())
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFile(path).Read(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.Equal(t, "file:"+path, NewFile(path).Name())
}

func TestObject_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", ctx, "dummyData.json").
			Return(io.NopCloser(strings.NewReader(`{"a":1}`)), storage.ObjectInfo{Key: "dummyData.json"}, nil)

		b, err := NewObject(store, "dummyData.json").Read(ctx)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(b))
		store.AssertExpectations(t)
	})

	t.Run("missing key", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", ctx, "dummyData.json").
			Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, err := NewObject(store, "dummyData.json").Read(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("backend error", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", ctx, "dummyData.json").
			Return(nil, storage.ObjectInfo{}, errors.New("connection refused"))

		_, err := NewObject(store, "dummyData.json").Read(ctx)
		assert.EqualError(t, err, "get object: connection refused")
	})
}

func TestRepository_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(repoMocks.MockDatasetRepository)
		repo.On("FindByName", mock.Anything, "dummy").
			Return(&model.Dataset{Name: "dummy", Document: []byte(`[1,2,3]`)}, nil)

		b, err := NewRepository(repo, "dummy").Read(ctx)
		assert.NoError(t, err)
		assert.Equal(t, `[1,2,3]`, string(b))
		repo.AssertExpectations(t)
	})

	t.Run("no rows", func(t *testing.T) {
		repo := new(repoMocks.MockDatasetRepository)
		repo.On("FindByName", mock.Anything, "dummy").Return(nil, sql.ErrNoRows)

		_, err := NewRepository(repo, "dummy").Read(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo := new(repoMocks.MockDatasetRepository)
		repo.On("FindByName", mock.Anything, "dummy").Return(nil, errors.New("db down"))

		_, err := NewRepository(repo, "dummy").Read(ctx)
		assert.EqualError(t, err, "find dataset: db down")
	})
}
