package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Nezeon/legal-doc-backend/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, name string, r io.Reader) (storage.FileInfo, error) {
	args := m.Called(ctx, name, r)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader) storage.FileInfo); ok {
		return f(ctx, name, r), args.Error(1)
	}
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
