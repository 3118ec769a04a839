package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Nezeon/legal-doc-backend/internal/model"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, p model.Principal, r io.Reader, originalName, contentType string, size int64) (*model.Document, error) {
	args := m.Called(ctx, p, r, originalName, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, p model.Principal) ([]model.Document, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, p model.Principal, id string) (*model.Document, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) UpdateStatus(ctx context.Context, p model.Principal, id, status string) error {
	args := m.Called(ctx, p, id, status)
	return args.Error(0)
}

func (m *MockDocumentService) Delete(ctx context.Context, p model.Principal, id string) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}
