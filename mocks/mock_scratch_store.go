package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockScratchStore is a mock implementation of port.ScratchStore.
type MockScratchStore struct {
	mock.Mock
}

func (m *MockScratchStore) Save(ctx context.Context, name string, body io.Reader) (string, error) {
	args := m.Called(ctx, name, body)
	return args.String(0), args.Error(1)
}

func (m *MockScratchStore) Read(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockScratchStore) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockScratchStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
