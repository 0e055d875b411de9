package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docqa/internal/domain"
)

// MockQueryService is a mock implementation of service.QueryService.
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) Answer(ctx context.Context, state domain.SessionState) (string, error) {
	args := m.Called(ctx, state)
	return args.String(0), args.Error(1)
}
