package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAnswerProvider is a mock implementation of port.AnswerProvider.
type MockAnswerProvider struct {
	mock.Mock
}

func (m *MockAnswerProvider) GenerateAnswer(ctx context.Context, prompt, apiKey string) (string, error) {
	args := m.Called(ctx, prompt, apiKey)
	return args.String(0), args.Error(1)
}
