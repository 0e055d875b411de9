package mocks

import (
	"github.com/stretchr/testify/mock"

	"docqa/internal/domain"
)

// MockDocumentExtractor is a mock implementation of port.DocumentExtractor.
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(data []byte, ext string) (*domain.ExtractedContent, error) {
	args := m.Called(data, ext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedContent), args.Error(1)
}
