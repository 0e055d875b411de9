package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"docqa/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*service.UploadResult, error) {
	args := m.Called(ctx, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
