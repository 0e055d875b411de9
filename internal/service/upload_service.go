package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"docqa/internal/config"
	"docqa/internal/domain"
	"docqa/internal/port"
)

// UploadResult is the outcome of a processed upload: the normalized content
// and the tag telling the client how to treat it.
type UploadResult struct {
	Filename      string
	ContentType   domain.ContentType
	ExtractedData interface{}
}

// UploadService defines the upload processing contract.
type UploadService interface {
	ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error)
}

type uploadService struct {
	scratch   port.ScratchStore
	extractor port.DocumentExtractor
	cfg       *config.UploadConfig
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	scratch port.ScratchStore,
	extractor port.DocumentExtractor,
	cfg *config.UploadConfig,
) UploadService {
	return &uploadService{
		scratch:   scratch,
		extractor: extractor,
		cfg:       cfg,
	}
}

// ProcessUpload validates the file, stages it in the scratch store, extracts
// its content, and removes the staged file on every path.
func (s *uploadService) ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate declared media type against the extension's pair
	declared := header.Header.Get("Content-Type")
	if declared != domain.AllowedFileTypes[fileType] {
		return nil, domain.ErrMediaTypeMismatch
	}

	// Validate file size
	if header.Size > s.cfg.MaxFileSizeBytes() {
		return nil, domain.ErrFileTooLarge
	}

	name := filepath.Base(header.Filename)
	log.Printf("uploadService.ProcessUpload: processing %s (%s, %d bytes)", name, declared, header.Size)

	if _, err := s.scratch.Save(ctx, name, file); err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}
	// The scratch file must not outlive this request, whatever extraction does.
	defer func() {
		if err := s.scratch.Remove(ctx, name); err != nil {
			log.Printf("uploadService.ProcessUpload: failed to remove scratch file %s: %v", name, err)
		}
	}()

	data, err := s.scratch.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	content, err := s.extractor.Extract(data, ext)
	if err != nil {
		log.Printf("uploadService.ProcessUpload: extraction failed for %s: %v", name, err)
		return nil, err
	}

	return &UploadResult{
		Filename:      name,
		ContentType:   content.Type,
		ExtractedData: content.Payload(),
	}, nil
}
