package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docqa/internal/config"
	"docqa/internal/domain"
	"docqa/internal/service"
	"docqa/internal/storage/scratch"
	"docqa/mocks"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		ScratchDir:    "uploads",
		MaxFileSizeMB: 10,
	}
}

// createMultipartFile creates a real multipart file and header for testing.
func createMultipartFile(t *testing.T, filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content) + 1024))
	require.NoError(t, err)
	file, err := form.File["file"][0].Open()
	require.NoError(t, err)
	return file, form.File["file"][0]
}

// sizedHeader fabricates a header for size-limit tests; the file is never
// opened because validation fails first.
func sizedHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: filename, Header: h, Size: size}
}

func TestUploadService_Success(t *testing.T) {
	scratchStore := new(mocks.MockScratchStore)
	docExtractor := new(mocks.MockDocumentExtractor)
	cfg := testUploadConfig()
	svc := service.NewUploadService(scratchStore, docExtractor, &cfg)

	content := []byte("%PDF-1.4 fake body")
	file, header := createMultipartFile(t, "report.pdf", content, "application/pdf")
	defer file.Close()

	extracted := domain.NewTextContent("report text")
	scratchStore.On("Save", mock.Anything, "report.pdf", mock.Anything).Return("uploads/report.pdf", nil)
	scratchStore.On("Read", mock.Anything, "report.pdf").Return(content, nil)
	scratchStore.On("Remove", mock.Anything, "report.pdf").Return(nil)
	docExtractor.On("Extract", content, "pdf").Return(extracted, nil)

	result, err := svc.ProcessUpload(context.Background(), file, header)

	require.NoError(t, err)
	assert.Equal(t, "report.pdf", result.Filename)
	assert.Equal(t, domain.ContentTypeText, result.ContentType)
	assert.Equal(t, "report text", result.ExtractedData)
	scratchStore.AssertCalled(t, "Remove", mock.Anything, "report.pdf")
}

func TestUploadService_UnsupportedExtension_SkipsExtraction(t *testing.T) {
	scratchStore := new(mocks.MockScratchStore)
	docExtractor := new(mocks.MockDocumentExtractor)
	cfg := testUploadConfig()
	svc := service.NewUploadService(scratchStore, docExtractor, &cfg)

	file, header := createMultipartFile(t, "notes.txt", []byte("plain text"), "text/plain")
	defer file.Close()

	_, err := svc.ProcessUpload(context.Background(), file, header)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	docExtractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	scratchStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_MediaTypeMismatch(t *testing.T) {
	scratchStore := new(mocks.MockScratchStore)
	docExtractor := new(mocks.MockDocumentExtractor)
	cfg := testUploadConfig()
	svc := service.NewUploadService(scratchStore, docExtractor, &cfg)

	// .pdf extension with a spreadsheet media type
	file, header := createMultipartFile(t, "report.pdf", []byte("%PDF-1.4"), "application/vnd.ms-excel")
	defer file.Close()

	_, err := svc.ProcessUpload(context.Background(), file, header)

	assert.ErrorIs(t, err, domain.ErrMediaTypeMismatch)
	docExtractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestUploadService_FileTooLarge_SkipsExtraction(t *testing.T) {
	scratchStore := new(mocks.MockScratchStore)
	docExtractor := new(mocks.MockDocumentExtractor)
	cfg := testUploadConfig()
	svc := service.NewUploadService(scratchStore, docExtractor, &cfg)

	header := sizedHeader("huge.pdf", "application/pdf", 11*1024*1024)

	_, err := svc.ProcessUpload(context.Background(), nil, header)

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	docExtractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	scratchStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_ExtractionFailure_StillRemovesScratchFile(t *testing.T) {
	scratchStore := new(mocks.MockScratchStore)
	docExtractor := new(mocks.MockDocumentExtractor)
	cfg := testUploadConfig()
	svc := service.NewUploadService(scratchStore, docExtractor, &cfg)

	content := []byte("corrupt")
	file, header := createMultipartFile(t, "bad.pdf", content, "application/pdf")
	defer file.Close()

	extractionErr := &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF}
	scratchStore.On("Save", mock.Anything, "bad.pdf", mock.Anything).Return("uploads/bad.pdf", nil)
	scratchStore.On("Read", mock.Anything, "bad.pdf").Return(content, nil)
	scratchStore.On("Remove", mock.Anything, "bad.pdf").Return(nil)
	docExtractor.On("Extract", content, "pdf").Return(nil, extractionErr)

	_, err := svc.ProcessUpload(context.Background(), file, header)

	var target *domain.ExtractionError
	require.ErrorAs(t, err, &target)
	scratchStore.AssertCalled(t, "Remove", mock.Anything, "bad.pdf")
}

// Disk-backed checks: the scratch file must be gone after both outcomes.

func TestUploadService_ScratchFileDeletedAfterSuccess(t *testing.T) {
	dir := t.TempDir()
	store, err := scratch.New(dir)
	require.NoError(t, err)

	docExtractor := new(mocks.MockDocumentExtractor)
	docExtractor.On("Extract", mock.Anything, "pdf").Return(domain.NewTextContent("ok"), nil)

	cfg := config.UploadConfig{ScratchDir: dir, MaxFileSizeMB: 10}
	svc := service.NewUploadService(store, docExtractor, &cfg)

	file, header := createMultipartFile(t, "keepout.pdf", []byte("%PDF-1.4"), "application/pdf")
	defer file.Close()

	_, err = svc.ProcessUpload(context.Background(), file, header)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "keepout.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadService_ScratchFileDeletedAfterExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := scratch.New(dir)
	require.NoError(t, err)

	docExtractor := new(mocks.MockDocumentExtractor)
	docExtractor.On("Extract", mock.Anything, "pdf").
		Return(nil, &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF})

	cfg := config.UploadConfig{ScratchDir: dir, MaxFileSizeMB: 10}
	svc := service.NewUploadService(store, docExtractor, &cfg)

	file, header := createMultipartFile(t, "broken.pdf", []byte("junk"), "application/pdf")
	defer file.Close()

	_, err = svc.ProcessUpload(context.Background(), file, header)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "broken.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}
