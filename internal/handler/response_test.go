package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"docqa/internal/domain"
	"docqa/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInMsg  string
	}{
		{"missing file", domain.ErrMissingFile, http.StatusBadRequest, "file field"},
		{"multiple files", domain.ErrMultipleFiles, http.StatusBadRequest, "exactly one file"},
		{"unsupported type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "pdf, xlsx, xls"},
		{"media type mismatch", domain.ErrMediaTypeMismatch, http.StatusBadRequest, "media type"},
		{"too large", domain.ErrFileTooLarge, http.StatusBadRequest, "maximum allowed size"},
		{"missing field", domain.ErrMissingField, http.StatusBadRequest, "apiKey"},
		{"extraction failure", &domain.ExtractionError{Reason: domain.ReasonUnparsablePDF}, http.StatusInternalServerError, "failed to process"},
		{"provider http error", &domain.ProviderHTTPError{StatusCode: 429, Message: "quota exceeded"}, http.StatusInternalServerError, "quota exceeded"},
		{"provider unreachable", domain.ErrProviderUnreachable, http.StatusInternalServerError, "could not connect"},
		{"request setup", domain.ErrRequestSetup, http.StatusInternalServerError, "construct"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, msg, tt.wantInMsg)
		})
	}
}

func TestMapDomainError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrFileTooLarge)
	status, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
}
