package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/domain"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Message: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
// Validation failures are 400s the user can correct; extraction and provider
// failures are 500s.
func MapDomainError(err error) (status int, msg string) {
	var extractionErr *domain.ExtractionError
	var providerErr *domain.ProviderHTTPError

	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "file field is required"
	case errors.Is(err, domain.ErrMultipleFiles):
		return http.StatusBadRequest, "exactly one file must be provided"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type; allowed: pdf, xlsx, xls"
	case errors.Is(err, domain.ErrMediaTypeMismatch):
		return http.StatusBadRequest, "declared media type does not match the file extension"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "file exceeds the maximum allowed size"
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, "documentData, userQuery, and apiKey are all required"
	case errors.As(err, &extractionErr):
		return http.StatusInternalServerError, "failed to process the uploaded file"
	case errors.As(err, &providerErr):
		return http.StatusInternalServerError, providerErr.Message
	case errors.Is(err, domain.ErrProviderUnreachable):
		return http.StatusInternalServerError, "could not connect to the language model provider"
	case errors.Is(err, domain.ErrRequestSetup):
		return http.StatusInternalServerError, "failed to construct the provider request"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
