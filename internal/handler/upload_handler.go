package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/domain"
	"docqa/internal/service"
)

// UploadHandler handles the document upload endpoint.
type UploadHandler struct {
	uploads service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// UploadResponse is the success body for POST /upload.
type UploadResponse struct {
	Message       string             `json:"message"`
	Filename      string             `json:"filename"`
	ContentType   domain.ContentType `json:"contentType"`
	ExtractedData interface{}        `json:"extractedData"`
}

// Upload handles POST /upload. It accepts exactly one multipart file under
// the fixed field name "file".
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	if form := c.Request.MultipartForm; form != nil && len(form.File["file"]) > 1 {
		HandleError(c, domain.ErrMultipleFiles)
		return
	}

	result, err := h.uploads.ProcessUpload(c.Request.Context(), file, header)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message:       "file processed successfully",
		Filename:      result.Filename,
		ContentType:   result.ContentType,
		ExtractedData: result.ExtractedData,
	})
}
