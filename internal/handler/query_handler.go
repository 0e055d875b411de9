package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/domain"
	"docqa/internal/service"
)

// QueryHandler handles the question-answering endpoint.
type QueryHandler struct {
	queries service.QueryService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queries service.QueryService) *QueryHandler {
	return &QueryHandler{queries: queries}
}

// QueryResponse is the success body for POST /query.
type QueryResponse struct {
	Answer string `json:"answer"`
}

// Query handles POST /query. The body is the client-held session state:
// documentData, contentType, userQuery, and apiKey.
func (h *QueryHandler) Query(c *gin.Context) {
	var state domain.SessionState
	if err := c.ShouldBindJSON(&state); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.queries.Answer(c.Request.Context(), state)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, QueryResponse{Answer: answer})
}
