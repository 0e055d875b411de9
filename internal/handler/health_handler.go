package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	scratch port.ScratchStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(scratch port.ScratchStore) *HealthHandler {
	return &HealthHandler{scratch: scratch}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.scratch.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "scratch directory not writable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
