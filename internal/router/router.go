package router

import (
	"github.com/gin-gonic/gin"

	"docqa/internal/handler"
	"docqa/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	uploadH *handler.UploadHandler,
	queryH *handler.QueryHandler,
	healthH *handler.HealthHandler,
	allowedOrigin string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigin))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Document pipeline
	r.POST("/upload", uploadH.Upload)
	r.POST("/query", queryH.Query)

	return r
}
