package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"docqa/internal/config"
	"docqa/internal/extractor"
	"docqa/internal/handler"
	"docqa/internal/provider/gemini"
	"docqa/internal/router"
	"docqa/internal/service"
	"docqa/internal/storage/scratch"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	scratchStore, err := scratch.New(cfg.Upload.ScratchDir)
	if err != nil {
		return fmt.Errorf("failed to initialize scratch store: %w", err)
	}

	// Initialize services
	uploadSvc := service.NewUploadService(scratchStore, extractor.New(), &cfg.Upload)
	querySvc := service.NewQueryService(gemini.NewClient(&cfg.Gemini))

	// Initialize handlers
	uploadH := handler.NewUploadHandler(uploadSvc)
	queryH := handler.NewQueryHandler(querySvc)
	healthH := handler.NewHealthHandler(scratchStore)

	// Setup router
	r := router.Setup(uploadH, queryH, healthH, cfg.CORS.AllowedOrigin)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
