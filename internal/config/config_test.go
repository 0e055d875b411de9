package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "uploads", cfg.Upload.ScratchDir)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSizeBytes())

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/models", cfg.Gemini.BaseURL)
	assert.Equal(t, 120, cfg.Gemini.TimeoutSecs)

	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOCQA_UPLOAD_MAX_FILE_SIZE_MB", "25")
	t.Setenv("DOCQA_GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("DOCQA_CORS_ALLOWED_ORIGIN", "https://app.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "https://app.example.com", cfg.CORS.AllowedOrigin)
}

func TestLoad_PaaSPortFallback(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPaaSPort(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DOCQA_SERVER_PORT", ":7777")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Port)
}
