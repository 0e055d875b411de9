package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Gemini GeminiConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds upload validation and scratch storage settings.
type UploadConfig struct {
	ScratchDir    string `mapstructure:"scratch_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload size ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// GeminiConfig holds model provider settings. The API key is deliberately
// absent: it is supplied by the user on every query request.
type GeminiConfig struct {
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings. A single frontend origin is allowed.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// Load reads configuration from environment variables with the DOCQA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.scratch_dir", "uploads")
	v.SetDefault("upload.max_file_size_mb", 10)

	// Gemini defaults
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("gemini.timeout_secs", 120)

	// CORS defaults
	v.SetDefault("cors.allowed_origin", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "DOCQA_SERVER_PORT",
		"server.read_timeout":     "DOCQA_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "DOCQA_SERVER_WRITE_TIMEOUT",
		"server.environment":      "DOCQA_SERVER_ENVIRONMENT",
		"upload.scratch_dir":      "DOCQA_UPLOAD_SCRATCH_DIR",
		"upload.max_file_size_mb": "DOCQA_UPLOAD_MAX_FILE_SIZE_MB",
		"gemini.model":            "DOCQA_GEMINI_MODEL",
		"gemini.base_url":         "DOCQA_GEMINI_BASE_URL",
		"gemini.timeout_secs":     "DOCQA_GEMINI_TIMEOUT_SECS",
		"cors.allowed_origin":     "DOCQA_CORS_ALLOWED_ORIGIN",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCQA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCQA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		ScratchDir:    v.GetString("upload.scratch_dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Gemini = GeminiConfig{
		Model:       v.GetString("gemini.model"),
		BaseURL:     v.GetString("gemini.base_url"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigin: v.GetString("cors.allowed_origin"),
	}

	return cfg, nil
}
