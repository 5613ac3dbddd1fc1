package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LOG_DIR", filepath.Join(tmp, "logs"))
	t.Setenv("TEMP_DIR", filepath.Join(tmp, "tmp"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.ServerPort)
	}
	if cfg.Whisper.Model != "whisper-1" {
		t.Errorf("expected default whisper model whisper-1, got %s", cfg.Whisper.Model)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("expected default gemini model gemini-2.0-flash, got %s", cfg.Gemini.Model)
	}
	if cfg.Middleware.EnableRateLimit {
		t.Error("rate limiting should be disabled outside production")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("LOG_DIR", filepath.Join(tmp, "logs"))
	t.Setenv("TEMP_DIR", filepath.Join(tmp, "tmp"))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "5m")
	t.Setenv("GEMINI_API_KEY", "key-a, key-b,key-c")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.ServerPort)
	}
	if cfg.RequestTimeout != 5*time.Minute {
		t.Errorf("expected request timeout 5m, got %v", cfg.RequestTimeout)
	}
	if len(cfg.Gemini.APIKeys) != 3 || cfg.Gemini.APIKeys[1] != "key-b" {
		t.Errorf("expected 3 trimmed API keys, got %v", cfg.Gemini.APIKeys)
	}
	if !cfg.Middleware.EnableRateLimit {
		t.Error("rate limiting should be enabled in production")
	}
}

func TestValidateRejectsBadTimeouts(t *testing.T) {
	tmp := t.TempDir()
	cfg := &Config{
		LogDir:         filepath.Join(tmp, "logs"),
		TempDir:        filepath.Join(tmp, "tmp"),
		ReadTimeout:    -1,
		WriteTimeout:   time.Second,
		RequestTimeout: time.Second,
	}

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative read timeout")
	}
}

func TestValidateRejectsMissingServiceSettings(t *testing.T) {
	tmp := t.TempDir()
	base := Config{
		LogDir:         filepath.Join(tmp, "logs"),
		TempDir:        filepath.Join(tmp, "tmp"),
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		RequestTimeout: time.Second,
		Whisper:        WhisperConfig{Model: "whisper-1", BaseURL: "https://api.openai.com/v1"},
		Gemini:         GeminiConfig{Model: "gemini-2.0-flash"},
		Upload:         UploadConfig{MaxFileSize: 1},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	noModel := base
	noModel.Whisper.Model = ""
	if err := noModel.Validate(); err == nil {
		t.Error("expected error for missing whisper model")
	}

	noSize := base
	noSize.Upload.MaxFileSize = 0
	if err := noSize.Validate(); err == nil {
		t.Error("expected error for zero max file size")
	}
}
