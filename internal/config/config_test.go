package config

import (
	"testing"
	"time"
)

// TestLoad_Defaults は環境変数未設定時にデフォルト値が使われることを検証します。
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "GEMINI_API_KEY", "GEMINI_MODEL",
		"GOOGLE_GENAI_USE_VERTEXAI", "VISION_OCR_ENABLED", "ANALYZER_API_BASE_URL",
		"ANALYZER_CLIENT_TIMEOUT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected Port '8080', got %q", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected Addr ':8080', got %q", cfg.Addr())
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.VisionOCREnabled {
		t.Error("expected OCR to be disabled by default")
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("expected APIBaseURL 'http://localhost:8080', got %q", cfg.APIBaseURL)
	}
	if cfg.ClientTimeout != 2*time.Minute {
		t.Errorf("expected ClientTimeout 2m, got %v", cfg.ClientTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("expected info/text logging, got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

// TestLoad_FromEnv は環境変数から設定が正しく読み込まれることを検証します。
func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GOOGLE_GENAI_USE_VERTEXAI", "true")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")
	t.Setenv("GOOGLE_CLOUD_LOCATION", "us-central1")
	t.Setenv("VISION_OCR_ENABLED", "1")
	t.Setenv("ANALYZER_API_BASE_URL", "https://api.example.com/")
	t.Setenv("ANALYZER_CLIENT_TIMEOUT", "45s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected Port '9090', got %q", cfg.Port)
	}
	if cfg.GeminiAPIKey != "secret" || cfg.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("unexpected gemini config: %+v", cfg)
	}
	if !cfg.UseVertexAI || cfg.GoogleCloudProject != "proj" || cfg.GoogleCloudLocation != "us-central1" {
		t.Errorf("unexpected vertex config: %+v", cfg)
	}
	if !cfg.VisionOCREnabled {
		t.Error("expected OCR to be enabled")
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("expected trailing slash to be trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.ClientTimeout != 45*time.Second {
		t.Errorf("expected ClientTimeout 45s, got %v", cfg.ClientTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat 'json', got %q", cfg.LogFormat)
	}
}

// TestLoad_InvalidValuesFallBack は不正な値の場合にデフォルト値へ戻ることを検証します。
func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("VISION_OCR_ENABLED", "maybe")
	t.Setenv("ANALYZER_CLIENT_TIMEOUT", "soon")

	cfg := Load()

	if cfg.VisionOCREnabled {
		t.Error("expected invalid boolean to fall back to false")
	}
	if cfg.ClientTimeout != 2*time.Minute {
		t.Errorf("expected invalid duration to fall back to 2m, got %v", cfg.ClientTimeout)
	}
}
