// Package config loads process-wide configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultClientTimeout = 2 * time.Minute
)

// Config holds configuration for the whole server.
type Config struct {
	Port      string // HTTP listen port
	GinMode   string // gin mode (debug, release, test)
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json

	GeminiAPIKey        string // credential for the Gemini API; empty makes analysis calls fail
	GeminiModel         string // model identifier sent with every request
	UseVertexAI         bool   // use Vertex AI via ADC instead of an API key
	GoogleCloudProject  string // Vertex AI project
	GoogleCloudLocation string // Vertex AI location

	VisionOCREnabled bool // enables PDF text extraction through Cloud Vision

	APIBaseURL    string        // base URL the page uses to reach the API
	ClientTimeout time.Duration // timeout for page → API requests

	CORSAllowedOrigins []string // origins allowed to call /api; empty disables CORS
}

// Load reads configuration from environment variables.
// Missing values fall back to defaults; a missing credential is not an error here.
func Load() Config {
	port := getenv("PORT", defaultPort)
	return Config{
		Port:      port,
		GinMode:   os.Getenv("GIN_MODE"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),

		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getenv("GEMINI_MODEL", defaultGeminiModel),
		UseVertexAI:         getbool("GOOGLE_GENAI_USE_VERTEXAI", false),
		GoogleCloudProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleCloudLocation: os.Getenv("GOOGLE_CLOUD_LOCATION"),

		VisionOCREnabled: getbool("VISION_OCR_ENABLED", false),

		APIBaseURL:    strings.TrimRight(getenv("ANALYZER_API_BASE_URL", "http://localhost:"+port), "/"),
		ClientTimeout: getduration("ANALYZER_CLIENT_TIMEOUT", defaultClientTimeout),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// Addr returns the listen address for gin's Run.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean env value, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func getduration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid duration env value, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
