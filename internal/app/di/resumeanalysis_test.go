package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume_analyzer/internal/config"
)

func TestNewDocumentDetector_Disabled(t *testing.T) {
	detector, closeFn := NewDocumentDetector(context.Background(), config.Config{VisionOCREnabled: false})

	assert.Nil(t, detector)
	assert.NotPanics(t, closeFn)
}

func TestNewAnalyzer_WithoutCredential(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_GENAI_USE_VERTEXAI", "")

	a := NewAnalyzer(context.Background(), config.Config{GeminiModel: "gemini-2.5-flash"})

	assert.False(t, a.Ready())
	assert.Error(t, a.InitErr())
	assert.Equal(t, "gemini-2.5-flash", a.Model())
}

func TestNewAnalysisClient(t *testing.T) {
	c := NewAnalysisClient(config.Config{APIBaseURL: "http://localhost:8080"})
	assert.NotNil(t, c)
}
