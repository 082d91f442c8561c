// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"resume_analyzer/internal/config"
	"resume_analyzer/internal/feature/resumeanalysis/adapters/apiclient"
	"resume_analyzer/internal/feature/resumeanalysis/adapters/gemini"
	"resume_analyzer/internal/feature/resumeanalysis/adapters/vision"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
	infrahttp "resume_analyzer/internal/platform/http"
)

// NewAnalyzer creates the Gemini provider. It never fails; check Ready() for availability.
func NewAnalyzer(ctx context.Context, cfg config.Config) *gemini.GeminiAnalyzer {
	return gemini.NewGeminiAnalyzer(ctx, gemini.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		VertexAI: cfg.UseVertexAI,
		Project:  cfg.GoogleCloudProject,
		Location: cfg.GoogleCloudLocation,
	})
}

// NewDocumentDetector creates the Cloud Vision reader used for PDF uploads.
// It returns nil when OCR is disabled or the client cannot be created,
// in which case PDFs are rejected as unsupported.
// The returned close function is always safe to call.
func NewDocumentDetector(ctx context.Context, cfg config.Config) (usecase.DocumentTextDetector, func()) {
	noop := func() {}
	if !cfg.VisionOCREnabled {
		return nil, noop
	}
	reader, err := vision.NewVisionDocumentReader(ctx)
	if err != nil {
		slog.Warn("Cloud Vision unavailable. PDF uploads are disabled.", "error", err)
		return nil, noop
	}
	return reader, func() {
		if err := reader.Close(); err != nil {
			slog.Error("failed to close vision client", "error", err)
		}
	}
}

// NewAnalysisClient creates the HTTP client the page uses to call the JSON API.
func NewAnalysisClient(cfg config.Config) *apiclient.Client {
	return apiclient.NewClient(cfg.APIBaseURL, infrahttp.NewHTTPClient(cfg.ClientTimeout))
}
