package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resume_analyzer/internal/app/di"
	"resume_analyzer/internal/app/router"
	"resume_analyzer/internal/config"
	resumehandler "resume_analyzer/internal/feature/resumeanalysis/transport/handler"
	"resume_analyzer/internal/feature/resumeanalysis/ui"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
	"resume_analyzer/internal/platform/http/handler"
	"resume_analyzer/internal/platform/logger"
)

func main() {
	// .env（なくてもよい）
	envErr := godotenv.Load(".env")

	cfg := config.Load()
	logger.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Info(".env not loaded; using process environment", "error", envErr)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()

	// Provider / Extractor
	analyzer := di.NewAnalyzer(ctx, cfg)
	if !analyzer.Ready() {
		// 起動は継続し、分析リクエストは500を返す
		slog.Warn("Gemini client unavailable. Set GEMINI_API_KEY (or Vertex AI settings).", "error", analyzer.InitErr())
	}
	detector, closeDetector := di.NewDocumentDetector(ctx, cfg)
	defer closeDetector()

	// Usecase
	analysisUC := usecase.NewAnalysisUsecase(analyzer)
	extractionUC := usecase.NewExtractionUsecase(detector)

	// Handler
	analysisH := resumehandler.NewAnalysisHandler(analysisUC, extractionUC)
	pageH := ui.NewPageHandler(di.NewAnalysisClient(cfg), extractionUC.PDFSupported())
	health := handler.Health(
		handler.Check{Name: "gemini", Status: func() string {
			if analyzer.Ready() {
				return "ready"
			}
			return "unavailable"
		}},
		handler.Check{Name: "vision", Status: func() string {
			switch {
			case !cfg.VisionOCREnabled:
				return "disabled"
			case extractionUC.PDFSupported():
				return "ready"
			default:
				return "unavailable"
			}
		}},
	)

	// ルータ生成
	r := router.NewRouter(analysisH, pageH, health, router.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	slog.Info("resume analyzer listening", "addr", cfg.Addr(), "model", analyzer.Model(), "pdf", extractionUC.PDFSupported())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
