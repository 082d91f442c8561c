// Package handler はresumeanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume_analyzer/internal/api"
	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/domain/entity"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
	"resume_analyzer/internal/platform/http/middleware"
)

// クライアント向けの固定メッセージ。原因はログにのみ出力します。
const (
	MsgResumeRequired  = "resume text is required"
	MsgAnalyzeFailed   = "Failed to analyze resume"
	MsgFileRequired    = "a single resume file is required"
	MsgFileTooLarge    = "file is too large"
	MsgUnsupportedFile = "file format is not supported"
	MsgEmptyFile       = "no text could be extracted from the file"
	MsgExtractFailed   = "Failed to extract text from file"
)

// GenericAnalyzeError はプロバイダー起因の失敗で返す固定のレスポンスです。
var GenericAnalyzeError = api.ErrorResponse{
	Error: MsgAnalyzeFailed,
	Kind:  string(domain.KindExternalProviderFailure),
}

// AnalysisUsecase はレジュメ分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, resumeText string) (*entity.Analysis, error)
}

// ExtractionUsecase はアップロード文書からの本文抽出ユースケースを定義します。
type ExtractionUsecase interface {
	Extract(ctx context.Context, fileName string, data []byte) (*entity.Document, error)
}

// AnalysisHandler はレジュメ分析・本文抽出のHTTPリクエストを処理します。
type AnalysisHandler struct {
	analysis   AnalysisUsecase
	extraction ExtractionUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(a AnalysisUsecase, e ExtractionUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysis: a, extraction: e}
}

// Analyze はレジュメ本文を分析します。
//
// エンドポイント: POST /api/analyze
// Content-Type: application/json
// - 本文が空・空白のみの場合は400（ClientInputEmpty）
// - JSONとして解釈できない場合は500（MalformedRequest）
// - プロバイダーの失敗は500（ExternalProviderFailure）、原因はログのみ
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	reqID := middleware.RequestIDFromContext(c)

	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("リクエストボディのデコードに失敗", "error", err, "request_id", reqID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error: MsgAnalyzeFailed,
			Kind:  string(domain.KindMalformedRequest),
		})
		return
	}

	analysis, err := h.analysis.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResume) {
			slog.Warn("レジュメ本文が空のリクエスト", "request_id", reqID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: MsgResumeRequired,
				Kind:  string(domain.KindClientInputEmpty),
			})
			return
		}
		slog.Error("レジュメ分析に失敗", "error", err, "request_id", reqID, "resume_chars", len(req.Text))
		c.JSON(http.StatusInternalServerError, GenericAnalyzeError)
		return
	}

	if analysis.Fallback {
		slog.Warn("プロバイダーの応答が空のため代替文言を返却", "request_id", reqID)
	}
	slog.Info("レジュメ分析完了", "request_id", reqID, "resume_chars", len(req.Text), "analysis_chars", len(analysis.Text))
	c.JSON(http.StatusOK, api.AnalyzeResponse{Analysis: analysis.Text})
}

// Extract はアップロードされたファイルからレジュメ本文を取り出します。
//
// エンドポイント: POST /api/extract
// Content-Type: multipart/form-data
// フィールド: file（1ファイルのみ、最大10MB）
func (h *AnalysisHandler) Extract(c *gin.Context) {
	reqID := middleware.RequestIDFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxDocumentSize+1<<20)
	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			slog.Warn("アップロードファイルがサイズ上限を超過", "error", err, "request_id", reqID)
			c.JSON(http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: MsgFileTooLarge, Kind: string(domain.KindDocumentTooLarge)})
			return
		}
		slog.Warn("ファイルの取得に失敗", "error", err, "request_id", reqID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: MsgFileRequired, Kind: string(domain.KindFileReadFailure)})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("ファイルのオープンに失敗", "error", err, "request_id", reqID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: MsgFileRequired, Kind: string(domain.KindFileReadFailure)})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("ファイルのクローズに失敗", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxDocumentSize+1))
	if err != nil {
		slog.Error("ファイルの読み取りに失敗", "error", err, "request_id", reqID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: MsgFileRequired, Kind: string(domain.KindFileReadFailure)})
		return
	}

	doc, err := h.extraction.Extract(c.Request.Context(), file.Filename, data)
	if err != nil {
		status, body := extractionError(err)
		slog.Warn("本文抽出に失敗", "error", err, "request_id", reqID, "file_name", file.Filename, "status", status)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, api.ExtractResponse{
		Text:        doc.Text,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Method:      string(doc.Method),
	})
}

// extractionError は抽出エラーをステータスコードとレスポンスに変換します。
func extractionError(err error) (int, api.ErrorResponse) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindFileReadFailure:
		return http.StatusBadRequest, api.ErrorResponse{Error: MsgFileRequired, Kind: string(kind)}
	case domain.KindEmptyDocument:
		return http.StatusUnprocessableEntity, api.ErrorResponse{Error: MsgEmptyFile, Kind: string(kind)}
	case domain.KindDocumentTooLarge:
		return http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: MsgFileTooLarge, Kind: string(kind)}
	case domain.KindUnsupportedDocument:
		return http.StatusUnsupportedMediaType, api.ErrorResponse{Error: MsgUnsupportedFile, Kind: string(kind)}
	default:
		return http.StatusBadGateway, api.ErrorResponse{Error: MsgExtractFailed, Kind: string(domain.KindExtractionFailure)}
	}
}
