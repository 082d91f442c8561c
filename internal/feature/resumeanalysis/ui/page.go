package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/domain/entity"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
	"resume_analyzer/internal/platform/http/middleware"
)

// PageTemplate はページ全体のテンプレート名です。
const PageTemplate = "index.html.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates は埋め込みテンプレートを解析して返します（gin の SetHTMLTemplate 用）。
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// Client はページが利用するレジュメ分析APIクライアントです。
type Client interface {
	Analyze(ctx context.Context, text string) (string, error)
	Extract(ctx context.Context, fileName string, data []byte) (string, error)
}

// PageHandler はレジュメ分析ページのリクエストを処理します。
// リクエストごとにフォームから状態を復元し、イベントを適用して描画します。
type PageHandler struct {
	client       Client
	pdfSupported bool
}

// NewPageHandler はPageHandlerの新しいインスタンスを生成します。
// pdfSupported が false の場合、ページはPDFを受け付けると表示しません。
func NewPageHandler(client Client, pdfSupported bool) *PageHandler {
	return &PageHandler{client: client, pdfSupported: pdfSupported}
}

// PageView はテンプレートに渡す表示用データです。
type PageView struct {
	Text        string
	Extracted   string
	Message     string
	Blocks      []Block
	HasResult   bool
	CanSubmit   bool
	Busy        bool
	Formats     string
	AcceptTypes string
}

// Index は初期状態のページを返します。
//
// エンドポイント: GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, Idle{})
}

// Upload はアップロードされたファイル（最初の1つのみ）を読み込みます。
// テキストはその場で読み、それ以外は抽出APIに委譲します。
//
// エンドポイント: POST /upload
// フィールド: resume
func (h *PageHandler) Upload(c *gin.Context) {
	reqID := middleware.RequestIDFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxDocumentSize+1<<20)
	s := stateFromForm(c)
	file, err := c.FormFile("resume")
	if err != nil {
		slog.Warn("resume file missing from upload", "error", err, "request_id", reqID)
		h.render(c, Transition(s, FileFailed{}))
		return
	}

	data, err := readUpload(file)
	if err != nil {
		slog.Warn("resume file could not be read", "error", err, "request_id", reqID, "file_name", file.Filename)
		h.render(c, Transition(s, FileFailed{}))
		return
	}

	text, err := h.fileText(c.Request.Context(), file.Filename, data)
	if err != nil {
		slog.Warn("resume file could not be converted to text", "error", err, "request_id", reqID, "file_name", file.Filename)
		h.render(c, Transition(s, FileFailed{}))
		return
	}

	slog.Info("resume file loaded", "request_id", reqID, "file_name", file.Filename, "chars", len(text))
	h.render(c, Transition(s, FileLoaded{Text: text}))
}

// Clear はファイルから読み込んだ本文を破棄します。
//
// エンドポイント: POST /clear
func (h *PageHandler) Clear(c *gin.Context) {
	h.render(c, Transition(stateFromForm(c), ExtractedCleared{}))
}

// Analyze はフォームの本文を分析APIに送信し、結果を描画します。
// 本文が空の場合はAPIを呼び出しません。
//
// エンドポイント: POST /analyze
func (h *PageHandler) Analyze(c *gin.Context) {
	reqID := middleware.RequestIDFromContext(c)

	s := Transition(stateFromForm(c), SubmitRequested{})
	if !Busy(s) {
		h.render(c, s)
		return
	}

	analysis, err := h.client.Analyze(c.Request.Context(), TextOf(s))
	if err != nil {
		slog.Error("analysis request failed", "error", err, "request_id", reqID)
		s = Transition(s, AnalysisFailed{})
	} else {
		s = Transition(s, AnalysisSucceeded{Analysis: analysis})
	}
	h.render(c, s)
}

// fileText はファイル内容からレジュメ本文を得ます。
func (h *PageHandler) fileText(ctx context.Context, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrEmptyDocument
	}
	if kind, _ := entity.DetectKind(data); kind == entity.KindPlainText {
		return strings.ToValidUTF8(string(data), "�"), nil
	}
	return h.client.Extract(ctx, fileName, data)
}

func (h *PageHandler) render(c *gin.Context, s State) {
	view := PageView{
		Text:      TextOf(s),
		Extracted: ExtractedOf(s),
		CanSubmit: CanSubmit(s),
		Busy:      Busy(s),
	}
	switch v := s.(type) {
	case Result:
		view.Blocks = Render(v.Analysis)
		view.HasResult = true
	case Failed:
		view.Message = v.Message
	}

	view.Formats = "plain text (.txt, .md)"
	view.AcceptTypes = ".txt,.md,text/plain"
	if h.pdfSupported {
		view.Formats = "plain text (.txt, .md) or PDF"
		view.AcceptTypes += ",.pdf,application/pdf"
	}

	c.HTML(http.StatusOK, PageTemplate, view)
}

// stateFromForm はフォームの text / extracted から状態を復元します。
func stateFromForm(c *gin.Context) State {
	text := c.PostForm("text")
	if isBlank(text) {
		return Idle{}
	}
	return Ready{Text: text, Extracted: c.PostForm("extracted")}
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > usecase.MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentTooLarge, file.Filename)
	}
	return data, nil
}
