// Package gemini はGoogle Gemini APIを使用したレジュメ分析クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// Config はGeminiクライアントの設定です。
type Config struct {
	APIKey   string // Gemini API キー（Vertex AI 利用時は不要）
	Model    string // 空の場合は DefaultModel
	VertexAI bool   // true の場合はADCでVertex AIバックエンドを使用
	Project  string // Vertex AI のプロジェクト
	Location string // Vertex AI のロケーション
}

// generator はgenai.Modelsのうち本パッケージが使うメソッドだけを切り出したものです。
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAnalyzer はGoogle Gemini APIを使用してレジュメ分析を生成します。
// クライアント生成に失敗した場合でもインスタンスは作られ、呼び出し時にエラーを返します。
type GeminiAnalyzer struct {
	models  generator
	model   string
	initErr error
}

// GeminiAnalyzerがProviderを実装していることをコンパイル時に検証します。
var _ usecase.Provider = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer はGeminiAnalyzerの新しいインスタンスを生成します。
// APIキー未設定などでクライアントを作れない場合も起動は止めず、Ready() が false になります。
func NewGeminiAnalyzer(ctx context.Context, cfg Config) *GeminiAnalyzer {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	if cfg.VertexAI {
		cc = &genai.ClientConfig{Backend: genai.BackendVertexAI, Project: cfg.Project, Location: cfg.Location}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return &GeminiAnalyzer{model: model, initErr: fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)}
	}
	return &GeminiAnalyzer{models: client.Models, model: model}
}

// Ready はクライアントが利用可能かどうかを返します。
func (g *GeminiAnalyzer) Ready() bool {
	return g.initErr == nil
}

// InitErr はクライアント生成時のエラーを返します。
func (g *GeminiAnalyzer) InitErr() error {
	return g.initErr
}

// Model は使用するモデルIDを返します。
func (g *GeminiAnalyzer) Model() string {
	return g.model
}

// Analyze はプロンプトを1回だけ送信し、生成されたテキスト全体を返します。
// 生成パラメータは指定せず、プロバイダーのデフォルトに任せます。
func (g *GeminiAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: gemini API request failed: %v", domain.ErrProviderFailure, err)
	}

	return resp.Text(), nil
}
