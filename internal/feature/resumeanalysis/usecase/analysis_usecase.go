// Package usecase はresumeanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/domain/entity"
)

const (
	// AnalysisPromptTemplate はレジュメ分析のプロンプトテンプレートです。
	// %s にはレジュメ本文がそのまま埋め込まれます。
	AnalysisPromptTemplate = `You must analyze the following resume and provide feedback with ALL of the following sections. Do not skip any section:

1. Summary
2. Key Strengths
3. Areas for Improvement
4. Skills Assessment
5. Overall Score
6. Specific Recommendations for Enhancement

Format your response with clear section headers and ensure all 6 sections are included.

Resume:
%s
`
	// FallbackAnalysis はプロバイダーが空文字列を返した場合の代替文言です。
	FallbackAnalysis = "Analysis failed."
)

// Provider は生成AIプロバイダーへの問い合わせを抽象化したインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Provider interface {
	// Analyze はプロンプト1件に対する生成結果のテキストを返します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// analysisUsecase はレジュメ分析のビジネスロジックを提供します。
type analysisUsecase struct {
	provider Provider
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(p Provider) *analysisUsecase {
	return &analysisUsecase{provider: p}
}

// BuildPrompt はレジュメ本文を埋め込んだプロンプトを返します。
func BuildPrompt(resumeText string) string {
	return fmt.Sprintf(AnalysisPromptTemplate, resumeText)
}

// Analyze はレジュメ本文をプロバイダーに送り、分析結果を返します。
// 空または空白のみの本文はプロバイダーを呼ばずに ErrEmptyResume を返します。
// リトライは行いません。
func (u *analysisUsecase) Analyze(ctx context.Context, resumeText string) (*entity.Analysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, domain.ErrEmptyResume
	}

	text, err := u.provider.Analyze(ctx, BuildPrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}
	if text == "" {
		return &entity.Analysis{Text: FallbackAnalysis, Fallback: true}, nil
	}
	return &entity.Analysis{Text: text}, nil
}
