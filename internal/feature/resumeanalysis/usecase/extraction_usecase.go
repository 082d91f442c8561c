package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/domain/entity"
)

// MaxDocumentSize はアップロード文書の最大サイズ（10MB）です。
const MaxDocumentSize = 10 * 1024 * 1024

// DocumentTextDetector は外部サービスで文書からテキストを抽出するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DocumentTextDetector interface {
	// DetectDocumentText はPDFのバイト列から本文テキストを抽出します。
	DetectDocumentText(ctx context.Context, data []byte, mimeType string) (string, error)
}

// extractionUsecase はアップロード文書をレジュメ本文に変換します。
type extractionUsecase struct {
	detector DocumentTextDetector
}

// NewExtractionUsecase はextractionUsecaseの新しいインスタンスを生成します。
// detector が nil の場合、PDFは未対応形式として扱われます。
func NewExtractionUsecase(d DocumentTextDetector) *extractionUsecase {
	return &extractionUsecase{detector: d}
}

// PDFSupported はPDFを受け付けられる構成かどうかを返します。
func (u *extractionUsecase) PDFSupported() bool {
	return u.detector != nil
}

// Extract はファイル内容を判定し、テキストを取り出します。
// テキスト系はそのまま読み、PDFは外部の文書解析サービスに委譲します。
// DOC/DOCX などローカル解析が必要な形式は受け付けません。
func (u *extractionUsecase) Extract(ctx context.Context, fileName string, data []byte) (*entity.Document, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", domain.ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}

	kind, contentType := entity.DetectKind(data)
	doc := &entity.Document{FileName: fileName, ContentType: contentType}

	switch kind {
	case entity.KindPlainText:
		doc.Text = strings.ToValidUTF8(string(data), "�")
		doc.Method = entity.MethodPlain
	case entity.KindPDF:
		if u.detector == nil {
			return nil, fmt.Errorf("%w: %s (ocr disabled)", domain.ErrUnsupportedDocument, contentType)
		}
		text, err := u.detector.DetectDocumentText(ctx, data, entity.MIMEPDF)
		if err != nil {
			return nil, fmt.Errorf("extract %q: %w", fileName, err)
		}
		doc.Text = text
		doc.Method = entity.MethodOCR
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocument, contentType)
	}

	if strings.TrimSpace(doc.Text) == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrNoExtractableText, fileName)
	}
	return doc, nil
}
