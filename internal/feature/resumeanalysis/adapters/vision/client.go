// Package vision はGoogle Cloud Vision APIを使用したPDF本文抽出クライアントを提供します。
package vision

import (
	"context"
	"fmt"
	"strings"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
	"resume_analyzer/internal/feature/resumeanalysis/usecase"
)

// MaxPages はインライン送信で解析できる最大ページ数です（Vision APIの上限）。
const MaxPages = 5

// fileAnnotator はImageAnnotatorClientのうち本パッケージが使うメソッドです。
type fileAnnotator interface {
	BatchAnnotateFiles(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateFilesResponse, error)
}

// VisionDocumentReader はCloud VisionのDOCUMENT_TEXT_DETECTIONでPDFから本文を抽出します。
type VisionDocumentReader struct {
	annotator fileAnnotator
	closer    func() error
}

// VisionDocumentReaderがDocumentTextDetectorを実装していることをコンパイル時に検証します。
var _ usecase.DocumentTextDetector = (*VisionDocumentReader)(nil)

// NewVisionDocumentReader はADCを使用してVisionDocumentReaderの新しいインスタンスを生成します。
func NewVisionDocumentReader(ctx context.Context) (*VisionDocumentReader, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create vision client: %v", domain.ErrExtractorUnavailable, err)
	}
	return &VisionDocumentReader{annotator: client, closer: client.Close}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionDocumentReader) Close() error {
	if v.closer == nil {
		return nil
	}
	return v.closer()
}

// DetectDocumentText は先頭 MaxPages ページの本文をページ順に連結して返します。
func (v *VisionDocumentReader) DetectDocumentText(ctx context.Context, data []byte, mimeType string) (string, error) {
	pages := make([]int32, 0, MaxPages)
	for i := int32(1); i <= MaxPages; i++ {
		pages = append(pages, i)
	}

	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{
			{
				InputConfig: &visionpb.InputConfig{Content: data, MimeType: mimeType},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
				},
				Pages: pages,
			},
		},
	}

	resp, err := v.annotator.BatchAnnotateFiles(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: vision API request failed: %v", domain.ErrExtractionFailure, err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	file := resp.Responses[0]
	if file.Error != nil {
		return "", fmt.Errorf("%w: vision API error: %s", domain.ErrExtractionFailure, file.Error.Message)
	}

	var b strings.Builder
	for _, page := range file.Responses {
		if page.Error != nil {
			return "", fmt.Errorf("%w: vision API page error: %s", domain.ErrExtractionFailure, page.Error.Message)
		}
		if page.FullTextAnnotation == nil {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		b.WriteString(page.FullTextAnnotation.Text)
	}

	return b.String(), nil
}
