package vision

import (
	"context"
	"errors"
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"

	"resume_analyzer/internal/feature/resumeanalysis/domain"
)

// fakeAnnotator はfileAnnotatorインターフェースのモック実装です。
type fakeAnnotator struct {
	BatchFunc func(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest) (*visionpb.BatchAnnotateFilesResponse, error)
}

func (f *fakeAnnotator) BatchAnnotateFiles(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateFilesResponse, error) {
	return f.BatchFunc(ctx, req)
}

func pageText(text string) *visionpb.AnnotateImageResponse {
	return &visionpb.AnnotateImageResponse{FullTextAnnotation: &visionpb.TextAnnotation{Text: text}}
}

func TestVisionDocumentReader_DetectDocumentText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *visionpb.BatchAnnotateFilesResponse
		apiErr      error
		want        string
		expectedErr error
	}{
		{
			name: "success: pages are joined in order",
			resp: &visionpb.BatchAnnotateFilesResponse{
				Responses: []*visionpb.AnnotateFileResponse{
					{Responses: []*visionpb.AnnotateImageResponse{
						pageText("John Doe\nSoftware Engineer"),
						{},
						pageText("Experience\n"),
						pageText("Education"),
					}},
				},
			},
			want: "John Doe\nSoftware Engineer\nExperience\nEducation",
		},
		{
			name: "success: no responses",
			resp: &visionpb.BatchAnnotateFilesResponse{},
			want: "",
		},
		{
			name:        "error: request fails",
			apiErr:      errors.New("permission denied"),
			expectedErr: domain.ErrExtractionFailure,
		},
		{
			name: "error: file level error",
			resp: &visionpb.BatchAnnotateFilesResponse{
				Responses: []*visionpb.AnnotateFileResponse{
					{Error: &status.Status{Code: 3, Message: "bad pdf"}},
				},
			},
			expectedErr: domain.ErrExtractionFailure,
		},
		{
			name: "error: page level error",
			resp: &visionpb.BatchAnnotateFilesResponse{
				Responses: []*visionpb.AnnotateFileResponse{
					{Responses: []*visionpb.AnnotateImageResponse{
						{Error: &status.Status{Code: 13, Message: "internal"}},
					}},
				},
			},
			expectedErr: domain.ErrExtractionFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured *visionpb.BatchAnnotateFilesRequest
			reader := &VisionDocumentReader{annotator: &fakeAnnotator{
				BatchFunc: func(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest) (*visionpb.BatchAnnotateFilesResponse, error) {
					captured = req
					return tt.resp, tt.apiErr
				},
			}}

			got, err := reader.DetectDocumentText(context.Background(), []byte("%PDF-1.4"), "application/pdf")

			require.NotNil(t, captured)
			require.Len(t, captured.Requests, 1)
			assert.Equal(t, "application/pdf", captured.Requests[0].InputConfig.MimeType)
			assert.Equal(t, visionpb.Feature_DOCUMENT_TEXT_DETECTION, captured.Requests[0].Features[0].Type)
			assert.Len(t, captured.Requests[0].Pages, MaxPages)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisionDocumentReader_CloseWithoutClient(t *testing.T) {
	t.Parallel()
	assert.NoError(t, (&VisionDocumentReader{}).Close())
}
