package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"empty resume", ErrEmptyResume, KindClientInputEmpty},
		{"wrapped empty resume", fmt.Errorf("analyze: %w", ErrEmptyResume), KindClientInputEmpty},
		{"network", fmt.Errorf("post: %w", ErrNetwork), KindNetworkFailure},
		{"provider failure", fmt.Errorf("gemini: %w", ErrProviderFailure), KindExternalProviderFailure},
		{"provider unavailable", ErrProviderUnavailable, KindExternalProviderFailure},
		{"empty document", ErrEmptyDocument, KindFileReadFailure},
		{"no text", fmt.Errorf("%w: in %q", ErrNoExtractableText, "a.pdf"), KindEmptyDocument},
		{"too large", ErrDocumentTooLarge, KindDocumentTooLarge},
		{"unsupported", ErrUnsupportedDocument, KindUnsupportedDocument},
		{"ocr disabled", ErrExtractorUnavailable, KindUnsupportedDocument},
		{"ocr failure", fmt.Errorf("vision: %w", ErrExtractionFailure), KindExtractionFailure},
		{"unknown", errors.New("boom"), KindExternalProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
