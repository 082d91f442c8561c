// Package domain defines domain-level errors for the resumeanalysis feature.
package domain

import "errors"

// Domain errors for resume analysis and document extraction.
// Upper layers map them to an ErrorKind with KindOf; the wrapped cause is only logged.
var (
	// ErrEmptyResume indicates that no resume text (or only whitespace) was submitted.
	ErrEmptyResume = errors.New("resume text is required")

	// ErrProviderUnavailable indicates that the generative-language provider could not be
	// initialised, typically because its credential is missing.
	ErrProviderUnavailable = errors.New("analysis provider is not configured")

	// ErrProviderFailure indicates that the provider call itself failed.
	ErrProviderFailure = errors.New("analysis provider request failed")

	// ErrNetwork indicates that the analysis endpoint could not be reached.
	ErrNetwork = errors.New("analysis endpoint unreachable")

	// ErrEmptyDocument indicates an uploaded file with no bytes.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrNoExtractableText indicates a readable document that yielded only whitespace.
	ErrNoExtractableText = errors.New("no text found in document")

	// ErrDocumentTooLarge indicates an upload above the accepted size.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")

	// ErrUnsupportedDocument indicates a format that cannot be turned into text.
	ErrUnsupportedDocument = errors.New("document format is not supported")

	// ErrExtractorUnavailable indicates that the OCR collaborator could not be initialised.
	ErrExtractorUnavailable = errors.New("document text extractor is not configured")

	// ErrExtractionFailure indicates that the OCR collaborator returned an error.
	ErrExtractionFailure = errors.New("document text extraction failed")
)

// ErrorKind is the short, stable error category exposed to API callers.
type ErrorKind string

const (
	KindClientInputEmpty        ErrorKind = "ClientInputEmpty"
	KindMalformedRequest        ErrorKind = "MalformedRequest"
	KindFileReadFailure         ErrorKind = "FileReadFailure"
	KindExternalProviderFailure ErrorKind = "ExternalProviderFailure"
	KindNetworkFailure          ErrorKind = "NetworkFailure"
	KindUnsupportedDocument     ErrorKind = "UnsupportedDocument"
	KindDocumentTooLarge        ErrorKind = "DocumentTooLarge"
	KindEmptyDocument           ErrorKind = "EmptyDocument"
	KindExtractionFailure       ErrorKind = "ExtractionFailure"
)

// KindOf classifies err. Anything unrecognised is treated as a provider failure,
// which is the generic server-side category.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmptyResume):
		return KindClientInputEmpty
	case errors.Is(err, ErrNetwork):
		return KindNetworkFailure
	case errors.Is(err, ErrEmptyDocument):
		return KindFileReadFailure
	case errors.Is(err, ErrNoExtractableText):
		return KindEmptyDocument
	case errors.Is(err, ErrDocumentTooLarge):
		return KindDocumentTooLarge
	case errors.Is(err, ErrUnsupportedDocument), errors.Is(err, ErrExtractorUnavailable):
		return KindUnsupportedDocument
	case errors.Is(err, ErrExtractionFailure):
		return KindExtractionFailure
	default:
		return KindExternalProviderFailure
	}
}
