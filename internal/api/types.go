// Package api defines the JSON request and response bodies of the HTTP API.
package api

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse is the success body of POST /api/analyze.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

// ExtractResponse is the success body of POST /api/extract.
type ExtractResponse struct {
	Text        string `json:"text"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Method      string `json:"method"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
