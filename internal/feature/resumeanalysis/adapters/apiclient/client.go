// Package apiclient はページからレジュメ分析APIを呼び出すHTTPクライアントを提供します。
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"resume_analyzer/internal/api"
	"resume_analyzer/internal/feature/resumeanalysis/domain"
)

const (
	analyzePath = "/api/analyze"
	extractPath = "/api/extract"

	// maxErrorBody はエラーレスポンスとして読み込む最大バイト数です。
	maxErrorBody = 64 << 10
)

// APIError はAPIが2xx以外を返したことを表します。
type APIError struct {
	Status  int
	Kind    string
	Message string
}

func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("api returned %d (%s): %s", e.Status, e.Kind, e.Message)
	}
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

// Client はレジュメ分析APIのHTTPクライアントです。
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient はClientの新しいインスタンスを生成します。
// baseURL は末尾スラッシュなし（例: "http://localhost:8080"）を想定します。
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, http: httpClient}
}

// Analyze は POST /api/analyze を呼び出し、analysis フィールドを返します。
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(api.AnalyzeRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var out api.AnalyzeResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Analysis, nil
}

// Extract は POST /api/extract にファイルを1つ送り、抽出された本文を返します。
func (c *Client) Extract(ctx context.Context, fileName string, data []byte) (string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+extractPath, buf)
	if err != nil {
		return "", fmt.Errorf("create extract request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var out api.ExtractResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// do はリクエストを送信し、成功時は out にデコードします。
// 接続できない場合は domain.ErrNetwork を、2xx以外は *APIError を返します。
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{Status: resp.StatusCode}
		var er api.ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Error != "" {
			apiErr.Kind = er.Kind
			apiErr.Message = er.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
