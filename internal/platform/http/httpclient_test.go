package http

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	c := NewHTTPClient(30 * time.Second)

	if c.Timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", c.Transport)
	}
	if tr.TLSHandshakeTimeout != 5*time.Second {
		t.Errorf("expected TLS handshake timeout 5s, got %v", tr.TLSHandshakeTimeout)
	}
	if tr.Proxy == nil {
		t.Error("expected proxy from environment to be configured")
	}
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	t.Parallel()

	if got := NewHTTPClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, got)
	}
}
