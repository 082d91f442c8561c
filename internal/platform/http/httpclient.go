// Package http provides the outbound HTTP client used by the page to call the API.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole page → API round trip, including the provider call.
const DefaultTimeout = 2 * time.Minute

// NewHTTPClient returns a client with an explicit transport and an overall timeout.
//
//   - Proxy honours HTTP_PROXY and friends.
//   - Dial and TLS handshake are capped at 5s so an unreachable API fails fast.
//   - Idle connections are kept for reuse between page requests.
//   - timeout <= 0 selects DefaultTimeout; http.DefaultClient has no timeout and is never used.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
