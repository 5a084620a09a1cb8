package shared

import (
	"net/http"
	"time"
)

// NewRegistryHTTPClient creates the HTTP client used for outbound registry
// calls. The overall timeout caps the full request so a slow upstream turns
// into a clean not-verified result instead of a hung handler; the pooled
// transport keeps connections to the registry warm between verifications.
func NewRegistryHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,

			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
