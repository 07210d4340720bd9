package utils

import (
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL that keeps cookies between
// requests, so a session cookie set by sign-in is sent on later calls.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/auth/get-session")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	// cookiejar.New only fails for a non-nil Options with a bad PublicSuffixList
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}
