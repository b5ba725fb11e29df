package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the sync client to the server access log.
const UserAgent = "go-note-sync-client"

// HTTPClient is the resty client the sync adapter talks to the server with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
