package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://example.com"})
//	resp, err := client.R().Get("/users")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions describes the fixed settings every request of an
// [HTTPClient] carries. Zero values leave the resty defaults untouched.
type HTTPClientOptions struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// with opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	    Headers: map[string]string{"Accept": "application/json"},
//	})
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if len(opts.Headers) > 0 {
		client.SetHeaders(opts.Headers)
	}

	return &HTTPClient{Client: client}
}

// Close releases idle keep-alive connections held by the underlying
// transport. The client stays usable; new requests open new connections.
func (c *HTTPClient) Close() {
	c.GetClient().CloseIdleConnections()
}
