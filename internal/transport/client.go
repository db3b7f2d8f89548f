// Package transport provides the HTTP fetch helper the image handlers use
// to retrieve upstream badges and images. Every fetch is attempted once;
// timeout behavior comes from the client's single overall timeout.
package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/opencollective/images/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// maxBodyBytes caps how much of an upstream body is read into memory.
const maxBodyBytes = 32 << 20 // 32 MiB

// Client fetches upstream resources over HTTP.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing
// http.Client. Used by tests to target httptest servers.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		return New()
	}
	return &Client{http: httpClient}
}

// FetchBytes performs a GET request and returns the response body.
// Non-2xx statuses are reported as an UpstreamError.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapUpstream(url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapUpstream(url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewUpstreamError(url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapUpstream(url, err)
	}
	return body, nil
}

// FetchText performs a GET request and returns the response body as text.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	body, err := c.FetchBytes(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
