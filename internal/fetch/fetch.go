// Package fetch downloads board descriptions from HTTP URLs. GitHub web
// viewer links are rewritten to their raw-content equivalents so users can
// paste the browser URL directly.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const fetchTimeout = 30 * time.Second

// Client fetches remote board files.
type Client struct {
	http *http.Client
}

// NewClient returns a Client with a sensible request timeout.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: fetchTimeout}}
}

// IsURL reports whether the input names a remote resource rather than a
// local file.
func IsURL(input string) bool {
	lower := strings.ToLower(input)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// RawURL rewrites a GitHub web viewer URL to its raw content URL. Other URLs
// pass through unchanged.
func RawURL(url string) string {
	if strings.Contains(url, "github.com") && strings.Contains(url, "/blob/") {
		url = strings.Replace(url, "github.com", "raw.githubusercontent.com", 1)
		url = strings.Replace(url, "/blob/", "/", 1)
	}
	return url
}

// Get downloads the resource at url and returns its body. Non-2xx responses
// are errors; for GitHub, the hint is usually that the caller pasted a web
// page URL instead of the raw file.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RawURL(url), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}
