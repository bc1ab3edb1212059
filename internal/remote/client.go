package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultTimeout bounds every individual fetch against the content
// repository and image hosts.
const DefaultTimeout = 30 * time.Second

// Client fetches remote content over HTTP.
type Client struct {
	HTTPClient *http.Client
}

// NewClient creates a client with the default timeout. CARDEX_TIMEOUT can
// override it with any duration string (e.g. "2m").
func NewClient() *Client {
	timeout := DefaultTimeout
	if v := os.Getenv("CARDEX_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchBytes downloads the resource at url into memory.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return data, nil
}

// FetchJSON downloads and unmarshals a JSON document.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	data, err := c.FetchBytes(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return nil
}
