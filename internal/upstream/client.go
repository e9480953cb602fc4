package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"depdemo/internal/config"
)

// Result is the outcome of a successful upstream call.
type Result struct {
	Body        []byte
	StatusCode  int
	ContentType string
}

// Fetcher issues the outbound GET against the configured upstream endpoint.
type Fetcher interface {
	Fetch(ctx context.Context) (*Result, error)
	URL() string
}

// Client is an HTTP client bound to a single upstream URL.
// The transport is OTel-instrumented so outbound spans join the request trace.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a Client from upstream configuration.
func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("upstream url is required")
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		url: cfg.URL,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}, nil
}

var _ Fetcher = (*Client)(nil)

// URL returns the configured upstream URL.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one GET against the upstream URL and reads the full body.
// A non-2xx upstream status is treated as an error.
func (c *Client) Fetch(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}

	return &Result{
		Body:        body,
		StatusCode:  resp.StatusCode,
		ContentType: ct,
	}, nil
}
