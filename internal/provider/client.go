package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client calls the upstream provider over HTTP using a shared resty client.
type Client struct {
	client *resty.Client
}

// NewClient creates a Client for the given base URL. The API key is sent
// on every request as the X-Api-Key header.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if apiKey != "" {
		c.SetHeader("X-Api-Key", apiKey)
	}

	return &Client{client: c}
}

// Do executes one request against the upstream API. Every HTTP response is
// returned as a Response, including 4xx/5xx; classification is the
// caller's concern.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	req := c.client.R().SetContext(ctx)
	for k, vs := range query {
		for _, v := range vs {
			req.SetQueryParam(k, v)
		}
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("provider request %s %s: %w", method, path, err)
	}
	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// HealthPing verifies upstream reachability via the status endpoint.
func (c *Client) HealthPing(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodGet, PathStatus, nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("provider status endpoint returned %d", resp.StatusCode)
	}
	return nil
}
