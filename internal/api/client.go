// Package api is the HTTP boundary to the pennyflow service. Every call goes
// through a single client; failures come back as errors for the caller to
// surface as notifications, never as partial or corrupted data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StatusError is a non-success HTTP response. Its message carries the status
// text shown to the user in a notification.
type StatusError struct {
	Status     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return e.Status
}

// Client talks to the pennyflow service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON payload and decodes the response into out.
// The payload is expected to be validated by the producing form already.
func (c *Client) Post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Delete issues a DELETE and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("API request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("API request complete",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{
			Status:     fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Download streams a raw response body to w, reporting the declared content
// length. Used for the export endpoint, which is a file download rather than
// a JSON resource.
func (c *Client) Download(ctx context.Context, path string, w io.Writer, onStart func(contentLength int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{
			Status:     fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	if onStart != nil {
		onStart(resp.ContentLength)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to stream export: %w", err)
	}
	return nil
}
