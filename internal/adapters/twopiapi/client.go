// Package twopiapi is the typed HTTP client for the remote twopi REST API,
// the collaborator that owns storage, authentication, and the UI. It decodes
// wire payloads into dto structs, validates them, and hands domain types to
// the core.
package twopiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/platform/logging"
)

// Client talks to a twopi API instance. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8000/twopi-api").
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		validate:   validator.New(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// do performs one request and decodes a 2xx JSON response into out (when out
// is non-nil). Upstream status codes are mapped onto the app error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.FromCtx(ctx).Debug("Calling twopi API",
		slog.String("method", method),
		slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, method, path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s %s: %s", apperrors.ErrValidation, method, path, readErrorBody(resp.Body))
	default:
		return fmt.Errorf("unexpected status %d from %s %s: %s", resp.StatusCode, method, path, readErrorBody(resp.Body))
	}
}

// validateEach runs struct validation over every element of a decoded list so
// a malformed upstream payload fails loudly instead of corrupting reports.
func validateEach[T any](c *Client, items []T) error {
	for i, item := range items {
		if err := c.validate.Struct(item); err != nil {
			return fmt.Errorf("%w: item %d: %w", apperrors.ErrValidation, i, err)
		}
	}
	return nil
}

func readErrorBody(r io.Reader) string {
	payload, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(payload))
}
