// Package client is the data access layer used by UI-facing tooling.
//
// It wraps every API call with one uniform policy: the stored bearer token
// is attached when present, a 401 clears the token and signals
// re-authentication, and reads may substitute a caller-supplied fallback —
// but only when the response body is genuinely absent. A valid empty
// collection is a result, not an absence, and is returned as-is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthenticated is returned when the server rejects the bearer token.
// The stored token has already been cleared by the time callers see it.
var ErrUnauthenticated = errors.New("not authenticated")

// APIError is a non-2xx response surfaced to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client issues authenticated requests against the API server.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenStore
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUnauthorizedHook registers a callback invoked after a 401 clears the
// stored token. The UI hangs its login redirect here.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a Client for the given API base URL.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request and returns the raw response body.
// 401 handling happens here so every caller gets the same behavior.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.tokens.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusUnauthorized {
		// Session is dead: drop the token and let the UI send the user
		// back to the login view.
		_ = c.tokens.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthenticated
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{Status: res.StatusCode, Message: errorMessage(raw)}
	}

	return raw, nil
}

// errorMessage extracts the server's {"error": "..."} body, if any.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}

// absent reports whether a response body carries no value at all.
// Only an empty body or JSON null counts; `[]` and `{}` are real values.
func absent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// Get fetches path and decodes the response into T.
// Errors and absent bodies propagate to the caller.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}
	if absent(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// GetOr fetches path, substituting fallback when the read fails or the
// body is absent. A 401 still propagates (the caller must re-authenticate,
// not render defaults), and a valid empty collection is returned as-is.
func GetOr[T any](ctx context.Context, c *Client, path string, fallback T) (T, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			var zero T
			return zero, err
		}
		return fallback, nil
	}
	if absent(raw) {
		return fallback, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback, nil
	}
	return out, nil
}

// Post sends body to path and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return out, err
	}
	if absent(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}
