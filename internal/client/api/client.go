// Package api is the typed gateway to the Thaedal admin REST API.
// It attaches the session credential to every call and normalizes
// failures into the taxonomy in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

const basePath = "/api/v1/admin"

// TokenSource yields the current credential token. An empty string
// means no credential; the request is sent unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// Client is the HTTP client for the admin API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHook sets the callback fired when an attached
// credential is rejected with 401. The session store registers itself
// here so invalidation stays decoupled from this package.
func WithUnauthorizedHook(hook func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

// SetTokenSource replaces the token source. Used where the source (the
// session store) is constructed after the client it depends on.
func (c *Client) SetTokenSource(ts TokenSource) { c.tokens = ts }

// SetUnauthorizedHook replaces the unauthorized callback.
func (c *Client) SetUnauthorizedHook(hook func(ctx context.Context)) { c.onUnauthorized = hook }

// NewClient creates a new admin API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs one HTTP round trip. path is relative to the admin
// base path. body (if non-nil) is sent as JSON; result (if non-nil)
// receives the decoded response body.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	fullURL := c.baseURL + basePath + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	token := ""
	if c.tokens != nil {
		token = c.tokens.Token(ctx)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapFailure(ctx, resp.StatusCode, respBody, token != "")
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// mapFailure turns a non-2xx response into the gateway's error
// taxonomy. The unauthorized hook only fires when a credential was
// actually attached and rejected; a 401 on an unauthenticated call
// (wrong login) is not a session invalidation.
func (c *Client) mapFailure(ctx context.Context, status int, body []byte, hadToken bool) error {
	var errResp pkgapi.ErrorResponse
	message := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch {
	case status == http.StatusUnauthorized:
		if hadToken && c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return fmt.Errorf("%s: %w", message, ErrUnauthorized)

	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", message, ErrNotFound)

	case status == http.StatusBadRequest ||
		status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity:
		return &ValidationError{Message: message, Fields: errResp.Fields}

	default:
		return &ServerError{StatusCode: status, Message: message}
	}
}
