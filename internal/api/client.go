// Package api is the single choke point for all backend calls. Every request
// carries the current token, every 401 response forces the session out
// through the unauthorized hook, and every error reaches callers in one
// normalized shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/wmstack/wmsctl/internal/log"
)

// DefaultTimeout bounds every request so a dead network cannot leave the
// session loader stuck in its loading state.
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the current bearer token. It is consulted fresh on
// every request, never cached in the client, since the token can change
// mid-session (login, logout, forced logout).
type TokenSource interface {
	Token() string
}

// Client is the warehouse backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens         TokenSource
	onUnauthorized func()
	logger         *log.Logger
	retryAttempts  uint
}

// NewClient creates a new API client with a bounded default timeout
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:        log.DefaultLogger(),
		retryAttempts: 3,
	}
}

// SetTimeout overrides the request timeout
func (c *Client) SetTimeout(d time.Duration) {
	c.HTTPClient.Timeout = d
}

// SetTokenSource installs the token provider
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SetUnauthorizedHook installs the callback invoked on any 401 response.
// This is the only path by which a non-explicit logout occurs.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.onUnauthorized = hook
}

// SetLogger overrides the logger
func (c *Client) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// get performs a GET request with bounded retries on transient failures.
// Only GETs retry: they are idempotent, and a retried write could duplicate
// an order or a payment.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return retry.Do(
		func() error {
			return c.doRequest(ctx, http.MethodGet, path, query, nil, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}

// isTransient reports whether an error is worth retrying: transport
// failures and 5xx responses. 401s and other client errors are final.
func isTransient(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}

// doRequest performs a single HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// Token is read fresh per request, not captured at client construction.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Warn("request transport failure",
			"method", method, "path", path, "request_id", requestID, "error", err.Error())
		return &TransportError{Cause: err}
	}

	return c.parseResponse(resp, method, path, requestID, out)
}

// parseResponse enforces the 401 policy, normalizes error payloads, and
// decodes successful bodies into out.
func (c *Client) parseResponse(resp *http.Response, method, path, requestID string, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Info("unauthorized response, forcing logout",
			"method", method, "path", path, "request_id", requestID)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		message := normalizeErrorMessage(resp.StatusCode, raw)
		c.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID,
			"status", resp.StatusCode, "message", message)
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
