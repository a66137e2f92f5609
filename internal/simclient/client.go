// Package simclient issues single HTTP calls against the bug simulation
// service and classifies what came back.
package simclient

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

	"github.com/google/uuid"

	"simconsole/internal/logger"
)

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds how much of a response body is kept for display.
const maxBodyBytes = 1 << 20

// ErrInvalidRequest is reported when a call is missing its method or path.
var ErrInvalidRequest = errors.New("request needs a method and a path")

// Request is one call to issue.
type Request struct {
	Method  string
	Path    string
	Payload any // nil means no body
}

// Doer is anything that can perform a Request.
type Doer interface {
	Do(ctx context.Context, req Request) Outcome
}

// Client talks to a single base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.WithComponent("simclient")
		}
	}
}

// New creates a client for baseURL. timeout bounds every call (0 = none).
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs req exactly once. It never returns an error: failures are
// described by the Outcome.
func (c *Client) Do(ctx context.Context, req Request) Outcome {
	start := c.now()
	id := uuid.NewString()

	out := Outcome{RequestID: id}
	finish := func() Outcome {
		out.Duration = c.now().Sub(start)
		if out.Duration < 0 {
			out.Duration = 0
		}
		return out
	}

	if req.Method == "" || req.Path == "" {
		out.Kind = KindTransport
		out.Err = ErrInvalidRequest
		return finish()
	}

	var body io.Reader
	if req.Payload != nil {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			out.Kind = KindTransport
			out.Err = fmt.Errorf("encode payload: %w", err)
			return finish()
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		out.Kind = KindTransport
		out.Err = fmt.Errorf("build request: %w", err)
		return finish()
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(RequestIDHeader, id)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		out.Kind = KindTransport
		out.Err = err
		c.logger.Debug("request failed", "method", req.Method, "path", req.Path, "request_id", id, "error", err)
		return finish()
	}
	defer resp.Body.Close()

	// Elapsed time is taken when the response headers arrive.
	out = finish()
	out.StatusCode = resp.StatusCode
	out.ContentType = resp.Header.Get("Content-Type")
	out.Body, out.BodyJSON, out.Truncated = decodeBody(resp.Body, out.ContentType)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		out.Kind = KindSuccess
	} else {
		out.Kind = KindApplication
	}

	c.logger.Debug("request finished",
		"method", req.Method,
		"path", req.Path,
		"status_code", resp.StatusCode,
		"duration_ms", out.Millis(),
		"request_id", id,
	)
	return out
}

// decodeBody parses JSON when the content type says so and falls back to text.
// A body over maxBodyBytes is cut and never parsed.
func decodeBody(r io.Reader, contentType string) (body any, isJSON, truncated bool) {
	raw, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil && len(raw) == 0 {
		return "", false, false
	}
	if len(raw) > maxBodyBytes {
		return string(raw[:maxBodyBytes]), false, true
	}

	if strings.Contains(contentType, "application/json") {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			return parsed, true, false
		}
	}
	return string(raw), false, false
}
