package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/dmitrijs2005/formsclient/internal/logging"
)

// Client talks to one backend base address with a fixed request timeout.
// It keeps no per-user state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewClient returns a facade bound to baseURL (e.g. http://localhost:5179).
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidBackendURL, baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single request. A nil auth sends no Authorization header; it is
// used only by the register and login calls.
func (c *Client) do(ctx context.Context, method, path string, auth *session.Identity, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &RequestError{Method: method, Path: path, Err: fmt.Errorf("encode body: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil {
		req.Header.Set(common.AuthorizationHeaderName, auth.AuthorizationHeader())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "backend call failed", "method", method, "path", path, "error", err)
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug(ctx, "backend call", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       data,
			Message:    messageFromBody(data),
		}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (c *Client) authed(ctx context.Context, method, path string, auth session.Identity, payload any) (*Response, error) {
	return c.do(ctx, method, path, &auth, payload)
}
