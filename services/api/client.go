// Package apisvc is the authenticated gateway to the remote MedHistory
// backend: one method per endpoint, bearer auth injected from the session,
// and non-2xx responses normalized to core.APIError.
package apisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core"
)

// TokenSource is any store that can produce the current bearer token.
// An empty token means "not logged in".
type TokenSource interface {
	Token() string
}

type Options struct {
	BaseURL string
	// Timeout bounds every request; 0 means no client-side deadline, a call
	// then only ends when the server answers or ctx is cancelled.
	Timeout time.Duration
	Session TokenSource
	Logger  core.Logger
}

type Client struct {
	baseURL string
	http    *http.Client
	session TokenSource
	logger  core.Logger
}

func NewClient(opts *Options) *Client {
	return &Client{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: opts.Timeout},
		session: opts.Session,
		logger:  opts.Logger,
	}
}

// request issues a single attempt against baseURL+path: no retries, no
// backoff. The body (if any) is JSON-serialized; a 2xx response is decoded
// into out verbatim, without schema validation. Cancellation comes from ctx.
func (c *Client) request(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.session.Token()
		if token == "" {
			// fail fast, before any network I/O
			return core.ErrNoAuthToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug(method + " " + path)
	res, err := c.http.Do(req)
	if err != nil {
		// transport failures (DNS, refused connection, cancellation)
		// propagate as-is; the gateway does not swallow them
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return apiError(res.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.request(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.request(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.request(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.request(ctx, http.MethodDelete, path, nil, nil, true)
}

// apiError extracts the backend's message from a non-2xx body when it is
// JSON with a message (or error) field, else falls back to the status text.
func apiError(statusCode int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &core.APIError{StatusCode: statusCode, Message: msg}
}
