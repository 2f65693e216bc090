package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/blogcli/internal/common"
	"github.com/google/uuid"
)

const requestIDHeader = common.RequestIDHeaderName

// maxErrorBody bounds how much of a failed response is read looking for
// an envelope message.
const maxErrorBody = 1 << 20

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (e envelope) ok() bool {
	return e.Code == http.StatusOK || e.Code == http.StatusCreated
}

func newRequestID() string {
	return uuid.NewString()
}

func (c *Client) build(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) buildJSON(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = bytes.NewReader(data)
	}
	req, err := c.build(ctx, method, path, query, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// authorize attaches the bearer token iff the session holds one.
func (c *Client) authorize(req *http.Request) {
	req.Header.Set(requestIDHeader, c.requestID())
	if token := c.session.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerToken(token))
		return
	}
	req.Header.Del(common.AuthorizationHeaderName)
}

// unwrap resolves a 2xx response: data on code 200/201, APIError otherwise.
func (c *Client) unwrap(ctx context.Context, req *http.Request, resp *http.Response, dest any) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.notify(FallbackBusinessMessage)
		c.log.Warn(ctx, "malformed envelope", "path", req.URL.Path, "error", err)
		return &APIError{Message: FallbackBusinessMessage, Err: err}
	}

	if !env.ok() {
		msg := env.Message
		if msg == "" {
			msg = FallbackBusinessMessage
		}
		c.notify(msg)
		c.log.Info(ctx, "business error", "path", req.URL.Path, "code", env.Code, "message", env.Message)
		return &APIError{Code: env.Code, Message: msg}
	}

	if dest == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		c.notify(FallbackBusinessMessage)
		c.log.Warn(ctx, "cannot decode envelope data", "path", req.URL.Path, "error", err)
		return &APIError{Code: env.Code, Message: FallbackBusinessMessage, Err: err}
	}
	return nil
}

// handleTransportError covers non-2xx statuses and requests that never got
// a response. A 401 clears the session and jumps to the login page before
// the notification is shown.
func (c *Client) handleTransportError(ctx context.Context, req *http.Request, resp *http.Response, cause error) error {
	status := 0
	msg := ""
	if resp != nil {
		status = resp.StatusCode
		msg = readMessage(resp.Body)
	}

	if status == http.StatusUnauthorized {
		if err := c.session.Logout(ctx); err != nil {
			c.log.Error(ctx, "forced logout failed", "error", err)
		}
		if err := c.navigator.Replace(LoginPath); err != nil {
			c.log.Error(ctx, "redirect to login failed", "error", err)
		}
	}

	if msg == "" {
		msg = FallbackNetworkMessage
	}
	c.notify(msg)

	c.log.Warn(ctx, "request failed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", status,
		"request_id", req.Header.Get(requestIDHeader),
		"error", cause,
	)

	if cause == nil {
		cause = errors.New(http.StatusText(status))
	}
	return &TransportError{Status: status, Message: msg, Err: cause}
}

// reject handles failures that happen before anything is sent.
func (c *Client) reject(ctx context.Context, req *http.Request, err error) error {
	c.notify(FallbackBusinessMessage)
	path := ""
	if req != nil {
		path = req.URL.Path
	}
	c.log.Error(ctx, "request not sent", "path", path, "error", err)
	return err
}

func (c *Client) notify(msg string) {
	c.notifier.Notify(msg)
}

func readMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.Message
}
