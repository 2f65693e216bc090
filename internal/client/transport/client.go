package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogcli/internal/logging"
)

const DefaultTimeout = 10 * time.Second

// Session is the part of the session store the pipeline needs: the current
// token for authorize, and Logout for the 401 interrupt.
type Session interface {
	Token() string
	Logout(ctx context.Context) error
}

// Navigator moves the user to another page, replacing the current one.
type Navigator interface {
	Replace(path string) error
}

// Notifier shows a one-shot message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// LoginPath is where a 401 sends the user.
const LoginPath = "/login"

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	session   Session
	navigator Navigator
	notifier  Notifier
	log       logging.Logger
	requestID func() string
}

type Option func(*Client)

// WithHTTPClient uses a copy of hc as the underlying *http.Client. The
// copy's Timeout is overwritten with the pipeline timeout; hc is untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestIDFunc overrides the X-Request-ID generator.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) { c.requestID = fn }
}

// NewClient builds the pipeline around baseURL, which must be absolute.
// A zero timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, session Session, nav Navigator, notifier Notifier, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}
	if session == nil || nav == nil || notifier == nil {
		return nil, errors.New("transport: session, navigator and notifier are required")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:   u,
		http:      &http.Client{},
		session:   session,
		navigator: nav,
		notifier:  notifier,
		log:       logging.Nop(),
		requestID: newRequestID,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.Timeout = timeout
	return c, nil
}

// BaseURL returns the absolute API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Timeout returns the per-request ceiling applied to every call.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Do sends a JSON request and decodes the envelope data into dest (which
// may be nil). body is marshalled to JSON when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, dest any) error {
	req, err := c.buildJSON(ctx, method, path, query, body)
	if err != nil {
		return c.reject(ctx, req, err)
	}
	return c.run(ctx, req, dest)
}

// upload sends a multipart body built by newMultipart.
func (c *Client) upload(ctx context.Context, path string, body io.Reader, contentType string, dest any) error {
	req, err := c.build(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return c.reject(ctx, req, err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.run(ctx, req, dest)
}

// run executes the stages in their fixed order.
func (c *Client) run(ctx context.Context, req *http.Request, dest any) error {
	c.authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.handleTransportError(ctx, req, nil, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "response received",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get(requestIDHeader),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleTransportError(ctx, req, resp, nil)
	}
	return c.unwrap(ctx, req, resp, dest)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimPrefix(path, "/")
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	} else {
		u.RawQuery = ""
	}
	return u.String()
}
