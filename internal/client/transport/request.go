package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Get fetches path and returns the unwrapped data as T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodGet, path, query, nil, &out)
	return out, err
}

func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPost, path, nil, body, &out)
	return out, err
}

func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPut, path, nil, body, &out)
	return out, err
}

func Delete(ctx context.Context, c *Client, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Upload posts r as a multipart form with a single file field.
func Upload[T any](ctx context.Context, c *Client, path, field, filename string, r io.Reader) (T, error) {
	var out T
	body, contentType, err := newMultipart(field, filename, r)
	if err != nil {
		return out, c.reject(ctx, nil, err)
	}
	err = c.upload(ctx, path, body, contentType, &out)
	return out, err
}

func newMultipart(field, filename string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
