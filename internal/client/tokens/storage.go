package tokens

import (
	"context"
	"net/url"
	"strings"
)

const (
	KeyToken        = "token"
	KeyRefreshToken = "refresh_token"
)

// Storage is the persistent token storage adapter.
type Storage interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RefreshToken(ctx context.Context) (string, error)
	Remove(ctx context.Context) error
}

// ScopeFromURL reduces an API base URL to its origin. Inputs that do not
// parse as absolute URLs are returned trimmed, unchanged otherwise.
func ScopeFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimSpace(raw)
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}
