package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("session: no token")

// Claims mirrors what the backend puts into its access tokens.
type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenClaims decodes the held token without checking its signature. The
// result is for display only.
func (s *Store) TokenClaims() (*Claims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return claims, nil
}
