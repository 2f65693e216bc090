package api

import (
	"context"

	"github.com/dmitrijs2005/blogcli/internal/client/transport"
)

type AuthAPI struct {
	c *transport.Client
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	u, err := transport.Post[User](ctx, a.c, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := transport.Post[LoginResponse](ctx, a.c, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the profile of the token holder.
func (a *AuthAPI) Me(ctx context.Context) (*User, error) {
	u, err := transport.Get[User](ctx, a.c, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
