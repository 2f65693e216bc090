package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/tokens"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

var ErrNoAuthenticator = errors.New("session: no authenticator configured")

// Authenticator is the subset of the auth API the store calls.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Me(ctx context.Context) (*api.User, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.User, error)
}

type Store struct {
	mu      sync.RWMutex
	token   string
	user    *api.User
	storage tokens.Storage
	auth    Authenticator
	log     logging.Logger
}

// NewStore initialises the store from the persisted token. The profile
// starts empty even when a token is found.
func NewStore(ctx context.Context, storage tokens.Storage, log logging.Logger) (*Store, error) {
	if storage == nil {
		return nil, errors.New("session: token storage is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	token, err := storage.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read persisted token: %w", err)
	}
	return &Store{token: token, storage: storage, log: log}, nil
}

// SetAuthenticator binds the auth API. The HTTP pipeline needs the store
// before the auth API can exist, so this happens after construction.
func (s *Store) SetAuthenticator(auth Authenticator) {
	s.mu.Lock()
	s.auth = auth
	s.mu.Unlock()
}

func (s *Store) authenticator() (Authenticator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth == nil {
		return nil, ErrNoAuthenticator
	}
	return s.auth, nil
}

// Login authenticates with the backend and, on success, persists the token
// and replaces the in-memory token and profile. Nothing changes on failure.
func (s *Store) Login(ctx context.Context, username, password string) error {
	auth, err := s.authenticator()
	if err != nil {
		return err
	}

	resp, err := auth.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	if err := s.storage.SetToken(ctx, resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.mu.Lock()
	s.token = resp.Token
	s.user = resp.User
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "username", username)
	return nil
}

// FetchProfile refreshes the profile from the backend. Without a token it
// does nothing.
func (s *Store) FetchProfile(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return nil
	}
	auth, err := s.authenticator()
	if err != nil {
		return err
	}

	u, err := auth.Me(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// Register creates an account. The session is not touched.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	auth, err := s.authenticator()
	if err != nil {
		return nil, err
	}
	return auth.Register(ctx, req)
}

// Logout clears the in-memory session and removes both persisted tokens.
// Memory is cleared even when storage fails; the storage error is returned.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasLoggedIn := s.token != ""
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Remove(ctx); err != nil {
		s.log.Error(ctx, "remove persisted token", "error", err)
		return fmt.Errorf("remove persisted token: %w", err)
	}
	if wasLoggedIn {
		s.log.Info(ctx, "logged out")
	}
	return nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the profile, or nil when none is loaded.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == api.RoleAdmin
}
