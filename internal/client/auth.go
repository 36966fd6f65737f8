package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/jonathan/resume-nest/internal/types"
)

// Session holds the credential for one signed-in user. It is passed explicitly
// to every authenticated call.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *types.User
}

// NewSession wraps an existing token, e.g. one loaded from disk.
func NewSession(token string, user *types.User) *Session {
	return &Session{token: token, user: user}
}

// Token returns the bearer token, or "" after Logout.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user.
func (s *Session) User() *types.User {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Logout discards the credential.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*Session, error) {
	var resp types.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, path, "", body, &resp); err != nil {
		return nil, err
	}
	return NewSession(resp.Token, resp.User), nil
}

// Signup registers an account and returns its session.
func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/auth/signup", types.SignupRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	})
}

// Login signs in and returns a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/auth/login", types.LoginRequest{
		Email:    email,
		Password: password,
	})
}

// Me fetches the account behind the session.
func (c *Client) Me(ctx context.Context, s *Session) (*types.User, error) {
	var user types.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", s.Token(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
