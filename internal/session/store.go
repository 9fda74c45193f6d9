package session

import (
	"context"
	"errors"
	"sync"

	"turuplats-client/internal/logger"
	"turuplats-client/internal/rest"

	"go.uber.org/zap"
)

// Store holds the authenticated user, or none. It is the only
// source other components consult for "who is signed in"; the user value
// is replaced wholesale on bootstrap, login and logout, never patched.
type Store struct {
	mu      sync.RWMutex
	gw      Gateway
	user    *User
	loading bool
}

func NewStore(gw Gateway) *Store {
	return &Store{gw: gw, loading: true}
}

// Bootstrap resolves the session cookie into a user exactly once at
// startup. Any failure, including plain "not signed in", leaves the store
// anonymous; it never retries.
func (s *Store) Bootstrap(ctx context.Context) {
	user, err := s.gw.Me(ctx)
	if err != nil {
		if !errors.Is(err, rest.ErrUnauthenticated) {
			logger.FromCtx(ctx).Warn("session bootstrap failed", zap.Error(err))
		}
		user = nil
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
}

// Login authenticates and then re-fetches the profile from /api/users/me.
// The login response body is never trusted for identity. On any failure
// the current user is left unchanged.
func (s *Store) Login(ctx context.Context, creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrMissingCredentials
	}

	if err := s.gw.Login(ctx, creds); err != nil {
		if errors.Is(err, rest.ErrUnauthenticated) {
			return ErrInvalidCredentials
		}
		return err
	}

	user, err := s.gw.Me(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("user signed in", zap.Int("user_id", user.ID))
	return nil
}

// Logout tells the backend to drop the session, best-effort, and clears
// the local user unconditionally.
func (s *Store) Logout(ctx context.Context) {
	if err := s.gw.Logout(ctx); err != nil {
		logger.FromCtx(ctx).Warn("logout call failed", zap.Error(err))
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Register creates the account and signs it in, mirroring the sign-up
// flow where a fresh registration lands the user on the home page
// already authenticated.
func (s *Store) Register(ctx context.Context, input RegisterInput) error {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return ErrMissingFields
	}

	if err := s.gw.Register(ctx, input); err != nil {
		return err
	}

	return s.Login(ctx, Credentials{Email: input.Email, Password: input.Password})
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Loading reports whether the initial bootstrap has not completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
