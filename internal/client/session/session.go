// Package session owns the admin session: exactly one per running
// console. It is the single writer of the persisted credential; every
// other component either reads it (as a token source) or requests a
// transition (the gateway's unauthorized hook).
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/storage"
	"github.com/thaedal/thaedal-admin/internal/validation"
	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

// Identity is the authenticated admin shown in the console header.
type Identity struct {
	Name  string
	Email string
}

// LoginResult reports the outcome of a login attempt. Login never
// returns an error; failures carry a human-readable reason instead.
type LoginResult struct {
	OK      bool
	Message string
}

// Store holds the session state machine:
// loading -> {authenticated, unauthenticated} on startup,
// unauthenticated -> authenticated on login,
// authenticated -> unauthenticated on logout or invalidation.
type Store struct {
	mu       sync.Mutex
	client   *api.Client
	creds    storage.CredentialStorage
	logger   *slog.Logger
	identity *Identity
	token    string
	loading  bool
}

// NewStore creates the session store in the loading state. Call
// CheckSession before relying on IsAuthenticated.
func NewStore(client *api.Client, creds storage.CredentialStorage, logger *slog.Logger) *Store {
	return &Store{
		client:  client,
		creds:   creds,
		logger:  logger,
		loading: true,
	}
}

// Token implements api.TokenSource.
func (s *Store) Token(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether an identity is resolved.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// IsLoading reports whether the startup identity check is still pending.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Identity returns a copy of the authenticated identity, or nil.
func (s *Store) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// CheckSession resolves a stored credential to an identity on startup.
// Absence of a credential is not an error. The loading flag drops on
// every terminal path.
func (s *Store) CheckSession(ctx context.Context) error {
	defer s.setLoading(false)

	creds, err := s.creds.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read stored credentials: %w", err)
	}

	if creds.Expired() {
		s.logger.Info("stored credential expired, clearing")
		if err := s.creds.DeleteCredentials(ctx); err != nil {
			return fmt.Errorf("failed to clear expired credentials: %w", err)
		}
		return nil
	}

	s.setSession(creds.Token, &Identity{Name: creds.Name, Email: creds.Email})

	profile, err := s.client.Profile(ctx)
	switch {
	case err == nil:
		s.setSession(creds.Token, &Identity{Name: profile.Name, Email: profile.Email})
	case errors.Is(err, api.ErrUnauthorized):
		// The gateway's hook has already requested invalidation; make
		// sure the state is clean even if the hook was not wired.
		s.Invalidate(ctx)
	default:
		// Transient failure: keep the last known identity, the next
		// authenticated call will sort it out.
		s.logger.Warn("profile check failed, keeping stored identity", "error", err)
	}

	return nil
}

// Login validates the credential pair against the server. On success
// the credential token is persisted and the identity resolved.
func (s *Store) Login(ctx context.Context, email, password string) LoginResult {
	if err := validation.ValidateEmail(email); err != nil {
		return LoginResult{Message: err.Error()}
	}
	if err := validation.ValidatePassword(password); err != nil {
		return LoginResult{Message: err.Error()}
	}

	resp, err := s.client.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return LoginResult{Message: "Invalid credentials"}
		}
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			return LoginResult{Message: "Invalid credentials"}
		}
		return LoginResult{Message: fmt.Sprintf("login failed: %v", err)}
	}

	creds := &storage.Credentials{
		Token: resp.Token,
		Name:  resp.Name,
		Email: resp.Email,
	}
	if resp.ExpiresIn > 0 {
		creds.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	if err := s.creds.SaveCredentials(ctx, creds); err != nil {
		return LoginResult{Message: fmt.Sprintf("failed to persist session: %v", err)}
	}

	s.setSession(resp.Token, &Identity{Name: resp.Name, Email: resp.Email})
	s.logger.Info("logged in", "email", resp.Email)

	return LoginResult{OK: true}
}

// Logout clears the persisted credential and identity unconditionally.
// The server notification is best effort.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	hadToken := s.token != ""
	s.mu.Unlock()

	if hadToken {
		if err := s.client.Logout(ctx); err != nil {
			s.logger.Warn("failed to logout on server", "error", err)
		}
	}

	if err := s.creds.DeleteCredentials(ctx); err != nil {
		return fmt.Errorf("failed to delete stored credentials: %w", err)
	}

	s.setSession("", nil)
	return nil
}

// Invalidate transitions to unauthenticated after the server rejected
// the credential. Wired as the gateway's unauthorized hook.
func (s *Store) Invalidate(ctx context.Context) {
	if err := s.creds.DeleteCredentials(ctx); err != nil {
		s.logger.Error("failed to delete invalidated credentials", "error", err)
	}
	s.setSession("", nil)
	s.setLoading(false)
}

func (s *Store) setSession(token string, identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.identity = identity
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
