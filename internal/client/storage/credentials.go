// Package storage defines the client-side persistence contracts.
package storage

import (
	"context"
	"time"
)

// CredentialStorage stores the admin session credential between runs.
// Absence of stored credentials is reported via ErrCredentialsNotFound,
// not treated as a failure.
type CredentialStorage interface {
	// SaveCredentials stores the credential token and identity.
	SaveCredentials(ctx context.Context, creds *Credentials) error

	// GetCredentials retrieves the stored credential.
	// Returns ErrCredentialsNotFound if nothing is stored.
	GetCredentials(ctx context.Context) (*Credentials, error)

	// DeleteCredentials removes the stored credential (logout).
	// Deleting absent credentials is not an error.
	DeleteCredentials(ctx context.Context) error
}

// Credentials is the persisted admin session: the opaque bearer token
// plus the identity it was issued for.
type Credentials struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the stored token is past its lifetime.
// A zero ExpiresAt means the server did not report one; treat as valid
// and let the server reject it.
func (c *Credentials) Expired() bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(c.ExpiresAt)
}
