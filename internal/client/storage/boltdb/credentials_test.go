package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaedal/thaedal-admin/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "admin-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSaveAndGetCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	creds := &storage.Credentials{
		Token:     "token-123",
		Name:      "Admin",
		Email:     "admin@thaedal.com",
		ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second),
	}

	require.NoError(t, s.SaveCredentials(ctx, creds))

	got, err := s.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds.Token, got.Token)
	assert.Equal(t, creds.Name, got.Name)
	assert.Equal(t, creds.Email, got.Email)
	assert.True(t, creds.ExpiresAt.Equal(got.ExpiresAt))
}

func TestGetCredentials_NotFound(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.GetCredentials(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestSaveCredentials_Overwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredentials(ctx, &storage.Credentials{Token: "old"}))
	require.NoError(t, s.SaveCredentials(ctx, &storage.Credentials{Token: "new"}))

	got, err := s.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
}

func TestDeleteCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredentials(ctx, &storage.Credentials{Token: "token"}))
	require.NoError(t, s.DeleteCredentials(ctx))

	_, err := s.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestDeleteCredentials_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Deleting with nothing stored must not fail: logout is idempotent.
	require.NoError(t, s.DeleteCredentials(ctx))
	require.NoError(t, s.DeleteCredentials(ctx))
}

func TestCredentialsExpired(t *testing.T) {
	expired := &storage.Credentials{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, expired.Expired())

	valid := &storage.Credentials{ExpiresAt: time.Now().Add(time.Minute)}
	assert.False(t, valid.Expired())

	noExpiry := &storage.Credentials{}
	assert.False(t, noExpiry.Expired())
}
