package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars"

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)

	token, expiresIn, err := svc.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "adm_1", claims.Subject)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, "admin@thaedal.com", claims.Email)
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc, err := NewService(testSecret, -time.Minute)
	require.NoError(t, err)

	token, _, err := svc.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc, err := NewService(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewService("another-secret-16-chars!", time.Hour)
	require.NoError(t, err)

	token, _, err := svc.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestNewService_ShortSecret(t *testing.T) {
	_, err := NewService("short", time.Hour)
	assert.Error(t, err)
}
