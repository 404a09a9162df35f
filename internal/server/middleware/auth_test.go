package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	srvjwt "github.com/thaedal/thaedal-admin/internal/server/jwt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(t *testing.T, tokens *srvjwt.Service) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(AdminID(r.Context())))
	})
	return Auth(testLogger(), tokens)(next)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, err := srvjwt.NewService("test-secret-key-for-auth", time.Hour)
	require.NoError(t, err)

	token, _, err := tokens.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthHandler(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "adm_1", rec.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, err := srvjwt.NewService("test-secret-key-for-auth", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()

	newAuthHandler(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized","message":"missing token"}`, rec.Body.String())
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens, err := srvjwt.NewService("test-secret-key-for-auth", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	newAuthHandler(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token format")
}

func TestAuth_ExpiredToken(t *testing.T) {
	issuer, err := srvjwt.NewService("test-secret-key-for-auth", -time.Minute)
	require.NoError(t, err)
	tokens, err := srvjwt.NewService("test-secret-key-for-auth", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthHandler(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer, err := srvjwt.NewService("another-secret-key-value", time.Hour)
	require.NoError(t, err)
	tokens, err := srvjwt.NewService("test-secret-key-for-auth", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Generate("adm_1", "Admin", "admin@thaedal.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	newAuthHandler(t, tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
