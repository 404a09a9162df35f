package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaedal/thaedal-admin/internal/client/api"
	"github.com/thaedal/thaedal-admin/internal/client/session"
	"github.com/thaedal/thaedal-admin/internal/client/storage"
	"github.com/thaedal/thaedal-admin/internal/models"
	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

// memCredentials is an in-memory CredentialStorage for tests.
type memCredentials struct {
	mu    sync.Mutex
	creds *storage.Credentials
}

func (m *memCredentials) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *creds
	m.creds = &c
	return nil
}

func (m *memCredentials) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.creds == nil {
		return nil, storage.ErrCredentialsNotFound
	}
	c := *m.creds
	return &c, nil
}

func (m *memCredentials) DeleteCredentials(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}

// newTestCli wires a console against the given handler with scripted
// stdin and a captured stdout.
func newTestCli(t *testing.T, handler http.Handler, creds *memCredentials, input string) (*Cli, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL)
	sess := session.NewStore(client, creds, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.SetTokenSource(sess)
	client.SetUnauthorizedHook(sess.Invalidate)

	var out bytes.Buffer
	c := &Cli{
		client:  client,
		session: sess,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		in:      bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}
	c.readPassword = func(prompt string) (string, error) {
		return c.readInput(prompt)
	}
	return c, &out
}

func validCreds() *memCredentials {
	return &memCredentials{creds: &storage.Credentials{
		Token:     "stored-token",
		Name:      "Admin",
		Email:     "admin@thaedal.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
}

// adminHandler serves /profile plus whatever extra routes a test needs.
func adminHandler(t *testing.T, extra map[string]http.HandlerFunc) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/admin/profile", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(pkgapi.ProfileResponse{Name: "Admin", Email: "admin@thaedal.com"})
	})
	for pattern, fn := range extra {
		mux.HandleFunc(pattern, fn)
	}
	return mux
}

func TestGuard_UnauthenticatedCommandNeverRuns(t *testing.T) {
	var resourceCalls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/videos") {
			resourceCalls++
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "unauthorized"})
	})

	c, _ := newTestCli(t, handler, &memCredentials{}, "")

	err := c.Run(context.Background(), "videos", []string{"list"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
	assert.Zero(t, resourceCalls, "protected command must not reach the server")
}

func TestGuard_WaitsOutLoadingBeforeDeciding(t *testing.T) {
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"GET /api/v1/admin/stats": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(pkgapi.StatsResponse{TotalUsers: 12})
		},
	})

	c, out := newTestCli(t, handler, validCreds(), "")
	require.True(t, c.session.IsLoading())

	err := c.Run(context.Background(), "dashboard", nil)

	require.NoError(t, err)
	assert.False(t, c.session.IsLoading())
	assert.Contains(t, out.String(), "Total users:          12")
}

func TestRunLogin_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/login", r.URL.Path)
		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "admin@thaedal.com", req.Email)
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{
			Token: "issued-token", Name: "Admin", Email: req.Email, ExpiresIn: 3600,
		})
	})

	creds := &memCredentials{}
	c, out := newTestCli(t, handler, creds, "admin@thaedal.com\nadmin123\n")

	err := c.Run(context.Background(), "login", nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Login successful")
	assert.True(t, c.session.IsAuthenticated())
	require.NotNil(t, creds.creds)
	assert.Equal(t, "issued-token", creds.creds.Token)
}

func TestRunLogin_InvalidCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "unauthorized"})
	})

	c, _ := newTestCli(t, handler, &memCredentials{}, "admin@thaedal.com\nwrongpass\n")

	err := c.Run(context.Background(), "login", nil)

	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.False(t, c.session.IsAuthenticated())
}

func TestVideosList_FiltersAndRenders(t *testing.T) {
	videos := []models.Video{
		{ID: "v1", Title: "Chettinad Cooking", Category: "Food", Creator: "Meena", Status: models.VideoStatusPublished},
		{ID: "v2", Title: "Street Food Tour", Category: "Food", Creator: "Karthik", Status: models.VideoStatusDraft},
	}
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"GET /api/v1/admin/videos": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(pkgapi.ListResponse[models.Video]{Items: videos, Total: len(videos)})
		},
	})

	c, out := newTestCli(t, handler, validCreds(), "")

	err := c.Run(context.Background(), "videos", []string{"list", "--status", "published"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Chettinad Cooking")
	assert.NotContains(t, out.String(), "Street Food Tour")
	assert.Contains(t, out.String(), "1 of 2 shown.")
}

func TestVideosDelete_AbortedWithoutConfirmation(t *testing.T) {
	var deletes int
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"GET /api/v1/admin/videos": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(pkgapi.ListResponse[models.Video]{
				Items: []models.Video{{ID: "v1", Title: "Chettinad Cooking"}}, Total: 1,
			})
		},
		"DELETE /api/v1/admin/videos/v1": func(w http.ResponseWriter, r *http.Request) {
			deletes++
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c, out := newTestCli(t, handler, validCreds(), "n\n")

	err := c.Run(context.Background(), "videos", []string{"delete", "v1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Aborted.")
	assert.Zero(t, deletes, "declined delete must not reach the server")
}

func TestVideosDelete_ConfirmedRemoves(t *testing.T) {
	var deletes int
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"GET /api/v1/admin/videos": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(pkgapi.ListResponse[models.Video]{
				Items: []models.Video{{ID: "v1", Title: "Chettinad Cooking"}}, Total: 1,
			})
		},
		"DELETE /api/v1/admin/videos/v1": func(w http.ResponseWriter, r *http.Request) {
			deletes++
			w.WriteHeader(http.StatusNoContent)
		},
	})

	c, out := newTestCli(t, handler, validCreds(), "y\n")

	err := c.Run(context.Background(), "videos", []string{"delete", "v1"})

	require.NoError(t, err)
	assert.Equal(t, 1, deletes)
	assert.Contains(t, out.String(), "✓ Deleted video v1.")
}

func TestVideosAdd_SubmitsFormAnswers(t *testing.T) {
	var created models.Video
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"POST /api/v1/admin/videos": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			created.ID = "v9"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
		},
	})

	// Title, thumbnail, category, creator, duration, status (empty keeps
	// the draft default).
	input := "Pongal Special\nhttps://cdn.example/p.jpg\nFood\nMeena\n12:30\n\n"
	c, out := newTestCli(t, handler, validCreds(), input)

	err := c.Run(context.Background(), "videos", []string{"add"})

	require.NoError(t, err)
	assert.Equal(t, "Pongal Special", created.Title)
	assert.Equal(t, models.VideoStatusDraft, created.Status)
	assert.Contains(t, out.String(), "✓ Created video v9.")
}

func TestUsersToggleSubscription(t *testing.T) {
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"POST /api/v1/admin/users/u1/toggle-subscription": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Name: "Arun Kumar", IsSubscribed: true})
		},
	})

	c, out := newTestCli(t, handler, validCreds(), "")

	err := c.Run(context.Background(), "users", []string{"toggle-subscription", "u1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Arun Kumar is now subscribed.")
}

func TestSubscriptionStatus_RejectsUnknownStatus(t *testing.T) {
	var calls int
	handler := adminHandler(t, map[string]http.HandlerFunc{
		"POST /api/v1/admin/subscriptions/s1/status": func(w http.ResponseWriter, r *http.Request) {
			calls++
		},
	})

	c, _ := newTestCli(t, handler, validCreds(), "")

	err := c.Run(context.Background(), "subscriptions", []string{"status", "s1", "paused"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
	assert.Zero(t, calls)
}

func TestRunStatus_ShowsIdentity(t *testing.T) {
	c, out := newTestCli(t, adminHandler(t, nil), validCreds(), "")

	err := c.Run(context.Background(), "status", nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Status: Authenticated")
	assert.Contains(t, out.String(), "admin@thaedal.com")
}

func TestRun_UnknownCommand(t *testing.T) {
	c, _ := newTestCli(t, adminHandler(t, nil), &memCredentials{}, "")

	err := c.Run(context.Background(), "reboot", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tt := range tests {
		c, _ := newTestCli(t, adminHandler(t, nil), &memCredentials{}, tt.input)
		got, err := c.confirm("Proceed?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestPromptString_EmptyKeepsCurrent(t *testing.T) {
	c, _ := newTestCli(t, adminHandler(t, nil), &memCredentials{}, "\nnew value\n")

	kept, err := c.promptString("Field", "current")
	require.NoError(t, err)
	assert.Equal(t, "current", kept)

	replaced, err := c.promptString("Field", "current")
	require.NoError(t, err)
	assert.Equal(t, "new value", replaced)
}
