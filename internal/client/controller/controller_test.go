package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a scriptable ListClient. Each operation delegates to
// the corresponding func; nil funcs fail the test if called.
type fakeClient struct {
	mu       sync.Mutex
	listFn   func(call int) ([]user, error)
	createFn func(payload user) (user, error)
	updateFn func(id string, payload user) (user, error)
	deleteFn func(id string) error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeClient) List(ctx context.Context, query url.Values) ([]user, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("unexpected List call")
	}
	return fn(call)
}

func (f *fakeClient) Create(ctx context.Context, payload user) (user, error) {
	f.mu.Lock()
	f.createCalls++
	fn := f.createFn
	f.mu.Unlock()
	if fn == nil {
		return user{}, errors.New("unexpected Create call")
	}
	return fn(payload)
}

func (f *fakeClient) Update(ctx context.Context, id string, payload user) (user, error) {
	f.mu.Lock()
	f.updateCalls++
	fn := f.updateFn
	f.mu.Unlock()
	if fn == nil {
		return user{}, errors.New("unexpected Update call")
	}
	return fn(id, payload)
}

func (f *fakeClient) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return errors.New("unexpected Delete call")
	}
	return fn(id)
}

func (f *fakeClient) calls() (list, create, update, del int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls, f.updateCalls, f.deleteCalls
}

func newController(client *fakeClient) *Controller[user] {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(userSpec, client, logger)
}

func loadedController(t *testing.T, client *fakeClient, items []user) *Controller[user] {
	t.Helper()
	client.listFn = func(int) ([]user, error) { return items, nil }
	c := newController(client)
	require.NoError(t, c.Load(context.Background(), nil))
	require.Equal(t, PhaseReady, c.Phase())
	return c
}

func TestLoad_Success(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	assert.Equal(t, sampleUsers(), c.Items())
	assert.NoError(t, c.Err())
}

func TestLoad_FirstFailureLeavesEmptyCollection(t *testing.T) {
	client := &fakeClient{
		listFn: func(int) ([]user, error) { return nil, errors.New("boom") },
	}
	c := newController(client)

	err := c.Load(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, PhaseError, c.Phase())
	assert.Empty(t, c.Items())
	assert.Error(t, c.Err())
}

func TestLoad_LaterFailureKeepsPreviousCollection(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	client.mu.Lock()
	client.listFn = func(int) ([]user, error) { return nil, errors.New("boom") }
	client.mu.Unlock()

	err := c.Load(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, PhaseError, c.Phase())
	assert.Equal(t, sampleUsers(), c.Items())
}

func TestLoad_StaleResponseSuppressed(t *testing.T) {
	first := []user{{ID: "old", Name: "Old Data"}}
	second := []user{{ID: "new", Name: "New Data"}}

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	client := &fakeClient{}
	client.listFn = func(call int) ([]user, error) {
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return first, nil
		}
		return second, nil
	}
	c := newController(client)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// First response arrives after the second; it must be dropped.
		assert.NoError(t, c.Load(context.Background(), nil))
	}()

	<-firstStarted
	require.NoError(t, c.Load(context.Background(), nil))
	assert.Equal(t, second, c.Items())

	close(releaseFirst)
	wg.Wait()

	assert.Equal(t, second, c.Items(), "stale response must not overwrite newer data")
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestOpenEdit_DraftDoesNotAliasCollection(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	original := c.Items()[0]
	c.OpenEdit(original)

	require.NoError(t, c.UpdateDraft(func(u *user) { u.Name = "Edited Name" }))

	draft, ok := c.Draft()
	require.True(t, ok)
	assert.Equal(t, "Edited Name", draft.Name)

	// Collection untouched until the server confirms.
	assert.Equal(t, original, c.Items()[0])
}

func TestSubmit_UnchangedEditSendsOriginalFields(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())
	original := c.Items()[1]

	var sentID string
	var sentPayload user
	client.mu.Lock()
	client.updateFn = func(id string, payload user) (user, error) {
		sentID = id
		sentPayload = payload
		return payload, nil
	}
	client.mu.Unlock()

	c.OpenEdit(original)
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, original.ID, sentID)
	assert.Equal(t, original, sentPayload)
}

func TestSubmit_CreateAppendsConfirmedItem(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	client.mu.Lock()
	client.createFn = func(payload user) (user, error) {
		payload.ID = "5" // server assigns the identifier
		return payload, nil
	}
	client.mu.Unlock()

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(u *user) { u.Name = "Meena Kumari" }))
	require.NoError(t, c.Submit(context.Background()))

	items := c.Items()
	require.Len(t, items, 5)
	assert.Equal(t, "5", items[4].ID)
	assert.Equal(t, "Meena Kumari", items[4].Name)

	_, open := c.Draft()
	assert.False(t, open, "draft closes after successful submit")
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestSubmit_NoOptimisticInsert(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	createStarted := make(chan struct{})
	releaseCreate := make(chan struct{})
	client.mu.Lock()
	client.createFn = func(payload user) (user, error) {
		close(createStarted)
		<-releaseCreate
		payload.ID = "5"
		return payload, nil
	}
	client.mu.Unlock()

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(u *user) { u.Name = "Pending User" }))

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	<-createStarted
	// While the create is in flight the collection must not contain a
	// temporary item with no real identifier.
	assert.Len(t, c.Items(), 4)

	close(releaseCreate)
	require.NoError(t, <-done)
	assert.Len(t, c.Items(), 5)
}

func TestSubmit_FailureKeepsDraftOpen(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	wantErr := errors.New("validation failed: name is required")
	client.mu.Lock()
	client.createFn = func(user) (user, error) { return user{}, wantErr }
	client.mu.Unlock()

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(u *user) { u.Email = "meena@email.com" }))

	err := c.Submit(context.Background())
	assert.ErrorIs(t, err, wantErr)

	draft, open := c.Draft()
	assert.True(t, open, "modal stays open on failure")
	assert.Equal(t, "meena@email.com", draft.Email, "draft preserved unchanged")
	assert.Len(t, c.Items(), 4)
}

func TestSubmit_UpdateIntegrityViolation(t *testing.T) {
	tests := []struct {
		name  string
		items []user
	}{
		{
			name: "duplicate identifiers",
			items: []user{
				{ID: "1", Name: "Arun Kumar"},
				{ID: "1", Name: "Arun Kumar Copy"},
			},
		},
		{
			name:  "identifier vanished",
			items: []user{{ID: "2", Name: "Priya Sharma"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			c := loadedController(t, client, tt.items)

			client.mu.Lock()
			client.updateFn = func(id string, payload user) (user, error) { return payload, nil }
			client.mu.Unlock()

			c.OpenEdit(user{ID: "1", Name: "Arun Kumar"})
			err := c.Submit(context.Background())

			assert.ErrorIs(t, err, ErrIntegrity)
			assert.Equal(t, tt.items, c.Items(), "collection untouched on integrity failure")
		})
	}
}

func TestRemove_ThenFilterByID(t *testing.T) {
	items := []user{{ID: "1", Name: "Arun Kumar"}, {ID: "2", Name: "Priya Sharma"}}
	client := &fakeClient{}
	c := loadedController(t, client, items)

	client.mu.Lock()
	client.deleteFn = func(id string) error { return nil }
	client.mu.Unlock()

	require.NoError(t, c.Remove(context.Background(), "1"))

	got := c.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	filtered := c.Filtered(FilterState{Filters: map[string]string{"id": "1"}})
	assert.Empty(t, filtered)
}

func TestRemove_FailureLeavesCollection(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	client.mu.Lock()
	client.deleteFn = func(id string) error { return errors.New("user not found: not found") }
	client.mu.Unlock()

	err := c.Remove(context.Background(), "1")
	assert.Error(t, err)
	assert.Equal(t, sampleUsers(), c.Items())
}

func TestSubmit_SecondMutationRejectedWhileInFlight(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	createStarted := make(chan struct{})
	releaseCreate := make(chan struct{})
	client.mu.Lock()
	client.createFn = func(payload user) (user, error) {
		close(createStarted)
		<-releaseCreate
		payload.ID = "5"
		return payload, nil
	}
	client.mu.Unlock()

	c.OpenCreate()
	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()
	<-createStarted

	// Both mutation entry points refuse while the first is pending.
	assert.ErrorIs(t, c.Submit(context.Background()), ErrMutationInFlight)
	assert.ErrorIs(t, c.Remove(context.Background(), "1"), ErrMutationInFlight)

	close(releaseCreate)
	require.NoError(t, <-done)

	_, creates, _, deletes := client.calls()
	assert.Equal(t, 1, creates, "rejected submit must not issue a network call")
	assert.Equal(t, 0, deletes)
}

func TestClose_DropsInFlightResults(t *testing.T) {
	listStarted := make(chan struct{})
	releaseList := make(chan struct{})

	client := &fakeClient{}
	client.listFn = func(call int) ([]user, error) {
		if call == 1 {
			return sampleUsers(), nil
		}
		close(listStarted)
		<-releaseList
		return []user{{ID: "ghost"}}, nil
	}
	c := newController(client)
	require.NoError(t, c.Load(context.Background(), nil))

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background(), nil) }()
	<-listStarted

	c.Close()
	close(releaseList)
	require.NoError(t, <-done)

	// The discarded controller kept its last state; the late response
	// went nowhere.
	assert.Equal(t, sampleUsers(), c.Items())

	assert.ErrorIs(t, c.Load(context.Background(), nil), ErrClosed)
	assert.ErrorIs(t, c.Remove(context.Background(), "1"), ErrClosed)
}

func TestDraftOperationsRequireOpenDraft(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	assert.ErrorIs(t, c.UpdateDraft(func(*user) {}), ErrNoDraft)
	assert.ErrorIs(t, c.Submit(context.Background()), ErrNoDraft)

	c.OpenCreate()
	c.CloseDraft()
	assert.ErrorIs(t, c.Submit(context.Background()), ErrNoDraft)
}

func TestFiltered_NeverRefetches(t *testing.T) {
	client := &fakeClient{}
	c := loadedController(t, client, sampleUsers())

	for i := 0; i < 25; i++ {
		c.Filtered(FilterState{Search: "arun", Filters: map[string]string{"status": "active"}})
	}

	lists, _, _, _ := client.calls()
	assert.Equal(t, 1, lists, "filter changes are computed in memory")
}

func TestLoad_ContextTimeoutSurfacesAsError(t *testing.T) {
	client := &fakeClient{}
	client.listFn = func(int) ([]user, error) {
		time.Sleep(50 * time.Millisecond)
		return nil, context.DeadlineExceeded
	}
	c := newController(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.Load(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, PhaseError, c.Phase())
}
