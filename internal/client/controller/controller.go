// Package controller implements the list-resource pattern shared by
// every admin screen: a remote collection loaded into memory, filtered
// views computed locally, and a draft lifecycle for create/edit forms.
// One controller instance exclusively owns its collection and draft.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
)

// Phase is the controller lifecycle state:
// idle -> loading -> {ready, error}, ready -> mutating -> {ready, error}.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseMutating Phase = "mutating"
	PhaseError    Phase = "error"
)

// ListClient is the slice of the resource gateway a controller needs.
// *api.Resource[T] satisfies it.
type ListClient[T any] interface {
	List(ctx context.Context, query url.Values) ([]T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id string, payload T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Spec parameterizes a controller for one resource type.
type Spec[T any] struct {
	// ID extracts the stable identifier of an item.
	ID func(T) string

	// Defaults produces the draft for a new item.
	Defaults func() T

	// Clone deep-copies an item so draft edits never alias collection
	// state. Nil means a plain value copy is sufficient.
	Clone func(T) T

	// SearchFields lists the values the free-text search matches on.
	SearchFields func(T) []string

	// Filters maps a filter key to its predicate.
	Filters map[string]func(item T, value string) bool
}

func (s Spec[T]) clone(item T) T {
	if s.Clone == nil {
		return item
	}
	return s.Clone(item)
}

// Controller owns one resource collection and its draft lifecycle.
// All methods are safe for use from a single logical thread of control;
// the mutex only guards against the async completions of Load.
type Controller[T any] struct {
	mu     sync.Mutex
	spec   Spec[T]
	client ListClient[T]
	logger *slog.Logger

	phase   Phase
	items   []T
	loaded  bool
	lastErr error

	loadSeq  uint64
	mutating bool
	closed   bool

	draft     *T
	draftOpen bool
	editingID string
}

// New creates an idle controller for one resource.
func New[T any](spec Spec[T], client ListClient[T], logger *slog.Logger) *Controller[T] {
	return &Controller[T]{
		spec:   spec,
		client: client,
		logger: logger,
		phase:  PhaseIdle,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the failure recorded by the last operation, if any.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Items returns a copy of the current collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Load fetches the collection. Responses of superseded loads are
// discarded: only the latest issued Load may apply its result, so two
// rapid loads always leave the collection reflecting the second one.
func (c *Controller[T]) Load(ctx context.Context, query url.Values) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.loadSeq++
	seq := c.loadSeq
	c.phase = PhaseLoading
	c.mu.Unlock()

	items, err := c.client.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.loadSeq {
		// A newer Load was issued (or the view went away); this
		// response is stale and must not touch the collection.
		return nil
	}

	if err != nil {
		// First load leaves the collection empty, later failures keep
		// the previous value.
		c.phase = PhaseError
		c.lastErr = err
		return err
	}

	c.items = items
	c.loaded = true
	c.phase = PhaseReady
	c.lastErr = nil
	return nil
}

// Filtered computes the filtered view over the in-memory collection.
// Never triggers a fetch, no matter how often the filter state changes.
func (c *Controller[T]) Filtered(state FilterState) []T {
	return ApplyFilters(c.spec, c.Items(), state)
}

// OpenCreate opens the form with resource defaults.
func (c *Controller[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft := c.spec.Defaults()
	c.draft = &draft
	c.draftOpen = true
	c.editingID = ""
}

// OpenEdit opens the form with a copy of the item's fields. The draft
// never aliases the stored item; edits only land on Submit.
func (c *Controller[T]) OpenEdit(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft := c.spec.clone(item)
	c.draft = &draft
	c.draftOpen = true
	c.editingID = c.spec.ID(item)
}

// UpdateDraft applies a field change to the open draft. No validation
// happens here; the server's validation failure surfaces on Submit.
func (c *Controller[T]) UpdateDraft(mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.draftOpen {
		return ErrNoDraft
	}
	mutate(c.draft)
	return nil
}

// Draft returns a copy of the open draft, if any.
func (c *Controller[T]) Draft() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.draftOpen {
		var zero T
		return zero, false
	}
	return c.spec.clone(*c.draft), true
}

// CloseDraft discards the draft without committing.
func (c *Controller[T]) CloseDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = nil
	c.draftOpen = false
	c.editingID = ""
}

// Submit commits the open draft: create when it has no identifier,
// update otherwise. The collection only changes after the server
// confirms — no optimistic inserts, so no temporary identifiers ever
// appear. On failure the draft stays open and unchanged.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.draftOpen {
		c.mu.Unlock()
		return ErrNoDraft
	}
	if c.mutating {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	c.mutating = true
	c.phase = PhaseMutating
	payload := c.spec.clone(*c.draft)
	editingID := c.editingID
	c.mu.Unlock()

	if editingID == "" {
		return c.finishSubmit(c.submitCreate(ctx, payload))
	}
	return c.finishSubmit(c.submitUpdate(ctx, editingID, payload))
}

// submitCreate returns the apply step to run under the lock.
func (c *Controller[T]) submitCreate(ctx context.Context, payload T) (func() error, error) {
	created, err := c.client.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return func() error {
		c.items = append(c.items, created)
		return nil
	}, nil
}

// submitUpdate returns the apply step to run under the lock. The
// confirmed item must replace exactly one element; anything else is an
// integrity violation and fails loudly.
func (c *Controller[T]) submitUpdate(ctx context.Context, id string, payload T) (func() error, error) {
	updated, err := c.client.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return func() error {
		matches := 0
		index := -1
		for i := range c.items {
			if c.spec.ID(c.items[i]) == id {
				matches++
				index = i
			}
		}
		if matches != 1 {
			err := fmt.Errorf("update matched %d items with id %q: %w", matches, id, ErrIntegrity)
			c.logger.Error("refusing to apply update", "id", id, "matches", matches)
			return err
		}
		c.items[index] = updated
		return nil
	}, nil
}

// finishSubmit applies the mutation outcome under the lock. Success
// closes the draft; failure keeps it open for correction.
func (c *Controller[T]) finishSubmit(apply func() error, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mutating = false
	if c.closed {
		return nil
	}

	if err == nil {
		err = apply()
	}

	if err != nil {
		c.phase = PhaseError
		c.lastErr = err
		return err
	}

	c.draft = nil
	c.draftOpen = false
	c.editingID = ""
	c.phase = PhaseReady
	c.lastErr = nil
	return nil
}

// Remove deletes one item by identifier. Confirmation is the caller's
// job; the controller only ever receives confirmed removals. On failure
// the collection is left unchanged.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.mutating {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	c.mutating = true
	c.phase = PhaseMutating
	c.mu.Unlock()

	err := c.client.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mutating = false
	if c.closed {
		return nil
	}

	if err != nil {
		c.phase = PhaseError
		c.lastErr = err
		return err
	}

	kept := c.items[:0]
	for _, item := range c.items {
		if c.spec.ID(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.phase = PhaseReady
	c.lastErr = nil
	return nil
}

// Close discards the controller when its view goes away. In-flight
// calls keep running (the request itself is not cancelled) but their
// results no longer touch controller state.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.draft = nil
	c.draftOpen = false
}
