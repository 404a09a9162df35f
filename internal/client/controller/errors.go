package controller

import "errors"

var (
	// ErrMutationInFlight is returned when Submit or Remove is called
	// while a previous mutation has not resolved. The second call never
	// reaches the network.
	ErrMutationInFlight = errors.New("a mutation is already in flight")

	// ErrIntegrity means an update response matched zero or several
	// collection elements by identifier. Never resolved silently.
	ErrIntegrity = errors.New("collection integrity violation")

	// ErrNoDraft is returned by draft operations when no create/edit
	// form is open.
	ErrNoDraft = errors.New("no draft open")

	// ErrClosed is returned when operating on a discarded controller.
	ErrClosed = errors.New("controller is closed")
)
