package storage

import "errors"

// Common storage errors
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a unique constraint was violated
	ErrAlreadyExists = errors.New("record already exists")
)
