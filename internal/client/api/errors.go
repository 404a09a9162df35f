package api

import (
	"errors"
	"fmt"
	"strings"
)

// Failure taxonomy of the admin API gateway. Callers branch with
// errors.Is / errors.As; the gateway never retries on its own.
var (
	// ErrUnauthorized means the credential was missing or rejected.
	// The gateway fires the unauthorized hook before returning it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the referenced item no longer exists.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries field-level messages for a rejected payload.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ServerError is a 5xx-class response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// NetworkError is a transport failure before any response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
