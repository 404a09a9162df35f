package storage

import "errors"

// ErrCredentialsNotFound is returned when no admin credential is stored.
var ErrCredentialsNotFound = errors.New("credentials not found")
