package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a write would give two users the same
// email. The users table enforces this with a unique constraint, so it
// is surfaced even when two requests race past the service-level check.
var ErrEmailTaken = errors.New("email already taken")
