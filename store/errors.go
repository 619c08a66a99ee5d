package store

import "errors"

var (
	// ErrDuplicateEmail signals a registration against an already-taken
	// email. The users.email unique constraint is the source of truth, so
	// two racing registrations resolve to exactly one winner.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound covers both an unknown email and a wrong password on
	// verify; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("user not found")
)
