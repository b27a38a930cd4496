package store

import "errors"

var (
	// ErrDuplicateEmail is returned by CreateUser when the email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
)
