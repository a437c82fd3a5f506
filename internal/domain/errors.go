package domain

import "errors"

var (
	// ErrNotFound is the expected outcome for unknown or mistyped
	// short ids, not a server fault.
	ErrNotFound = errors.New("URL not found")

	// ErrAliasTaken means the requested custom alias is already in
	// use as a short id.
	ErrAliasTaken = errors.New("custom alias is already in use")
)
