package store

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint is violated, e.g.
	// adding an archivist name that already exists.
	ErrDuplicate = errors.New("already exists")
)
