package errors

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrInvalidUser = errors.New("invalid user")
	ErrIDMismatch  = errors.New("id mismatch")
)
