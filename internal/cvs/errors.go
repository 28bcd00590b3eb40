package cvs

import "errors"

var (
	// ErrNotFound indicates no persisted CV exists for the user.
	ErrNotFound = errors.New("cv not found")
	// ErrInvalidInput indicates a request that cannot be processed.
	ErrInvalidInput = errors.New("invalid input")
)
