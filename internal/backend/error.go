package backend

import "errors"

// Error definitions for the backend package.
var (
	ErrNotFound = errors.New("backend not found in registry")
)
