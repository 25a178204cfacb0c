package domain

import "errors"

// Request-level errors. All of these are recoverable at the HTTP
// boundary; artifact corruption is handled at startup instead.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidCursor    = errors.New("invalid cursor")
	ErrCursorMismatch   = errors.New("cursor mismatch")
	ErrNoSearchMatch    = errors.New("no products matched query")
)
