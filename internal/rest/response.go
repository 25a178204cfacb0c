package rest

import (
	"errors"
	"net/http"
	"shopReco/domain"
)

type ResponseError struct {
	Message string `json:"message"`
}

// statusForError maps the service error taxonomy onto HTTP status
// codes. Everything unmapped is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNoSearchMatch):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrInvalidCursor),
		errors.Is(err, domain.ErrCursorMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
