package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"aeromaint/opsdesk/internal/constants"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// statusFromError maps the service error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, constants.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, constants.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, constants.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, constants.ErrDuplicateReference),
		errors.Is(err, constants.ErrInsufficientStock),
		errors.Is(err, constants.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
