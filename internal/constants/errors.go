package constants

import "errors"

// Error taxonomy for the controllers. Every failed operation leaves state
// unchanged; handlers map these to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateReference = errors.New("duplicate mission reference")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrValidation         = errors.New("validation failure")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrUnauthorized       = errors.New("invalid username, password, or role")
)
