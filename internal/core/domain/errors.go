package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrValidation         = errors.New("validation failed")
)

// Entity-specific lookups wrap ErrNotFound so callers can match either.
var (
	ErrUserNotFound           = fmt.Errorf("user %w", ErrNotFound)
	ErrServiceNotFound        = fmt.Errorf("service %w", ErrNotFound)
	ErrServiceRequestNotFound = fmt.Errorf("service request %w", ErrNotFound)
	ErrProjectNotFound        = fmt.Errorf("project %w", ErrNotFound)
)

// ValidationError wraps ErrValidation with a human-readable reason.
func ValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
