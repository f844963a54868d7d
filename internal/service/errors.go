package service

import (
	"errors"
	"fmt"

	"gigflow/internal/lifecycle"
)

var (
	ErrGigNotFound      = fmt.Errorf("gig %w", lifecycle.ErrNotFound)
	ErrUsernameRequired = fmt.Errorf("username is required: %w", lifecycle.ErrValidation)
)

// ErrorKind names the kind of err for logs and metric labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		return "validation"
	case errors.Is(err, lifecycle.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, lifecycle.ErrNotFound):
		return "not_found"
	case errors.Is(err, lifecycle.ErrForbidden):
		return "forbidden"
	default:
		return "internal"
	}
}
