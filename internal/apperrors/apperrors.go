package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrAlreadyExists  = errors.New("resource already exists")
	ErrEmailTaken     = errors.New("email already registered")
	ErrFeedbackExists = errors.New("feedback for this swap already submitted")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not permitted for this user")

	ErrInvalidTransition = errors.New("invalid swap status transition")
)

type EmailTakenError struct{ Email string }

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("user with email '%s' already exists", e.Email)
}

func (e *EmailTakenError) Is(target error) bool {
	return target == ErrEmailTaken || target == ErrAlreadyExists
}

// InvalidTransitionError reports a swap status change that the lifecycle does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move swap request from '%s' to '%s'", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
