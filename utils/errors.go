package utils

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for both unknown users and wrong
// passwords so that login responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthorizationError carries a reason that is safe to disclose to the
// caller (role or ownership mismatch).
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

func NewAuthorizationError(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

// ValidationError names the offending field and the raw value that
// failed to parse or was missing.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid or missing field %q", e.Field)
	}
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

func NewValidationError(field, value string) *ValidationError {
	return &ValidationError{Field: field, Value: value}
}
