// Package apperrors defines the error kinds surfaced to the GraphQL layer.
package apperrors

import "errors"

// AuthError covers missing authentication, failed authorization, bad
// credentials and invalid or expired reset tokens.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError covers bad input and storage constraint violations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewAuth returns an AuthError with the given message.
func NewAuth(msg string) error { return &AuthError{Message: msg} }

// NewNotFound returns a NotFoundError with the given message.
func NewNotFound(msg string) error { return &NotFoundError{Message: msg} }

// NewValidation returns a ValidationError with the given message.
func NewValidation(msg string) error { return &ValidationError{Message: msg} }

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
