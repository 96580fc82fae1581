package services

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidSession  = fmt.Errorf("invalid session: %w", ErrUnauthenticated)
	ErrSessionExpired  = errors.New("session expired")
	ErrUserNotFound    = errors.New("user not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrAlertNotFound   = errors.New("alert not found")
)

// UpstreamAuthError reports a failed session exchange. StatusCode is the
// identity provider's status, or 502 when the provider could not be reached.
type UpstreamAuthError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamAuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session exchange failed (%d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("session exchange failed (%d)", e.StatusCode)
}

func (e *UpstreamAuthError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when a request is missing a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

func required(field string) error {
	return &ValidationError{Field: field}
}
