// Package errors defines the session subsystem's error taxonomy. Callers
// distinguish the conditions with errors.Is / errors.As; the HTTP layer maps
// them onto status codes.
package errors

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound signals that no session matches the given identifier.
// Distinct from a storage fault so callers can tell "nothing to update"
// apart from an unavailable store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUserNotFound signals that no user matches the given identifier or email.
var ErrUserNotFound = errors.New("user not found")

// CreationError wraps a storage failure while persisting a new record.
// Never retried internally.
type CreationError struct {
	Entity string
	Err    error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("error creating %s: %v", e.Entity, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// UpdateError wraps a storage failure while mutating an existing record,
// for causes other than not-found.
type UpdateError struct {
	Entity string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("error updating %s: %v", e.Entity, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// NewCreationError builds a CreationError for the named entity.
func NewCreationError(entity string, err error) error {
	return &CreationError{Entity: entity, Err: err}
}

// NewUpdateError builds an UpdateError for the named entity.
func NewUpdateError(entity string, err error) error {
	return &UpdateError{Entity: entity, Err: err}
}
