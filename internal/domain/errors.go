package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Operations on quotes fail with one of these, possibly wrapped in one of
// the richer types below. Adapters decide what each means on the wire.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrStaleRecord is a write against an ID the repository no longer
	// holds. Callers look records up before writing them, so unlike
	// ErrNotFound this indicates a fault.
	ErrStaleRecord = errors.New("stale record")

	// ErrNoQuotes is returned by a random pick from an empty repository.
	ErrNoQuotes = errors.New("no quotes available")
)

// NotFoundError names what a lookup missed. ID is kept as the caller wrote
// it, which for a malformed path segment is not a number.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError lists the input fields that broke a rule.
type ValidationError struct {
	Fields []string
	Reason string
}

func NewValidationError(reason string, fields ...string) error {
	return &ValidationError{Fields: fields, Reason: reason}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Reason
	}

	return fmt.Sprintf("validation failed for %s: %s", strings.Join(e.Fields, ", "), e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// StaleRecordError names the record a write could not find.
type StaleRecordError struct {
	Entity string
	ID     int64
}

func NewStaleRecordError(entity string, id int64) error {
	return &StaleRecordError{Entity: entity, ID: id}
}

func (e *StaleRecordError) Error() string {
	return fmt.Sprintf("%s %d no longer exists", e.Entity, e.ID)
}

func (e *StaleRecordError) Unwrap() error { return ErrStaleRecord }

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsStaleRecord(err error) bool { return errors.Is(err, ErrStaleRecord) }
