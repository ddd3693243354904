// Package apperrors defines the typed error taxonomy shared by the service
// layer: validation, not-found and conflict errors are always returned to
// the caller with an explicit reason; external enrichment degradation is
// absorbed internally and never surfaced as a request error.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class for logging and API mapping.
type ErrorCode string

const (
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeServiceDegraded ErrorCode = "EXTERNAL_SERVICE_DEGRADED"
)

// ValidationError signals malformed or missing required input.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", CodeValidation, e.Message)
}

// NotFoundError signals a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %v not found", CodeNotFound, e.Entity, e.ID)
}

// ConflictError signals an operation that would violate a domain invariant
// against currently persisted state.
type ConflictError struct {
	Message string
	Details string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", CodeConflict, e.Message)
}

// DegradedError wraps a failed best-effort external call (reverse geocode).
// It is logged and swallowed by the service layer, never propagated to a
// request outcome.
type DegradedError struct {
	Service string
	Err     error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", CodeServiceDegraded, e.Service, e.Err)
}

func (e *DegradedError) Unwrap() error { return e.Err }

// Constructors

func NewValidation(message string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(message, args...)}
}

func NewNotFound(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewConflict(message string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(message, args...)}
}

func NewDegraded(service string, err error) *DegradedError {
	return &DegradedError{Service: service, Err: err}
}

// Predicates used by controllers to map errors onto HTTP statuses.

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// Code extracts the taxonomy code for structured logging.
func Code(err error) ErrorCode {
	switch {
	case IsValidation(err):
		return CodeValidation
	case IsNotFound(err):
		return CodeNotFound
	case IsConflict(err):
		return CodeConflict
	default:
		var d *DegradedError
		if errors.As(err, &d) {
			return CodeServiceDegraded
		}
		return "INTERNAL"
	}
}
