// Package apperr defines the error taxonomy shared by services and handlers.
// Handlers translate these types into the uniform response envelope; anything
// that is not one of these types surfaces as an internal error.
package apperr

import "fmt"

// ValidationError reports malformed, missing, or out-of-range input. The
// message always names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with a plain message.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UnauthenticatedError means no credential was presented on an endpoint that
// requires one.
type UnauthenticatedError struct {
	Message string
}

func (e *UnauthenticatedError) Error() string {
	return e.Message
}

func Unauthenticated(message string) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message}
}

// ForbiddenError means a credential was presented but is invalid or expired.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func Forbidden(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// NotFoundError means the referenced resource is absent, or exists but is not
// owned by the acting user. Ownership mismatches deliberately surface as not
// found so that probing cannot reveal which records exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a unique-constraint violation surfaced by the store.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
