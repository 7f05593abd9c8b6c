package models

import "errors"

// ErrNotFound is the storage-level sentinel returned by repositories when a
// filter matches nothing. Usecases translate it into a NotFoundError with a
// resource-specific message before it reaches the HTTP layer.
var ErrNotFound = errors.New("not found")

// NotFoundError maps to 404.
type NotFoundError struct {
	Message string
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Message: resource + " not found"}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidArgumentError maps to 400 and covers malformed identifiers and
// out-of-enum values caught before any query runs.
type InvalidArgumentError struct {
	Message string
}

func NewInvalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// ConflictError maps to 400 and names the field that violated a uniqueness
// constraint.
type ConflictError struct {
	Field   string
	Message string
}

func NewConflict(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError maps to 400 and carries one human-readable message per
// violated field constraint.
type ValidationError struct {
	Details []string
}

func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "Validation error"
	}
	return "Validation error: " + e.Details[0]
}
