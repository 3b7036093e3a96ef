package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest   = 4000
	CodeInvalidBatch     = 4001
	CodeMissingMatchKey  = 4002
	CodeInvalidField     = 4003
	CodeMissingPhone     = 4004
	CodeDuplicateUser    = 4090
	CodeNotFound         = 4040
	CodeMissingLogFields = 4005

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidRequest is the root of every client-side validation error
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidBatch is returned when a batch endpoint receives something other than an array
	ErrInvalidBatch = fmt.Errorf("%w: expected an array", ErrInvalidRequest)

	// ErrMissingMatchKey is returned when a batch entry carries no key to upsert by
	ErrMissingMatchKey = fmt.Errorf("%w: entry has no match key", ErrInvalidRequest)

	// ErrInvalidField is returned when a field value cannot be coerced to its type
	ErrInvalidField = fmt.Errorf("%w: invalid field value", ErrInvalidRequest)

	// ErrMissingPhone is returned when a new user would be created without a phone number
	ErrMissingPhone = fmt.Errorf("%w: phone is required to create a user", ErrInvalidRequest)

	// ErrMissingLogFields is returned when a log entry lacks user, time or action
	ErrMissingLogFields = fmt.Errorf("%w: log entry requires user, time and action", ErrInvalidRequest)

	// ErrDuplicateUser is returned when a write collides with another user's phone
	ErrDuplicateUser = errors.New("user with this phone already exists")

	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem reaching the store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidBatch):
		return CodeInvalidBatch
	case errors.Is(err, ErrMissingMatchKey):
		return CodeMissingMatchKey
	case errors.Is(err, ErrInvalidField):
		return CodeInvalidField
	case errors.Is(err, ErrMissingPhone):
		return CodeMissingPhone
	case errors.Is(err, ErrMissingLogFields):
		return CodeMissingLogFields
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether err should be answered with a 4xx status
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// FieldError describes a single field that could not be decoded
type FieldError struct {
	Entity string
	Field  string
	Value  any
	Err    error
}

// Error implements the error interface for FieldError
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: cannot use %v: %v", e.Entity, e.Field, e.Value, e.Err)
}

// Is reports ErrInvalidField so callers can match with errors.Is
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField || target == ErrInvalidRequest
}

// Unwrap returns the underlying error
func (e *FieldError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *FieldError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "field_error",
		"entity":     e.Entity,
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": CodeInvalidField,
	}
}

// NewFieldError creates a new FieldError
func NewFieldError(entity, field string, value any, err error) error {
	return &FieldError{
		Entity: entity,
		Field:  field,
		Value:  value,
		Err:    err,
	}
}

// BatchError wraps a failure of one entry inside a batch
type BatchError struct {
	Entity string
	Index  int
	Key    string
	Err    error
}

// Error implements the error interface for BatchError
func (e *BatchError) Error() string {
	return fmt.Sprintf("%s batch entry %d (key %q): %v", e.Entity, e.Index, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *BatchError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "batch_error",
		"entity":     e.Entity,
		"index":      e.Index,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBatchError creates a new BatchError
func NewBatchError(entity string, index int, key string, err error) error {
	return &BatchError{
		Entity: entity,
		Index:  index,
		Key:    key,
		Err:    err,
	}
}
