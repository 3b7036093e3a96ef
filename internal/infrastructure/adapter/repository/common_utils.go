package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	TimeoutError      ErrorType = "timeout"
)

// ErrorClassifier maps driver errors onto the domain error taxonomy. It is
// shared by the repositories and the unit of work.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" for any other store failure
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsTimeoutError(err):
		return TimeoutError
	}
	return ""
}

// ToDomain maps a driver error onto the domain error taxonomy. duplicate is
// returned for unique violations; a nil duplicate falls through to the
// generic store error.
func (c *ErrorClassifier) ToDomain(err error, duplicate error) error {
	switch c.Classify(err) {
	case "":
		if err == nil {
			return nil
		}
	case NotFoundError:
		return errs.ErrNotFound
	case DuplicateKeyError:
		if duplicate != nil {
			return fmt.Errorf("%w: %s", duplicate, err.Error())
		}
	case TimeoutError:
		return fmt.Errorf("%w: timed out: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// IsTimeoutError checks if the store gave up waiting: a query deadline, a
// driver timeout or sqlite's busy timeout
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "database is locked")
}
