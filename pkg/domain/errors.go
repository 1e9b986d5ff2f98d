package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeConfiguration = "CONFIGURATION_ERROR"
	ErrCodeDependency    = "DEPENDENCY_ERROR"
	ErrCodeConcurrency   = "CONCURRENCY_CONFLICT"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeConflict      = "CONFLICT"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewConfigurationError creates an error for missing or inconsistent
// workspace configuration (e.g. no members to resolve a creator from).
func NewConfigurationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConfiguration,
		Message: msg,
	}
}

// NewDependencyError wraps a failure of an external collaborator
// (messaging provider, trigger config parse). Dependency errors are
// never fatal to the caller: they are logged and swallowed.
func NewDependencyError(msg string, err error) error {
	return &DomainError{
		Code:    ErrCodeDependency,
		Message: msg,
		Err:     err,
	}
}

// NewConcurrencyError signals an optimistic update conflict on rule
// bookkeeping.
func NewConcurrencyError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConcurrency,
		Message: msg,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// Helper functions to check error types

func hasCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool { return hasCode(err, ErrCodeConfiguration) }

// IsDependency checks if the error is a dependency error
func IsDependency(err error) bool { return hasCode(err, ErrCodeDependency) }

// IsConcurrency checks if the error is an optimistic concurrency conflict
func IsConcurrency(err error) bool { return hasCode(err, ErrCodeConcurrency) }

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool { return hasCode(err, ErrCodeConflict) }

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool { return hasCode(err, ErrCodeUnauthorized) }

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}
