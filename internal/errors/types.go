// Package errors provides structured error types for praxis with error
// categories, stable error codes, and contextual metadata so that callers
// can distinguish catalog-structural failures from unit-execution failures
// and act on them programmatically.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	// ErrorTypeCatalog covers registration-time structural errors.
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeLookup covers name resolution failures.
	ErrorTypeLookup ErrorType = "lookup"
	// ErrorTypeExecution covers failures raised while running a unit.
	ErrorTypeExecution ErrorType = "execution"
	// ErrorTypeConfig covers configuration loading and validation errors.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeInternal covers everything that should not happen.
	ErrorTypeInternal ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeInvalidName     = "ERR_INVALID_NAME"
	ErrCodeDuplicateLesson = "ERR_DUPLICATE_LESSON"
	ErrCodeDuplicateUnit   = "ERR_DUPLICATE_UNIT"
	ErrCodeUnknownLesson   = "ERR_UNKNOWN_LESSON"
	ErrCodeUnknownUnit     = "ERR_UNKNOWN_UNIT"
	ErrCodeUnitPanic       = "ERR_UNIT_PANIC"
	ErrCodeConfigInvalid   = "ERR_CONFIG_INVALID"
	ErrCodeNotesInvalid    = "ERR_NOTES_INVALID"
	ErrCodeInternal        = "ERR_INTERNAL"
)

// PraxisError is a structured error type carrying category, code and context.
type PraxisError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Lesson  string
	Unit    string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *PraxisError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Lesson != "" {
		location := "lesson:" + e.Lesson
		if e.Unit != "" {
			location += "/" + e.Unit
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PraxisError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *PraxisError) Is(target error) bool {
	var t *PraxisError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *PraxisError) WithContext(key string, value interface{}) *PraxisError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithUnit adds lesson/unit location information.
func (e *PraxisError) WithUnit(lesson, unit string) *PraxisError {
	e.Lesson = lesson
	e.Unit = unit

	return e
}

// Error creation functions

// NewCatalogError creates a registration-time structural error.
func NewCatalogError(code, message string) *PraxisError {
	return &PraxisError{
		Type:    ErrorTypeCatalog,
		Code:    code,
		Message: message,
	}
}

// NewLookupError creates a name resolution error.
func NewLookupError(code, message string) *PraxisError {
	return &PraxisError{
		Type:    ErrorTypeLookup,
		Code:    code,
		Message: message,
	}
}

// NewExecutionError creates a unit execution error.
func NewExecutionError(code, message string, cause error) *PraxisError {
	return &PraxisError{
		Type:    ErrorTypeExecution,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *PraxisError {
	return &PraxisError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *PraxisError {
	return &PraxisError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

// ErrDuplicateLesson reports a lesson registered under an existing name.
func ErrDuplicateLesson(lesson string) *PraxisError {
	return NewCatalogError(
		ErrCodeDuplicateLesson,
		"lesson already registered: "+lesson,
	).WithUnit(lesson, "")
}

// ErrDuplicateUnit reports two units sharing a name within one lesson.
func ErrDuplicateUnit(lesson, unit string) *PraxisError {
	return NewCatalogError(
		ErrCodeDuplicateUnit,
		"unit already registered: "+unit,
	).WithUnit(lesson, unit)
}

// ErrUnknownLesson reports a lookup of a lesson name that is not registered.
func ErrUnknownLesson(lesson string) *PraxisError {
	return NewLookupError(
		ErrCodeUnknownLesson,
		"unknown lesson: "+lesson,
	).WithUnit(lesson, "")
}

// ErrUnknownUnit reports a lookup of a unit name absent from its lesson.
func ErrUnknownUnit(lesson, unit string) *PraxisError {
	return NewLookupError(
		ErrCodeUnknownUnit,
		"unknown unit: "+unit,
	).WithUnit(lesson, unit)
}

// ErrUnitPanic wraps a recovered panic from a unit action.
func ErrUnitPanic(lesson, unit string, recovered interface{}) *PraxisError {
	return NewExecutionError(
		ErrCodeUnitPanic,
		fmt.Sprintf("unit panicked: %v", recovered),
		nil,
	).WithUnit(lesson, unit)
}

// Classification helpers

// IsCatalogError checks if an error is a registration-time structural error.
func IsCatalogError(err error) bool {
	var pe *PraxisError
	if errors.As(err, &pe) {
		return pe.Type == ErrorTypeCatalog
	}

	return false
}

// IsLookupError checks if an error is a name resolution failure.
func IsLookupError(err error) bool {
	var pe *PraxisError
	if errors.As(err, &pe) {
		return pe.Type == ErrorTypeLookup
	}

	return false
}

// IsUnknownName reports whether err is an unknown lesson or unknown unit error.
func IsUnknownName(err error) bool {
	var pe *PraxisError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeUnknownLesson || pe.Code == ErrCodeUnknownUnit
	}

	return false
}
