package error

import (
	"errors"
	"strings"
)

// ErrValidationFailed is the sentinel wrapped by every ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationErrorCode identifies the kind of validation failure.
type ValidationErrorCode string

const (
	ErrCodeValidationFailed ValidationErrorCode = "VAL-010001"
	ErrCodeInvalidRequest   ValidationErrorCode = "VAL-010002"
)

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found before a write is attempted.
type ValidationError struct {
	Code   ValidationErrorCode
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrValidationFailed so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Validator accumulates field errors.
type Validator struct {
	errs []FieldError
}

// Check records message against field when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.errs = append(v.errs, FieldError{Field: field, Message: message})
	}
}

// Add records a field error unconditionally.
func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

// Valid reports whether no errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.errs) == 0
}

// Err returns a *ValidationError, or nil when nothing failed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Code: ErrCodeValidationFailed, Errors: v.errs}
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Code:   ErrCodeInvalidRequest,
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// Fields returns the names of the failing fields in the order they were recorded.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}
