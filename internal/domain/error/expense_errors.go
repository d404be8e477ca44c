package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseDateInFuture is returned when an expense is dated after now.
	ErrExpenseDateInFuture = errors.New("expense date cannot be in the future")

	// ErrSuggestionUnavailable is returned when no category suggestion could be produced.
	ErrSuggestionUnavailable = errors.New("category suggestion unavailable")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-010001"

	// Business rule errors (02XXXX)
	ErrCodeExpenseDateInFuture ExpenseErrorCode = "EXP-020001"

	// Suggestion errors (03XXXX)
	ErrCodeSuggestionUnavailable ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
