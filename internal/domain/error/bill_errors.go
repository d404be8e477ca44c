package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill does not exist or belongs to another user.
	ErrBillNotFound = errors.New("bill not found")

	// ErrDueDateInPast is returned when a bill is created with a due date before now.
	ErrDueDateInPast = errors.New("due date cannot be in the past")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeBillNotFound BillErrorCode = "BIL-010001"

	// Business rule errors (02XXXX)
	ErrCodeDueDateInPast BillErrorCode = "BIL-020001"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
