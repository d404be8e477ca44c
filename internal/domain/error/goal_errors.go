// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or belongs to another user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInsufficientFunds is returned when withdrawing more than the goal holds.
	ErrInsufficientFunds = errors.New("insufficient funds in goal")

	// ErrCurrentExceedsTarget is returned when the current amount is set above the target.
	ErrCurrentExceedsTarget = errors.New("current amount cannot exceed target amount")

	// ErrDeadlineInPast is returned when a goal deadline is not in the future.
	ErrDeadlineInPast = errors.New("deadline must be in the future")

	// ErrMilestoneExceedsTarget is returned when a milestone amount is above the goal target.
	ErrMilestoneExceedsTarget = errors.New("milestone amount cannot exceed target amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-010001"

	// Business rule errors (02XXXX)
	ErrCodeInsufficientFunds      GoalErrorCode = "GOL-020001"
	ErrCodeCurrentExceedsTarget   GoalErrorCode = "GOL-020002"
	ErrCodeDeadlineInPast         GoalErrorCode = "GOL-020003"
	ErrCodeMilestoneExceedsTarget GoalErrorCode = "GOL-020004"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
