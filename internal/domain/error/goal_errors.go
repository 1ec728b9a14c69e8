// Package error defines domain-specific errors for the e-BudgetMo application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when an adjustment or deletion references an unknown goal.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when a goal's target amount is missing or not positive.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidAdjustAmount is returned when an adjustment amount is missing or not positive.
	ErrInvalidAdjustAmount = errors.New("invalid adjustment amount")

	// ErrInvalidDueDate is returned when a goal's due date is missing or unparseable.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidGoalAction is returned when an adjustment action is neither add nor withdraw.
	ErrInvalidGoalAction = errors.New("invalid goal action")

	// ErrDeleteNotConfirmed is returned when a deletion is requested without explicit confirmation.
	ErrDeleteNotConfirmed = errors.New("goal deletion not confirmed")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidAdjustAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidDueDate      GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalAction   GoalErrorCode = "GOL-010005"
	ErrCodeDeleteNotConfirmed  GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010007"
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
