// Package error defines domain-specific errors for the e-BudgetMo application.
package error

import "errors"

// Finance ledger domain errors.
var (
	// ErrInvalidAmount is returned when an entry amount is missing, non-numeric or not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)

// FinanceErrorCode defines error codes for ledger errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount     FinanceErrorCode = "FIN-010001"
	ErrCodeMissingEntryBody  FinanceErrorCode = "FIN-010002"
	ErrCodeInvalidStatsMonth FinanceErrorCode = "FIN-010003"
)

// FinanceError represents a ledger error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
