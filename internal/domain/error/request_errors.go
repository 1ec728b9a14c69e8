// Package error defines domain-specific errors for the e-BudgetMo application.
package error

// RequestErrorCode defines error codes for generic request handling.
type RequestErrorCode string

const (
	ErrCodeRateLimited RequestErrorCode = "REQ-010001"
)
