// Package error defines domain-specific errors for the e-BudgetMo application.
package error

import "errors"

// Storage errors. These are always recovered locally (logged, never
// surfaced to the caller of a mutation): a failed load starts from the
// zero state and a failed save is dropped, leaving the in-memory state
// authoritative.
var (
	// ErrStateNotFound is returned when no prior state exists under a storage key.
	ErrStateNotFound = errors.New("no persisted state")

	// ErrStateCorrupt is returned when persisted state fails to decode.
	ErrStateCorrupt = errors.New("persisted state corrupt")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// Persistence errors (02XXXX)
	ErrCodeStorageLoad    StorageErrorCode = "STG-020001"
	ErrCodeStorageSave    StorageErrorCode = "STG-020002"
	ErrCodeStorageDecode  StorageErrorCode = "STG-020003"
	ErrCodeStorageEncode  StorageErrorCode = "STG-020004"
)

// StorageError represents a persistence error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
