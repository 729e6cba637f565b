// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the janitor foundation.
//              Codes classify failures so callers can tell programmer errors
//              (bad configuration) apart from environmental ones (I/O).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Trimmed to the codes raised by text cleaning and table I/O

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Data and storage
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeDuplicateEntry  Code = "DUPLICATE_ENTRY"
	CodeIOError         Code = "IO_ERROR"
	CodeDatabaseError   Code = "DATABASE_ERROR"
	CodeOperationFailed Code = "OPERATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsConfiguration reports whether the code marks a configuration problem.
func (c Code) IsConfiguration() bool {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// IsRetryable reports whether an operation failing with this code may succeed
// when repeated. Text cleaning is deterministic, so only storage failures qualify.
func (c Code) IsRetryable() bool {
	return c == CodeIOError || c == CodeDatabaseError
}
