// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and the default mapping from error
//              codes to severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-19 v0.2.0: Code mapping updated for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with no lasting damage
	SeverityMedium

	// SeverityHigh indicates a failure of storage or the environment
	SeverityHigh

	// SeverityCritical indicates data may have been lost or corrupted
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDatabaseError, CodeIOError:
		return SeverityHigh

	case CodeInvalidInput, CodeInvalidFormat, CodeNotFound, CodeDuplicateEntry,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
