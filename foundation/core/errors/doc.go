// Package errors provides module-scoped error constructors for the janitor
// foundation.
//
// Package: errors
// Title: Standardized Error Constructors
// Description: Every foundation module reports failures through the structured
//              error type of foundation/core/error. This package adds the module
//              and operation context in one place so callers can classify errors
//              without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: ConfigError for closed-enum parsing, table and store modules
//
// The only error a text-cleaning operation can return is a configuration error:
//
//	out, err := stringx.CleanString(s, cfg)
//	if errors.IsConfigError(err) {
//		// unknown casing style or target case; fix the caller
//	}
//
// Collaborators that touch files or databases wrap the underlying failure:
//
//	return errors.OperationFailed(errors.ModuleTablestore, "read_table", err).
//		WithCode(mdwerror.CodeDatabaseError)
package errors
