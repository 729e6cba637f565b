// Package error provides structured error handling for the janitor foundation.
//
// Package: error
// Title: janitor Error Handling Framework
// Description: Structured errors carrying a code, a severity, key/value details
//              and a captured stack trace. Errors stay compatible with the
//              standard error interface and unwrap through errors.Is/errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set to configuration, input and I/O failures
//
// Usage:
//
//	import mdwerror "github.com/msto63/janitor/foundation/core/error"
//
//	err := mdwerror.New("unknown casing style").
//		WithCode(mdwerror.CodeInvalidConfig).
//		WithDetail("value", "bogus")
//
//	wrapped := mdwerror.Wrap(ioErr, "failed to read csv").
//		WithCode(mdwerror.CodeIOError)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//		// programmer error, surface to the caller
//	}
package error
