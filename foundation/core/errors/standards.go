// File: standards.go
// Title: Error Standards for janitor Foundation
// Description: Module identifiers and the configuration error raised when a
//              caller names a casing style or target case that does not exist.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: ConfigError and IsConfigError

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx    = "stringx"
	ModuleTablex     = "tablex"
	ModuleConfig     = "config"
	ModuleTablestore = "tablestore"
)

// ConfigError reports a setting whose value is outside its closed set of
// accepted values. It is a programmer error and is never coerced to a default.
func ConfigError(module, operation, setting string, value interface{}, expected []string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invalid %s %q (expected one of: %s)",
			module, operation, setting, fmt.Sprint(value), strings.Join(expected, ", ")).
		Code(mdwerror.CodeInvalidConfig).
		Detail("setting", setting).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// IsConfigError reports whether err, or any error it wraps, is a configuration error.
func IsConfigError(err error) bool {
	var e *mdwerror.Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Code().IsConfiguration() {
			return true
		}
		err = e.Unwrap()
	}
	return false
}

// IsModuleError checks if the error originated in the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
