// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the builder, the standard constructors and the
//              configuration error helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Code() != mdwerror.CodeOperationFailed {
			t.Errorf("Expected default code, got %v", err.Code())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
	})
}

func TestConfigError(t *testing.T) {
	err := ConfigError(ModuleStringx, "compose", "casing style", "bogus",
		[]string{"snake", "kebab", "camel", "pascal"})

	if err.Code() != mdwerror.CodeInvalidConfig {
		t.Errorf("Code() = %v, want %v", err.Code(), mdwerror.CodeInvalidConfig)
	}
	if !strings.Contains(err.Error(), `"bogus"`) {
		t.Errorf("message should name the invalid value: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "snake, kebab, camel, pascal") {
		t.Errorf("message should list accepted values: %s", err.Error())
	}
	if ExtractModule(err) != ModuleStringx {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "compose" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
}

func TestIsConfigError(t *testing.T) {
	cfgErr := ConfigError(ModuleConfig, "profile", "case", "bogus", []string{"snake"})

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"config error", cfgErr, true},
		{"wrapped by fmt", fmt.Errorf("load: %w", cfgErr), true},
		{"wrapped by structured error", OperationFailed(ModuleTablex, "clean_columns", cfgErr), true},
		{"io error", OperationFailed(ModuleTablex, "read_csv", errors.New("eof")).WithCode(mdwerror.CodeIOError), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.want {
				t.Errorf("IsConfigError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleTablex, "new", 3, "rows with 2 cells")
	if err.Code() != mdwerror.CodeInvalidInput {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if !IsModuleError(err, ModuleTablex) {
		t.Error("IsModuleError() should match the module")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(ModuleTablestore, "read_table", "people")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Error("expected CodeNotFound")
	}
	if !strings.Contains(err.Error(), "people") {
		t.Errorf("message should name the identifier: %s", err.Error())
	}
}

func TestExtractFromForeignError(t *testing.T) {
	if ExtractModule(errors.New("x")) != "" {
		t.Error("foreign errors carry no module")
	}
	if ExtractDetails(nil) != nil {
		t.Error("nil error carries no details")
	}
}
