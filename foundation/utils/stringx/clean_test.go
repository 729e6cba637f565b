// File: clean_test.go
// Title: Unit Tests for the Cleaning Pipeline
// Description: Stage ordering, target cases, fail-fast validation, the options
//              form and ToNoneIfEmpty.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"encoding/json"
	"testing"

	"github.com/msto63/janitor/foundation/core/errors"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		cfg      PipelineConfig
		expected string
	}{
		{
			name:     "defaults",
			input:    "  héllo   wörld  ",
			cfg:      DefaultPipelineConfig(),
			expected: "hello woerld",
		},
		{
			name:     "nothing enabled",
			input:    "  héllo  ",
			cfg:      PipelineConfig{},
			expected: "  héllo  ",
		},
		{
			name:     "whitespace only",
			input:    "  héllo   wörld  ",
			cfg:      PipelineConfig{NormalizeWhitespace: true},
			expected: "héllo wörld",
		},
		{
			name:     "special chars renormalize whitespace",
			input:    "Hello, World! (test)",
			cfg:      PipelineConfig{RemoveSpecialChars: true},
			expected: "Hello World test",
		},
		{
			name:     "special chars after folding keep letters",
			input:    "Größe (cm)",
			cfg:      PipelineConfig{NormalizeUnicode: true, RemoveSpecialChars: true},
			expected: "Groesse cm",
		},
		{
			name:     "snake",
			input:    "  Größe (cm)  ",
			cfg:      PipelineConfig{NormalizeUnicode: true, NormalizeWhitespace: true, RemoveSpecialChars: true, TargetCase: CaseSnake},
			expected: "groesse_cm",
		},
		{
			name:     "kebab",
			input:    "First Name",
			cfg:      PipelineConfig{TargetCase: CaseKebab},
			expected: "first-name",
		},
		{
			name:     "camel",
			input:    "first name",
			cfg:      PipelineConfig{TargetCase: CaseCamel},
			expected: "firstName",
		},
		{
			name:     "pascal",
			input:    "first name",
			cfg:      PipelineConfig{TargetCase: CasePascal},
			expected: "FirstName",
		},
		{
			name:     "title",
			input:    "hello wORLD",
			cfg:      PipelineConfig{TargetCase: CaseTitle},
			expected: "Hello World",
		},
		{
			name:     "upper",
			input:    "hello",
			cfg:      PipelineConfig{TargetCase: CaseUpper},
			expected: "HELLO",
		},
		{
			name:     "lower",
			input:    "HeLLo",
			cfg:      PipelineConfig{TargetCase: CaseLower},
			expected: "hello",
		},
		{
			name:     "empty input",
			input:    "",
			cfg:      PipelineConfig{NormalizeUnicode: true, NormalizeWhitespace: true, RemoveSpecialChars: true, TargetCase: CaseSnake},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanString(tt.input, tt.cfg)
			if err != nil {
				t.Fatalf("CleanString(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("CleanString(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanStringInvalidCase(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.TargetCase = TargetCase(99)

	got, err := CleanString("  héllo  ", cfg)
	if err == nil {
		t.Fatal("CleanString with invalid case succeeded")
	}
	if got != "" {
		t.Errorf("CleanString returned partial output %q", got)
	}
	if !errors.IsConfigError(err) {
		t.Errorf("error %v is not a config error", err)
	}
}

func TestParseTargetCase(t *testing.T) {
	tests := []struct {
		input    string
		expected TargetCase
		wantErr  bool
	}{
		{"", CaseNone, false},
		{"none", CaseNone, false},
		{"SNAKE", CaseSnake, false},
		{" kebab ", CaseKebab, false},
		{"camel", CaseCamel, false},
		{"pascal", CasePascal, false},
		{"title", CaseTitle, false},
		{"upper", CaseUpper, false},
		{"lower", CaseLower, false},
		{"bogus", CaseNone, true},
		{"screaming_snake", CaseNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTargetCase(tt.input)
			if tt.wantErr {
				if !errors.IsConfigError(err) {
					t.Errorf("ParseTargetCase(%q) error = %v; want config error", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTargetCase(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseTargetCase(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTargetCaseText(t *testing.T) {
	var cfg PipelineConfig
	if err := json.Unmarshal([]byte(`{"normalize_unicode":true,"target_case":"title"}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cfg.NormalizeUnicode || cfg.TargetCase != CaseTitle {
		t.Errorf("decoded %+v", cfg)
	}

	if err := json.Unmarshal([]byte(`{"target_case":"bogus"}`), &cfg); err == nil {
		t.Error("unmarshal of unknown case succeeded")
	}

	if _, err := TargetCase(42).MarshalText(); err == nil {
		t.Error("MarshalText of invalid case succeeded")
	}
}

func TestCleanStringWith(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		expected string
	}{
		{"defaults", "  héllo   wörld  ", nil, "hello woerld"},
		{"snake", " Größe ", []Option{WithCase("snake")}, "groesse"},
		{"no unicode", "café", []Option{WithUnicode(false)}, "café"},
		{"no whitespace", " a  b ", []Option{WithWhitespace(false)}, " a  b "},
		{"special chars", "a, b!", []Option{WithSpecialChars(true)}, "a b"},
		{"explicit none", "Ab", []Option{WithCase("none")}, "Ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanStringWith(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("CleanStringWith(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("CleanStringWith(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanStringWithBogusCase(t *testing.T) {
	_, err := CleanStringWith("x", WithCase("bogus"))
	if !errors.IsConfigError(err) {
		t.Fatalf("CleanStringWith bogus case error = %v; want config error", err)
	}
	if errors.ExtractModule(err) != errors.ModuleStringx {
		t.Errorf("module = %q; want %q", errors.ExtractModule(err), errors.ModuleStringx)
	}
}

func TestToNoneIfEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isNil bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n", true},
		{"value", "x", false},
		{"value with spaces", "  x ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNoneIfEmpty(tt.input)
			if tt.isNil {
				if got != nil {
					t.Errorf("ToNoneIfEmpty(%q) = %q; want nil", tt.input, *got)
				}
				return
			}
			if got == nil || *got != tt.input {
				t.Errorf("ToNoneIfEmpty(%q) = %v; want %q unchanged", tt.input, got, tt.input)
			}
		})
	}
}
