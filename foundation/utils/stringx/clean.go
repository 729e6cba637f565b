// File: clean.go
// Title: Cleaning Pipeline
// Description: Runs unicode folding, whitespace normalization, special
//              character removal and case conversion in a fixed order under a
//              PipelineConfig. Also offers a functional-options entry point and
//              the empty-to-absent helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/janitor/foundation/core/errors"
)

// TargetCase selects the final case conversion of CleanString.
type TargetCase int

const (
	CaseNone TargetCase = iota
	CaseSnake
	CaseKebab
	CaseCamel
	CasePascal
	CaseTitle
	CaseUpper
	CaseLower
)

var targetCaseNames = []string{"none", "snake", "kebab", "camel", "pascal", "title", "upper", "lower"}

// TargetCases returns the accepted target case names.
func TargetCases() []string {
	return append([]string(nil), targetCaseNames...)
}

func (c TargetCase) String() string {
	if c >= CaseNone && c <= CaseLower {
		return targetCaseNames[c]
	}
	return "TargetCase(" + strconv.Itoa(int(c)) + ")"
}

// Validate returns a configuration error for values outside the enumeration.
func (c TargetCase) Validate() error {
	if c < CaseNone || c > CaseLower {
		return errors.ConfigError(errors.ModuleStringx, "clean_string",
			"case", c, targetCaseNames)
	}
	return nil
}

// MarshalText encodes the case by name.
func (c TargetCase) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a case name with ParseTargetCase.
func (c *TargetCase) UnmarshalText(text []byte) error {
	parsed, err := ParseTargetCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseTargetCase converts a case name to a TargetCase. The empty string and
// "none" both mean no conversion.
func ParseTargetCase(name string) (TargetCase, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return CaseNone, nil
	}
	for i, n := range targetCaseNames {
		if n == normalized {
			return TargetCase(i), nil
		}
	}
	return CaseNone, errors.ConfigError(errors.ModuleStringx, "parse_target_case",
		"case", name, targetCaseNames)
}

// PipelineConfig toggles the stages of CleanString.
type PipelineConfig struct {
	NormalizeUnicode    bool       `json:"normalize_unicode" yaml:"normalize_unicode" toml:"normalize_unicode"`
	NormalizeWhitespace bool       `json:"normalize_whitespace" yaml:"normalize_whitespace" toml:"normalize_whitespace"`
	RemoveSpecialChars  bool       `json:"remove_special_chars" yaml:"remove_special_chars" toml:"remove_special_chars"`
	TargetCase          TargetCase `json:"target_case" yaml:"target_case" toml:"target_case"`
}

// DefaultPipelineConfig folds unicode and normalizes whitespace, keeps
// punctuation and leaves the case alone.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		NormalizeUnicode:    true,
		NormalizeWhitespace: true,
	}
}

// CleanString applies the enabled stages to s in order: unicode folding,
// whitespace normalization, special character removal (followed by another
// whitespace pass) and case conversion. An invalid TargetCase fails before any
// stage runs.
func CleanString(s string, cfg PipelineConfig) (string, error) {
	if err := cfg.TargetCase.Validate(); err != nil {
		return "", err
	}

	if cfg.NormalizeUnicode {
		s = NormalizeUnicode(s)
	}
	if cfg.NormalizeWhitespace {
		s = NormalizeWhitespace(s)
	}
	if cfg.RemoveSpecialChars {
		s = NormalizeWhitespace(RemoveSpecialCharacters(s, ""))
	}

	switch cfg.TargetCase {
	case CaseSnake:
		s = ToSnakeCase(s)
	case CaseKebab:
		s = ToKebabCase(s)
	case CaseCamel:
		s = ToCamelCase(s)
	case CasePascal:
		s = ToPascalCase(s)
	case CaseTitle:
		s = cases.Title(language.Und).String(s)
	case CaseUpper:
		s = cases.Upper(language.Und).String(s)
	case CaseLower:
		s = cases.Lower(language.Und).String(s)
	}

	return s, nil
}

// Option adjusts a PipelineConfig built by CleanStringWith.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	cfg      PipelineConfig
	caseName string
}

// WithUnicode enables or disables unicode folding.
func WithUnicode(enabled bool) Option {
	return func(o *pipelineOptions) { o.cfg.NormalizeUnicode = enabled }
}

// WithWhitespace enables or disables whitespace normalization.
func WithWhitespace(enabled bool) Option {
	return func(o *pipelineOptions) { o.cfg.NormalizeWhitespace = enabled }
}

// WithSpecialChars enables or disables special character removal.
func WithSpecialChars(enabled bool) Option {
	return func(o *pipelineOptions) { o.cfg.RemoveSpecialChars = enabled }
}

// WithCase selects the target case by name; see ParseTargetCase.
func WithCase(name string) Option {
	return func(o *pipelineOptions) { o.caseName = name }
}

// CleanStringWith is CleanString starting from DefaultPipelineConfig and
// adjusted by opts. An unknown case name fails with a configuration error.
func CleanStringWith(s string, opts ...Option) (string, error) {
	o := pipelineOptions{cfg: DefaultPipelineConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	target, err := ParseTargetCase(o.caseName)
	if err != nil {
		return "", err
	}
	o.cfg.TargetCase = target

	return CleanString(s, o.cfg)
}

// ToNoneIfEmpty returns nil when s is empty or only whitespace, and a pointer
// to s unchanged otherwise.
func ToNoneIfEmpty(s string) *string {
	if IsBlank(s) {
		return nil
	}
	return &s
}
