// File: case.go
// Title: String Case Conversion Utilities
// Description: Composes tokenized words into snake_case, kebab-case, camelCase
//              and PascalCase. Word boundaries come from Tokenize, so acronym
//              runs are split ("XMLHttpRequest" -> "xml_http_request").
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Rebuilt on Tokenize and Compose; unicode-aware casing via
//                      golang.org/x/text/cases; closed CasingStyle enum

package stringx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/janitor/foundation/core/errors"
)

// CasingStyle is one of the four supported identifier conventions.
// The zero value is not a valid style.
type CasingStyle int

const (
	Snake CasingStyle = iota + 1
	Kebab
	Camel
	Pascal
)

var casingStyleNames = []string{"snake", "kebab", "camel", "pascal"}

// CasingStyles returns the accepted casing style names in declaration order.
func CasingStyles() []string {
	return append([]string(nil), casingStyleNames...)
}

// String returns the style name, or "CasingStyle(n)" for invalid values.
func (c CasingStyle) String() string {
	if c.IsValid() {
		return casingStyleNames[c-1]
	}
	return "CasingStyle(" + strconv.Itoa(int(c)) + ")"
}

// IsValid reports whether c is one of Snake, Kebab, Camel or Pascal.
func (c CasingStyle) IsValid() bool {
	return c >= Snake && c <= Pascal
}

// MarshalText encodes the style by name.
func (c CasingStyle) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.ConfigError(errors.ModuleStringx, "marshal_casing_style",
			"casing style", c, casingStyleNames)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a style name with ParseCasingStyle.
func (c *CasingStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseCasingStyle(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCasingStyle converts a style name to a CasingStyle. Unknown names fail
// with a configuration error.
func ParseCasingStyle(name string) (CasingStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "snake":
		return Snake, nil
	case "kebab":
		return Kebab, nil
	case "camel":
		return Camel, nil
	case "pascal":
		return Pascal, nil
	default:
		return 0, errors.ConfigError(errors.ModuleStringx, "parse_casing_style",
			"casing style", name, casingStyleNames)
	}
}

// Compose joins words using the given style. An empty word list composes to
// "" for every style; an invalid style fails with a configuration error.
func Compose(words []string, style CasingStyle) (string, error) {
	switch style {
	case Snake:
		return joinLower(words, "_"), nil
	case Kebab:
		return joinLower(words, "-"), nil
	case Pascal:
		return joinTitle(words), nil
	case Camel:
		return lowerFirst(joinTitle(words)), nil
	default:
		return "", errors.ConfigError(errors.ModuleStringx, "compose",
			"casing style", style, casingStyleNames)
	}
}

// ToSnakeCase converts a string to snake_case.
// Example: "myHTTPRequest" -> "my_http_request", "Hello World" -> "hello_world"
func ToSnakeCase(s string) string {
	return joinLower(Tokenize(NormalizeWhitespace(s)), "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "helloWorld" -> "hello-world"
func ToKebabCase(s string) string {
	return joinLower(Tokenize(NormalizeWhitespace(s)), "-")
}

// ToPascalCase converts a string to PascalCase. Characters other than ASCII
// letters, digits and word delimiters are dropped before splitting.
// Example: "hello world" -> "HelloWorld"
func ToPascalCase(s string) string {
	return joinTitle(pascalWords(s))
}

// ToCamelCase converts a string to camelCase.
// Example: "hello world" -> "helloWorld"
func ToCamelCase(s string) string {
	return lowerFirst(joinTitle(pascalWords(s)))
}

func pascalWords(s string) []string {
	return Tokenize(RemoveSpecialCharacters(strings.TrimSpace(s), "_- "))
}

func joinLower(words []string, sep string) string {
	lower := cases.Lower(language.Und)
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = lower.String(w)
	}
	return strings.Join(parts, sep)
}

// joinTitle uppercases the first rune of every word with its titlecase
// mapping, lowercases the rest, and concatenates.
func joinTitle(words []string) string {
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for _, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		b.WriteString(title.String(w[:size]))
		b.WriteString(lower.String(w[size:]))
	}
	return b.String()
}

// lowerFirst lowercases only the first rune of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
