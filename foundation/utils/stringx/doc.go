// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx turns arbitrary text into canonical identifiers
//              and cleaned display text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Rewritten around the cleaning pipeline

// Package stringx normalizes text for use as identifiers (column names, keys,
// slugs) or as cleaned display text.
//
// Overview
//
// The package is a set of small stages that callers can use on their own or
// chain through CleanString:
//
//   - NormalizeUnicode folds accented and ligature Latin letters to ASCII
//     (unicode.go)
//   - NormalizeWhitespace trims and collapses whitespace runs (whitespace.go)
//   - RemoveSpecialCharacters keeps ASCII letters, digits, spaces and a keep set
//     (filter.go)
//   - Tokenize splits text into words on delimiters and case boundaries
//     (tokenize.go)
//   - Compose joins words as snake_case, kebab-case, camelCase or PascalCase
//     (case.go)
//   - CleanString runs the stages in a fixed order under a PipelineConfig
//     (clean.go)
//
// Usage Examples
//
// Identifiers from free text:
//
//	stringx.ToSnakeCase("myHTTPRequest")   // "my_http_request"
//	stringx.ToKebabCase("Hello World")     // "hello-world"
//	stringx.ToCamelCase("user_id")         // "userId"
//	stringx.ToPascalCase("first-name")     // "FirstName"
//
// Custom pipelines:
//
//	words := stringx.Tokenize(stringx.NormalizeWhitespace(input))
//	name, err := stringx.Compose(words, stringx.Kebab)
//
// The full pipeline:
//
//	cfg := stringx.DefaultPipelineConfig()
//	cfg.RemoveSpecialChars = true
//	cfg.TargetCase = stringx.CaseSnake
//	out, err := stringx.CleanString("  Größe (cm)  ", cfg)
//	// out == "groesse_cm"
//
// Error Handling
//
// Text content never produces an error. The only failure is a casing style or
// target case outside its enumeration, reported as a configuration error that
// errors.IsConfigError recognizes. No partial output accompanies an error.
//
// Thread Safety
//
// All functions are safe for concurrent use. The substitution table is read
// only; transformers and casers are created per call.
package stringx
