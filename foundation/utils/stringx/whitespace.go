// File: whitespace.go
// Title: Whitespace Normalization
// Description: Collapses interior whitespace runs to a single ASCII space and
//              trims both ends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import "strings"

// NormalizeWhitespace trims leading and trailing whitespace and replaces every
// interior run of unicode whitespace with a single ASCII space.
// Example: "  hello \t\n world  " -> "hello world"
func NormalizeWhitespace(s string) string {
	if IsEmpty(s) {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
