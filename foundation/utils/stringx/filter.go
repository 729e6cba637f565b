// File: filter.go
// Title: Special Character Filter
// Description: Removes every character outside ASCII letters, ASCII digits,
//              the ASCII space and a caller-supplied keep set.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

func isAlphaNumericSpace(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == ' '
}

// RemoveSpecialCharacters removes every rune of s that is not an ASCII letter,
// ASCII digit, space, or one of the runes in keep. Runes in keep are matched
// literally. Remaining whitespace is left as is; combine with
// NormalizeWhitespace when runs should be collapsed.
// Example: RemoveSpecialCharacters("hello, world!", "") -> "hello world"
// Example: RemoveSpecialCharacters("a-b_c.d", "_-") -> "a-b_cd"
func RemoveSpecialCharacters(s, keep string) string {
	drop := runes.Predicate(func(r rune) bool {
		return !isAlphaNumericSpace(r) && !strings.ContainsRune(keep, r)
	})

	result, _, _ := transform.String(runes.Remove(drop), s)
	return result
}
