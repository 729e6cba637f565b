// File: tokenize.go
// Title: Word Tokenizer
// Description: Splits identifiers and phrases into words along delimiters and
//              letter-case boundaries, so that "myHTTPRequest" yields
//              ["my", "HTTP", "Request"].
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import "unicode"

// isDelimiter reports whether r separates words and is dropped by Tokenize.
func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '-'
}

// isUpper and isLower use the Lu and Ll category tables only. Titlecase
// letters, digits and uncased scripts never create a case boundary.
func isUpper(r rune) bool {
	return unicode.Is(unicode.Lu, r)
}

func isLower(r rune) bool {
	return unicode.Is(unicode.Ll, r)
}

// Tokenize splits s into words. Runs of whitespace, '_' and '-' end the current
// word and are discarded. A new word also starts at an uppercase letter that
// follows a lowercase letter ("myWord" -> "my", "Word"), and at the last
// uppercase letter of an uppercase run when a lowercase letter follows it
// ("HTTPRequest" -> "HTTP", "Request"). Every other rune extends the current
// word. The result never contains empty words and is empty, not nil, when s
// holds no word characters.
func Tokenize(s string) []string {
	rs := []rune(s)
	words := make([]string, 0, 4)
	current := make([]rune, 0, len(rs))

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range rs {
		if isDelimiter(r) {
			flush()
			continue
		}

		if i > 0 && isUpper(r) {
			prev := rs[i-1]
			switch {
			case isLower(prev):
				// camelCase boundary
				flush()
			case isUpper(prev) && i+1 < len(rs) && isLower(rs[i+1]):
				// end of an acronym: HTTP|Request
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
