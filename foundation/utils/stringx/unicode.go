// File: unicode.go
// Title: Unicode Folding
// Description: Folds accented and ligature Latin letters to ASCII. Letters with
//              a conventional transliteration (ä, ß, ø, ...) are substituted
//              from a fixed table; everything else is compatibility-decomposed
//              and stripped of combining marks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation on golang.org/x/text

package stringx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// latinSubstitutions maps Latin-extended letters that do not decompose into
// base letter plus mark (or whose German transliteration differs) to ASCII.
var latinSubstitutions = []string{
	"ä", "ae", "æ", "ae", "ǽ", "ae", "đ", "d", "ð", "d", "ƒ", "f", "ħ", "h",
	"ı", "i", "ł", "l", "ø", "o", "ǿ", "o", "ö", "oe", "œ", "oe", "ß", "ss",
	"ŧ", "t", "ü", "ue",
	"Ä", "AE", "Æ", "AE", "Ǽ", "AE", "Đ", "D", "Ð", "D", "Ƒ", "F", "Ħ", "H",
	"I", "I", "Ł", "L", "Ø", "O", "Ǿ", "O", "Ö", "OE", "Œ", "OE", "ẞ", "SS",
	"Ŧ", "T", "Ü", "UE",
}

// latinReplacer is safe for concurrent use.
var latinReplacer = strings.NewReplacer(latinSubstitutions...)

// isCombiningMark classifies nonspacing and enclosing marks from the unicode
// category tables, plus any rune with a non-zero canonical combining class.
func isCombiningMark(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me) {
		return true
	}
	return norm.NFD.PropertiesString(string(r)).CCC() != 0
}

// NormalizeUnicode returns s with known Latin letters transliterated, the rest
// compatibility-decomposed, and all combining marks removed. Base characters
// keep their order; scripts without a decomposition pass through unchanged.
// Example: "café" -> "cafe", "Größe" -> "Groesse"
func NormalizeUnicode(s string) string {
	if isASCIIString(s) {
		return s
	}

	// Compose first so decomposed input hits the substitution table too.
	substituted := latinReplacer.Replace(norm.NFC.String(s))

	// transform.Chain is stateful; build one per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isCombiningMark)))
	result, _, _ := transform.String(fold, substituted)
	return result
}
