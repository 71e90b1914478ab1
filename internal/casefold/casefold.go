// Package casefold normalizes words before lexicon lookup.
//
// Every lexicon in this module stores lowercase NFC entries. Fold applies
// the same normalization to incoming words so that lookup is insensitive to
// case and to decomposed Unicode forms (e.g. "e" + combining diaeresis vs.
// the precomposed "ë" common in Dutch number words).
//
// All functions are safe for concurrent use.
package casefold

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in lowercase NFC form.
//
// A fresh caser is created per call: cases.Caser carries internal state and
// is not safe for concurrent use, while creation is cheap.
func Fold(s string) string {
	if isFolded(s) {
		return s
	}
	s = norm.NFC.String(s)
	return cases.Lower(language.Dutch).String(s)
}

// isFolded reports whether s is pure lowercase ASCII, the common case for
// number words, letting Fold skip the allocation entirely.
func isFolded(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
