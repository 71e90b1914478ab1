// Package compose folds a sequence of categorized number words into a value.
//
// The composer is the magnitude state machine at the heart of the engine:
// units, teens and tens accumulate into a group, the hundred word scales the
// group by 100, and each multiplier word closes the group ("group × scale,
// accumulate into the total, reset"), which requires multipliers to appear
// in descending scale order. A spoken decimal separator switches the machine
// into fractional mode, where composed groups append digits positionally.
//
// Composition is a pure function over its input and the read-only profile;
// all functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values are limited to ±10^18; anything larger is a composition error.
//   - Relaxed two-word forms ("vijf en twintig" for "vijfentwintig") are not
//     recognized unless the profile's conjunction rules admit them.
package compose

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akpeker/text2num/lang"
)

// maxAbs is the largest absolute value the composer produces (10^18).
const maxAbs int64 = 1_000_000_000_000_000_000

// ErrNotNumber reports that a sequence contained no composable number words
// at all. It is a classification, not a failure: the caller should leave the
// original text untouched.
var ErrNotNumber = errors.New("compose: not a number")

// Error is a composition failure carrying the offending token position.
type Error struct {
	Index  int    // position of the offending token in the input sequence
	Word   string // the offending word
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("compose: %s at token %d (%q)", e.Reason, e.Index, e.Word)
}

// Number is a composed value: a signed whole part plus optional fractional
// digits. The zero value is the number 0.
type Number struct {
	neg   bool
	units int64  // absolute whole part
	frac  string // fractional digits, "" for integers
}

// Int64 returns the signed whole part.
func (n Number) Int64() int64 {
	if n.neg {
		return -n.units
	}
	return n.units
}

// IsDecimal reports whether the number carries fractional digits.
func (n Number) IsDecimal() bool { return n.frac != "" }

// Format renders the number with the given decimal separator.
func (n Number) Format(sep string) string {
	var b strings.Builder
	if n.neg && (n.units != 0 || n.frac != "") {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(n.units, 10))
	if n.frac != "" {
		b.WriteString(sep)
		b.WriteString(n.frac)
	}
	return b.String()
}

// String renders the number with "." as the decimal separator.
func (n Number) String() string { return n.Format(".") }

// Compose folds a sequence of raw words into a Number using profile p.
//
// Returns ErrNotNumber when no word in the sequence is in the profile's
// vocabulary, and a *Error when the sequence is number-like but invalid
// (unknown word amid number words, ordering violation, disallowed lone word,
// out-of-range value).
func Compose(p *lang.Profile, words []string) (Number, error) {
	toks := make([]lang.Token, 0, len(words))
	known := 0
	unknownIdx := -1
	for i, w := range words {
		t, ok := p.Lookup(w)
		if !ok {
			if unknownIdx < 0 {
				unknownIdx = i
			}
			continue
		}
		known++
		toks = append(toks, t)
	}
	if known == 0 {
		return Number{}, ErrNotNumber
	}
	if unknownIdx >= 0 {
		return Number{}, &Error{Index: unknownIdx, Word: words[unknownIdx], Reason: "unknown word"}
	}
	return ComposeTokens(p, toks)
}

// ComposeTokens folds an already categorized token sequence into a Number.
// An empty sequence returns ErrNotNumber.
func ComposeTokens(p *lang.Profile, toks []lang.Token) (Number, error) {
	if len(toks) == 0 {
		return Number{}, ErrNotNumber
	}

	// A word from the never-alone set is not a number phrase by itself.
	if len(toks) == 1 && p.NeverAlone(toks[0].Word) {
		return Number{}, &Error{Index: 0, Word: toks[0].Word, Reason: "word not allowed alone"}
	}

	var (
		total     int64
		group     int64
		neg       bool
		zeroSeen  bool
		decimal   bool
		frac      strings.Builder
		lastScale int64 // scale of the last applied multiplier, 0 if none
	)

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Cat {

		case lang.Sign:
			if i != 0 {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "sign not at start"}
			}
			if len(toks) < 2 || !composable(toks[1].Cat) {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "sign without number"}
			}
			neg = tok.Value < 0

		case lang.Zero:
			if decimal {
				frac.WriteByte('0')
				continue
			}
			if zeroSeen || group != 0 || total != 0 {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "zero in compound number"}
			}
			zeroSeen = true

		case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit:
			if zeroSeen && !decimal {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "zero in compound number"}
			}
			if decimal {
				v := tok.Value
				// Tens directly followed by a unit form one fractional
				// group ("twintig vijf" → 25, two decimal places).
				if tok.Cat == lang.TensMultiple && i+1 < len(toks) && toks[i+1].Cat == lang.Unit {
					v += toks[i+1].Value
					i++
				}
				frac.WriteString(strconv.FormatInt(v, 10))
				continue
			}
			group += tok.Value

		case lang.Hundred:
			if decimal {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "hundred in fraction"}
			}
			if zeroSeen {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "zero in compound number"}
			}
			if group == 0 {
				group = 1 // "honderd" alone is 100
			}
			if group > maxAbs/100 {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "out of range"}
			}
			group *= 100

		case lang.Multiplier:
			if decimal {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "multiplier in fraction"}
			}
			if zeroSeen {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "zero in compound number"}
			}
			if i > 0 && toks[i-1].Cat == lang.Multiplier {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "consecutive multipliers"}
			}
			if lastScale != 0 && tok.Value >= lastScale {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "ascending magnitude order"}
			}
			if group == 0 {
				group = 1 // "duizend" alone is 1000
			}
			if group > maxAbs/tok.Value {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "out of range"}
			}
			product := group * tok.Value
			if total > maxAbs-product {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "out of range"}
			}
			total += product
			group = 0
			lastScale = tok.Value

		case lang.Conjunction:
			if decimal {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "conjunction in fraction"}
			}
			if i == 0 || i == len(toks)-1 || !composable(toks[i-1].Cat) || !composable(toks[i+1].Cat) {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "conjunction without numbers"}
			}
			if p.NeverWithConjunction(toks[i-1].Word) || p.NeverWithConjunction(toks[i+1].Word) {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "conjunction not allowed here"}
			}

		case lang.DecimalSep:
			if decimal {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "second decimal separator"}
			}
			if i == len(toks)-1 {
				return Number{}, &Error{Index: i, Word: tok.Word, Reason: "dangling decimal separator"}
			}
			decimal = true

		default:
			return Number{}, &Error{Index: i, Word: tok.Word, Reason: "unknown category"}
		}
	}

	if total > maxAbs-group {
		return Number{}, &Error{Index: len(toks) - 1, Word: toks[len(toks)-1].Word, Reason: "out of range"}
	}

	return Number{neg: neg, units: total + group, frac: frac.String()}, nil
}

// composable reports whether a category contributes numeric content.
func composable(c lang.Category) bool {
	switch c {
	case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit,
		lang.Hundred, lang.Multiplier, lang.Zero:
		return true
	}
	return false
}
