// Package lang defines the language profile consumed by the number engine.
//
// A Profile carries everything that is language-specific: the mapping from
// number words to categories and values, the fused tens-unit vocabulary
// ("tweeëntwintig"), ordinal rules, and the composition constraints (words
// that may never stand alone or never combine with the conjunction word).
// The engine packages (segment, compose, ordinal, pipeline) hold no language
// data of their own.
//
// Profiles are loaded from YAML (see Load) and are immutable afterwards:
// a loaded Profile is safe for concurrent use by multiple goroutines.
//
// The built-in Dutch profile is available via Dutch.
package lang

import (
	"errors"
	"fmt"

	"github.com/akpeker/text2num/internal/casefold"
)

// ErrConfig is wrapped by every profile loading/validation error.
var ErrConfig = errors.New("invalid profile")

// Category classifies a number word. Every lexicon entry maps to exactly one
// category; the assignment is immutable after profile construction.
type Category int

const (
	Unit          Category = iota // one through nine
	Teen                          // ten through nineteen
	TensMultiple                  // twenty, thirty, … ninety
	FusedTensUnit                 // tens+unit glued as one word, e.g. "tweeëntwintig"
	Hundred                       // the hundred word
	Multiplier                    // thousand, million, … (Value holds the scale)
	Sign                          // plus/minus words (Value is +1 or -1)
	Zero                          // the zero word(s)
	Conjunction                   // the linking word ("en")
	DecimalSep                    // the spoken decimal separator ("komma")
)

// categoryNames maps Category values to their string names.
var categoryNames = [...]string{
	Unit:          "Unit",
	Teen:          "Teen",
	TensMultiple:  "TensMultiple",
	FusedTensUnit: "FusedTensUnit",
	Hundred:       "Hundred",
	Multiplier:    "Multiplier",
	Sign:          "Sign",
	Zero:          "Zero",
	Conjunction:   "Conjunction",
	DecimalSep:    "DecimalSep",
}

// String returns the name of the category.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Token is a categorized number word.
type Token struct {
	Word  string   // lowercase NFC surface form
	Cat   Category // category of the word
	Value int64    // numeric value; scale for Multiplier, ±1 for Sign
}

// SuffixRule strips an ordinal suffix. The stripped stem must pass a lexicon
// membership test before the rule applies; TrimStem optionally names a
// linking character that may be dropped from the stem end on a failed lookup.
type SuffixRule struct {
	Suffix   string
	TrimStem string
}

// Profile is the read-only per-language configuration.
// The zero value is not usable; construct profiles with Load or Dutch.
type Profile struct {
	name          string
	words         map[string]Token
	vocab         []string // descending word length
	neverAlone    map[string]struct{}
	neverWithConj map[string]struct{}

	conjunction string
	decimalWord string
	decimalSym  string

	irregularOrdinals map[string]string
	suffixRules       []SuffixRule
	ordSuffixes       []string // compound ordinal suffixes, longest first
	ordDigitSuffix    string
	minOrdinalRunes   int

	months        []string
	dateLinkWords []string
	timeWords     []string
	hourWords     []string
}

// Name returns the profile's language name.
func (p *Profile) Name() string { return p.name }

// Lookup returns the categorized token for word.
// The word is case-folded before lookup.
func (p *Profile) Lookup(word string) (Token, bool) {
	t, ok := p.words[casefold.Fold(word)]
	return t, ok
}

// Vocabulary returns every known word sorted by descending length.
// The returned slice is shared and must not be modified.
func (p *Profile) Vocabulary() []string { return p.vocab }

// NeverAlone reports whether word is rejected as a complete phrase by itself.
func (p *Profile) NeverAlone(word string) bool {
	_, ok := p.neverAlone[casefold.Fold(word)]
	return ok
}

// NeverWithConjunction reports whether word may not sit next to the
// conjunction word inside a number phrase.
func (p *Profile) NeverWithConjunction(word string) bool {
	_, ok := p.neverWithConj[casefold.Fold(word)]
	return ok
}

// Conjunction returns the linking word ("en" for Dutch).
func (p *Profile) Conjunction() string { return p.conjunction }

// DecimalWord returns the spoken decimal separator ("komma" for Dutch).
func (p *Profile) DecimalWord() string { return p.decimalWord }

// DecimalSymbol returns the written decimal separator ("," for Dutch).
func (p *Profile) DecimalSymbol() string { return p.decimalSym }

// IrregularOrdinal returns the cardinal form of an irregular ordinal word.
func (p *Profile) IrregularOrdinal(word string) (string, bool) {
	c, ok := p.irregularOrdinals[casefold.Fold(word)]
	return c, ok
}

// SuffixRules returns the ordinal suffix rules, longest suffix first.
// The returned slice is shared and must not be modified.
func (p *Profile) SuffixRules() []SuffixRule { return p.suffixRules }

// CompoundOrdinalSuffixes returns the suffixes the segmenter may fuse onto a
// matched stem ("ste", "sten", …), longest first.
// The returned slice is shared and must not be modified.
func (p *Profile) CompoundOrdinalSuffixes() []string { return p.ordSuffixes }

// OrdinalDigitSuffix returns the literal suffix appended to a numeral's
// digit form to render an ordinal ("e." for Dutch: 22 → "22e.").
func (p *Profile) OrdinalDigitSuffix() string { return p.ordDigitSuffix }

// MinOrdinalRunes returns the minimum rune length below which a word is
// never treated as an ordinal.
func (p *Profile) MinOrdinalRunes() int { return p.minOrdinalRunes }

// Months returns the month names in calendar order, or nil when the profile
// declares none. The returned slice is shared and must not be modified.
func (p *Profile) Months() []string { return p.months }

// DateLinkWords returns the words that may link the parts of a spelled-out
// date ("van" in "dertien van oktober 1999"), or nil when the profile
// declares none. The returned slice is shared and must not be modified.
func (p *Profile) DateLinkWords() []string { return p.dateLinkWords }

// TimeWords returns the clock-time introducer words ("om" for Dutch).
// The returned slice is shared and must not be modified.
func (p *Profile) TimeWords() []string { return p.timeWords }

// HourWords returns the words that may follow the hour in a clock phrase
// ("uur" for Dutch). The returned slice is shared and must not be modified.
func (p *Profile) HourWords() []string { return p.hourWords }
