// Package ordinal converts between ordinal and cardinal number words.
//
// ToCardinal strips an ordinal word down to its cardinal form using the
// profile's rules: the irregular map wins ("eerste" → "één"), then suffix
// rules apply longest first with a lexicon membership test on the stripped
// stem, re-segmenting compound stems ("tweeduizendste" → "tweeduizend").
// Words the rules cannot account for are reported as not ordinals and must
// be treated as ordinary text by the caller.
//
// FromNumber renders the digit form of an ordinal by appending the
// profile's fixed literal suffix (22 → "22e." for Dutch).
//
// A Converter is safe for concurrent use by multiple goroutines.
package ordinal

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akpeker/text2num/internal/casefold"
	"github.com/akpeker/text2num/lang"
	"github.com/akpeker/text2num/segment"
)

// Converter applies one profile's ordinal rules.
type Converter struct {
	p  *lang.Profile
	sp *segment.Splitter
}

// New returns a Converter for the given profile.
func New(p *lang.Profile) *Converter {
	return &Converter{p: p, sp: segment.New(p)}
}

// ToCardinal returns the cardinal form of an ordinal word.
// The second result is false when the word is not an ordinal; such words
// are a fixed point (feeding them through again changes nothing).
func (c *Converter) ToCardinal(word string) (string, bool) {
	w := casefold.Fold(word)
	if utf8.RuneCountInString(w) < c.p.MinOrdinalRunes() {
		return "", false
	}

	if card, ok := c.p.IrregularOrdinal(w); ok {
		return card, true
	}

	for _, rule := range c.p.SuffixRules() {
		if !strings.HasSuffix(w, rule.Suffix) {
			continue
		}
		stem := strings.TrimSuffix(w, rule.Suffix)
		if stem == "" {
			continue
		}

		if _, ok := c.p.Lookup(stem); ok {
			return stem, true
		}

		// Drop the linking character and retry ("twintigs" → "twintig").
		if rule.TrimStem != "" && strings.HasSuffix(stem, rule.TrimStem) {
			trimmed := strings.TrimSuffix(stem, rule.TrimStem)
			if _, ok := c.p.Lookup(trimmed); ok {
				return trimmed, true
			}
		}

		// The stem may be a glued compound ("tweeduizend"); accept it when
		// re-segmentation recognizes every part.
		if joined, ok := c.splitStem(stem); ok {
			return joined, true
		}
	}

	return "", false
}

// splitStem re-segments a compound stem and rejoins it when every part is a
// known number word.
func (c *Converter) splitStem(stem string) (string, bool) {
	toks := c.sp.Split(stem)
	if len(toks) < 2 {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(stem))
	for _, t := range toks {
		if t.Kind != segment.Word {
			return "", false
		}
		b.WriteString(t.Text)
	}
	return b.String(), true
}

// FromNumber renders n as an ordinal in digit form by appending the
// profile's ordinal digit suffix: 22 → "22e." for Dutch.
func (c *Converter) FromNumber(n int64) string {
	return strconv.FormatInt(n, 10) + c.p.OrdinalDigitSuffix()
}
