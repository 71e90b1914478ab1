// Package rewrite post-processes composed number text.
//
// Two independent layers are provided:
//
//   - DecimalMerger repairs decimal fractions that a first composition pass
//     emitted as separate short numeric tokens ("3.1 2 3" → "3.123").
//   - Normalizer rewrites structured spans — currency amounts, calendar
//     dates, and clock times — into canonical symbol form ("3 euros con 50
//     céntimos" → "€3.50", "13 oktober 1999" → "13/10/1999", "om 8 uur 30"
//     → "om 8:30").
//
// Span matching is first-match-wins, left to right, with the passes applied
// in the fixed order currency → date → clock. Candidate spans are assumed
// not to overlap; behavior on overlapping candidates is unspecified.
//
// All types are safe for concurrent use by multiple goroutines once built.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/akpeker/text2num/internal/casefold"
)

// Options selects which span kinds a Normalizer rewrites and supplies the
// language-specific word lists the patterns are built from.
type Options struct {
	Currency bool // rewrite currency amounts
	Dates    bool // rewrite calendar dates
	Times    bool // rewrite clock times

	// Months lists month names in calendar order. Required for rewriting
	// dates with spelled-out months; numeric day-first dates work without.
	Months []string

	// MonthAsName renders the month as its name ("13 oktober 1999") instead
	// of a number ("13/10/1999"). Requires Months.
	MonthAsName bool

	// TimeWords are the clock-time introducer words ("om", "a las").
	// Required for the clock pass.
	TimeWords []string

	// HourWords optionally follow the hour ("uur" in "om 8 uur 30").
	HourWords []string

	// DateLinkWords may appear between the day, month name, and year of a
	// spelled-out date ("dertien van oktober 1999"). Optional.
	DateLinkWords []string
}

// Normalizer applies the configured span-rewriting passes.
type Normalizer struct {
	opts Options

	currRe     *regexp.Regexp
	dateNameRe *regexp.Regexp
	dateNumRe  *regexp.Regexp
	clockRe    *regexp.Regexp

	monthNum map[string]int // folded month name → 1-based month
}

// NewNormalizer builds a Normalizer for the given options.
// Returns an error when an enabled pass is missing its word lists.
func NewNormalizer(opts Options) (*Normalizer, error) {
	n := &Normalizer{opts: opts}

	if opts.Currency {
		n.currRe = compileCurrency()
	}

	if opts.Dates {
		n.dateNumRe = regexp.MustCompile(`\b(\d{1,2}) (\d{1,2}) (\d{4})\b`)
		if len(opts.Months) > 0 {
			n.monthNum = make(map[string]int, len(opts.Months))
			alts := make([]string, len(opts.Months))
			for i, m := range opts.Months {
				n.monthNum[casefold.Fold(m)] = i + 1
				alts[i] = regexp.QuoteMeta(m)
			}
			link := ""
			if len(opts.DateLinkWords) > 0 {
				links := make([]string, len(opts.DateLinkWords))
				for i, w := range opts.DateLinkWords {
					links[i] = regexp.QuoteMeta(w)
				}
				link = `(?: (?:` + strings.Join(links, "|") + `))?`
			}
			re, err := regexp.Compile(
				`(?i)\b(\d{1,2})` + link + ` (` + strings.Join(alts, "|") + `)` + link + ` (\d{4})\b`)
			if err != nil {
				return nil, fmt.Errorf("rewrite: compiling date pattern: %w", err)
			}
			n.dateNameRe = re
		} else if opts.MonthAsName {
			return nil, fmt.Errorf("rewrite: MonthAsName requires Months")
		}
	}

	if opts.Times {
		if len(opts.TimeWords) == 0 {
			return nil, fmt.Errorf("rewrite: Times requires TimeWords")
		}
		re, err := compileClock(opts.TimeWords, opts.HourWords)
		if err != nil {
			return nil, fmt.Errorf("rewrite: compiling clock pattern: %w", err)
		}
		n.clockRe = re
	}

	return n, nil
}

// Apply rewrites every enabled span kind in text and returns the result.
// Text outside matched spans is preserved byte-for-byte.
func (n *Normalizer) Apply(text string) string {
	if text == "" {
		return text
	}
	if n.currRe != nil {
		text = n.rewriteCurrency(text)
	}
	if n.dateNameRe != nil || n.dateNumRe != nil {
		text = n.rewriteDates(text)
	}
	if n.clockRe != nil {
		text = n.rewriteClock(text)
	}
	return text
}
