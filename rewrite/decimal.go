// Decimal-fraction merging over a composed token stream.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// DecimalMerger reassembles decimal numbers whose fractional digits were
// spoken one-by-one or in small groups and therefore composed as separate
// short numeric tokens: "3.1 2 3" → "3.123".
//
// The merger is a two-state machine (idle / inside a decimal). A token of
// the form digits-separator-digits opens a decimal; while inside, short
// all-digit tokens are appended to the fractional part until the configured
// maximum is reached or a non-matching token ends the decimal. Merging an
// already-merged stream returns it unchanged.
//
// A DecimalMerger is safe for concurrent use by multiple goroutines.
type DecimalMerger struct {
	sep         string
	maxFraction int
	decRe       *regexp.Regexp
	grpRe       *regexp.Regexp
}

// NewDecimalMerger returns a merger for the given written decimal separator.
// maxFraction caps the total number of fractional digits a decimal may
// collect (a person may say an unrelated number after a decimal); maxGroup
// caps the digit-count of a single spoken group (one or two in practice).
func NewDecimalMerger(sep string, maxFraction, maxGroup int) (*DecimalMerger, error) {
	if sep == "" {
		return nil, fmt.Errorf("rewrite: empty decimal separator")
	}
	if maxFraction < 1 || maxGroup < 1 {
		return nil, fmt.Errorf("rewrite: non-positive merge limits (%d, %d)", maxFraction, maxGroup)
	}
	decRe, err := regexp.Compile(fmt.Sprintf(`^\d+%s\d{1,%d}$`, regexp.QuoteMeta(sep), maxGroup))
	if err != nil {
		return nil, fmt.Errorf("rewrite: compiling decimal pattern: %w", err)
	}
	grpRe, err := regexp.Compile(fmt.Sprintf(`^\d{1,%d}$`, maxGroup))
	if err != nil {
		return nil, fmt.Errorf("rewrite: compiling group pattern: %w", err)
	}
	return &DecimalMerger{sep: sep, maxFraction: maxFraction, decRe: decRe, grpRe: grpRe}, nil
}

// Merge joins split decimal fractions in tokens.
// The input slice is not modified.
func (m *DecimalMerger) Merge(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	inDecimal := false
	decimal := ""

	for _, tok := range tokens {
		switch {
		case m.decRe.MatchString(tok):
			// A new decimal while one is buffered means the previous ended.
			if inDecimal {
				out = append(out, decimal)
			}
			inDecimal = true
			decimal = tok

		case inDecimal:
			if m.grpRe.MatchString(tok) && len(tok)+m.fractionLen(decimal) <= m.maxFraction {
				decimal += tok
			} else {
				inDecimal = false
				out = append(out, decimal, tok)
			}

		default:
			out = append(out, tok)
		}
	}

	if inDecimal {
		out = append(out, decimal)
	}
	return out
}

// fractionLen returns the number of digits after the separator in decimal.
func (m *DecimalMerger) fractionLen(decimal string) int {
	_, frac, ok := strings.Cut(decimal, m.sep)
	if !ok {
		return 0
	}
	return len(frac)
}
