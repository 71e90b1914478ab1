// Clock-time span rewriting.
package rewrite

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxHour   = 24
	maxMinute = 59
)

// Capture group indices of the clock pattern (1-based submatch positions).
const (
	clkIntro  = 1
	clkHour   = 2
	clkMarker = 3
	clkMinute = 4
)

// compileClock builds the clock span pattern: introducer word + hour +
// optional hour marker ("uur") + optional "and minutes" clause.
func compileClock(timeWords, hourWords []string) (*regexp.Regexp, error) {
	intro := make([]string, len(timeWords))
	for i, w := range timeWords {
		intro[i] = regexp.QuoteMeta(w)
	}
	// The marker group must exist even without hour words to keep the
	// capture numbering stable; \b\B can never match, so the group stays
	// unparticipating.
	marker := `(\b\B)?`
	if len(hourWords) > 0 {
		quoted := make([]string, len(hourWords))
		for i, w := range hourWords {
			quoted[i] = regexp.QuoteMeta(w)
		}
		marker = `(?: (` + strings.Join(quoted, "|") + `))?`
	}
	return regexp.Compile(
		`(?i)\b(` + strings.Join(intro, "|") + `) (\d{1,2})` + marker +
			`(?: (?:en|y))?(?: (\d{1,2}))?\b`)
}

// rewriteClock replaces clock spans with "<introducer> H:MM", the minute
// zero-padded to two digits and defaulting to :00.
//
// A bare "introducer + number" with neither hour marker nor minutes is
// rewritten only when nothing word-like follows, so quantity phrases such
// as "om 3 dagen" stay untouched.
func (n *Normalizer) rewriteClock(text string) string {
	matches := n.clockRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0

	for _, m := range matches {
		intro := text[m[clkIntro*2]:m[clkIntro*2+1]]
		hourStr := text[m[clkHour*2]:m[clkHour*2+1]]

		hour, err := strconv.Atoi(hourStr)
		if err != nil || hour > maxHour {
			continue
		}

		hasMarker := m[clkMarker*2] != -1
		minute := 0
		hasMinute := m[clkMinute*2] != -1
		if hasMinute {
			minute, err = strconv.Atoi(text[m[clkMinute*2]:m[clkMinute*2+1]])
			if err != nil || minute > maxMinute {
				continue
			}
		}

		// Already in H:MM form, or a bare quantity ("om 3 dagen").
		if m[1] < len(text) && text[m[1]] == ':' {
			continue
		}
		if !hasMarker && !hasMinute && followedByWord(text, m[1]) {
			continue
		}

		b.WriteString(text[last:m[0]])
		b.WriteString(intro)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(hour))
		b.WriteByte(':')
		if minute < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.Itoa(minute))
		last = m[1]
	}

	b.WriteString(text[last:])
	return b.String()
}

// followedByWord reports whether a letter or digit starts within the two
// bytes after offset end (i.e. the span is directly followed by more words).
func followedByWord(s string, end int) bool {
	rest := s[end:]
	rest = strings.TrimPrefix(rest, " ")
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
