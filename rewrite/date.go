// Calendar-date span rewriting.
package rewrite

import (
	"strconv"
	"time"

	"github.com/akpeker/text2num/internal/casefold"
)

// Year bounds accepted in date spans.
const (
	minYear = 1000
	maxYear = 2999
)

// rewriteDates rewrites day-month-year spans to day/month/year form
// (or to the month-name form when configured). The month-name pattern runs
// first so its day/year context is not consumed by the numeric pattern.
func (n *Normalizer) rewriteDates(text string) string {
	if n.dateNameRe != nil {
		text = n.dateNameRe.ReplaceAllStringFunc(text, func(m string) string {
			sub := n.dateNameRe.FindStringSubmatch(m)
			day, month, year, ok := n.dateParts(sub[1], "", sub[3])
			if !ok {
				return m
			}
			month = n.monthNum[casefold.Fold(sub[2])]
			if !validDate(day, month, year) {
				return m
			}
			if n.opts.MonthAsName {
				return m
			}
			return formatNumericDate(day, month, year)
		})
	}
	if n.dateNumRe != nil {
		text = n.dateNumRe.ReplaceAllStringFunc(text, func(m string) string {
			sub := n.dateNumRe.FindStringSubmatch(m)
			day, month, year, ok := n.dateParts(sub[1], sub[2], sub[3])
			if !ok || !validDate(day, month, year) {
				return m
			}
			if n.opts.MonthAsName {
				return strconv.Itoa(day) + " " + n.opts.Months[month-1] + " " + strconv.Itoa(year)
			}
			return formatNumericDate(day, month, year)
		})
	}
	return text
}

// dateParts converts the day, month, and year capture strings to integers.
// An empty month string yields month 0 (resolved by the caller).
func (n *Normalizer) dateParts(dayStr, monthStr, yearStr string) (day, month, year int, ok bool) {
	var err error
	day, err = strconv.Atoi(dayStr)
	if err != nil {
		return 0, 0, 0, false
	}
	if monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil {
			return 0, 0, 0, false
		}
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// validDate checks ranges and rejects impossible calendar dates (Feb 30):
// time.Date normalizes overflows, so a mismatch means the date does not exist.
func validDate(day, month, year int) bool {
	if day < 1 || day > 31 || month < 1 || month > 12 || year < minYear || year > maxYear {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && t.Month() == time.Month(month)
}

func formatNumericDate(day, month, year int) string {
	return strconv.Itoa(day) + "/" + strconv.Itoa(month) + "/" + strconv.Itoa(year)
}
