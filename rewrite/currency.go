// Currency span rewriting.
package rewrite

import (
	"regexp"
	"strings"
)

// Currency word lists. The "?"-suffixed forms cover singular and plural;
// the accent-less spellings cover transcripts without diacritics. "con" in
// the whole-word list admits the bare "uno con cincuenta" reading.
var (
	currencyWhole    = []string{"euros?", "dollars?", "dólare?s?", "dolare?s?", "con"}
	currencyFraction = []string{"céntimos?", "centimos?", "centavos?"}
)

// oneWords maps spelled-out "one" amount words to their digit.
var oneWords = map[string]string{"un": "1", "uno": "1", "una": "1"}

// compileCurrency builds the currency span pattern:
// amount + currency word + optional connector + optional fraction + optional
// fraction unit.
func compileCurrency() *regexp.Regexp {
	fracAlt := make([]string, len(currencyFraction))
	for i, f := range currencyFraction {
		fracAlt[i] = " " + f
	}
	return regexp.MustCompile(
		`(?i)\b(\d+|un[oa]?) (` + strings.Join(currencyWhole, "|") + `)` +
			`( con| y con| y)?( \d{1,3}| un[oa]?)?(` + strings.Join(fracAlt, "|") + `)?`)
}

// rewriteCurrency replaces each currency span with <symbol><whole>.<fraction>,
// the fraction zero-padded to two digits.
func (n *Normalizer) rewriteCurrency(text string) string {
	return n.currRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := n.currRe.FindStringSubmatch(m)

		whole := strings.ToLower(strings.TrimSpace(sub[1]))
		if d, ok := oneWords[whole]; ok {
			whole = d
		}

		fract := "00"
		if sub[4] != "" {
			fract = strings.ToLower(strings.TrimSpace(sub[4]))
			if d, ok := oneWords[fract]; ok {
				fract = d
			}
		}

		sym := "$"
		if strings.HasPrefix(strings.ToLower(sub[2]), "eu") {
			sym = "€"
		}

		return sym + whole + "." + padFraction(fract)
	})
}

// padFraction left-pads a fraction to two digits ("5" → "05").
func padFraction(f string) string {
	if len(f) == 1 {
		return "0" + f
	}
	return f
}
