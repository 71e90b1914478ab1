// Package pipeline wires the engine packages into end-to-end text
// normalization: number words in running text become digits, ordinal words
// become their digit form, and the rewrite passes canonicalize decimals and
// structured spans.
//
//	"ik heb tweeëntwintig appels" → "ik heb 22 appels"
//
// The pipeline scans words, groups consecutive composable number words into
// phrases, and composes each phrase independently. A phrase that fails to
// compose is left untouched in the output; failures never leak across phrase
// boundaries. Non-word text is preserved byte-for-byte.
//
// A Pipeline is safe for concurrent use by multiple goroutines.
package pipeline

import (
	"strings"
	"unicode"

	"github.com/akpeker/text2num/compose"
	"github.com/akpeker/text2num/lang"
	"github.com/akpeker/text2num/ordinal"
	"github.com/akpeker/text2num/rewrite"
	"github.com/akpeker/text2num/segment"
)

// Default decimal-merge limits (see rewrite.NewDecimalMerger).
const (
	defaultMaxFraction = 40
	defaultMaxGroup    = 2
)

// Options configures the optional pipeline stages. The zero value enables
// word composition, ordinal conversion, and decimal merging only.
type Options struct {
	Currency bool // rewrite currency amounts to symbol form
	Dates    bool // rewrite calendar-date spans
	Times    bool // rewrite clock-time spans

	// MonthAsName renders rewritten dates with the month name instead of
	// day/month/year digits. Requires a profile with month names.
	MonthAsName bool

	// MaxFractionDigits and MaxGroupDigits bound the decimal merge stage;
	// zero means the defaults (40 and 2).
	MaxFractionDigits int
	MaxGroupDigits    int
}

// Pipeline runs the full normalization flow for one language profile.
type Pipeline struct {
	p      *lang.Profile
	sp     *segment.Splitter
	conv   *ordinal.Converter
	merger *rewrite.DecimalMerger
	norm   *rewrite.Normalizer
}

// New builds a Pipeline for the given profile.
// Returns an error when an enabled span pass is missing its word lists in
// the profile (Times without time words, MonthAsName without months).
func New(p *lang.Profile, opts Options) (*Pipeline, error) {
	maxFraction := opts.MaxFractionDigits
	if maxFraction == 0 {
		maxFraction = defaultMaxFraction
	}
	maxGroup := opts.MaxGroupDigits
	if maxGroup == 0 {
		maxGroup = defaultMaxGroup
	}
	merger, err := rewrite.NewDecimalMerger(p.DecimalSymbol(), maxFraction, maxGroup)
	if err != nil {
		return nil, err
	}

	norm, err := rewrite.NewNormalizer(rewrite.Options{
		Currency:      opts.Currency,
		Dates:         opts.Dates,
		Times:         opts.Times,
		Months:        p.Months(),
		MonthAsName:   opts.MonthAsName,
		DateLinkWords: p.DateLinkWords(),
		TimeWords:     p.TimeWords(),
		HourWords:     p.HourWords(),
	})
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		p:      p,
		sp:     segment.New(p),
		conv:   ordinal.New(p),
		merger: merger,
		norm:   norm,
	}, nil
}

// Normalize rewrites every number phrase in text to digit form and applies
// the configured rewrite stages. Text outside rewritten spans is preserved
// byte-for-byte.
func (pl *Pipeline) Normalize(text string) string {
	if text == "" {
		return text
	}
	out := pl.composeWords(text)
	out = pl.mergeDecimals(out)
	return pl.norm.Apply(out)
}

// scanTok is one scanner token: a maximal run of letters and digits (a
// word) or of anything else (a separator).
type scanTok struct {
	text string
	word bool
}

// scan splits text into alternating word and separator runs.
// Concatenating the runs reproduces the input exactly.
func scan(text string) []scanTok {
	var (
		out   []scanTok
		start int
		word  bool
	)
	for i, r := range text {
		w := unicode.IsLetter(r) || unicode.IsDigit(r)
		if i == 0 {
			word = w
			continue
		}
		if w != word {
			out = append(out, scanTok{text: text[start:i], word: word})
			start, word = i, w
		}
	}
	if start < len(text) {
		out = append(out, scanTok{text: text[start:], word: word})
	}
	return out
}

// phrase accumulates consecutive composable words and the running state the
// extension rules need.
type phrase struct {
	words     []string // original surface forms, single-space separated
	toks      []lang.Token
	lastScale int64 // scale of the last multiplier token, 0 if none
	inDecimal bool
}

func (ph *phrase) open() bool { return len(ph.words) > 0 }

func (ph *phrase) add(word string, toks []lang.Token) {
	ph.words = append(ph.words, word)
	for _, t := range toks {
		ph.toks = append(ph.toks, t)
		switch t.Cat {
		case lang.Multiplier:
			ph.lastScale = t.Value
		case lang.DecimalSep:
			ph.inDecimal = true
		}
	}
}

func (ph *phrase) reset() {
	ph.words = ph.words[:0]
	ph.toks = ph.toks[:0]
	ph.lastScale = 0
	ph.inDecimal = false
}

// composeWords is the first pipeline stage: it replaces number-word phrases
// and ordinal words with their digit forms.
func (pl *Pipeline) composeWords(text string) string {
	scanned := scan(text)

	var b strings.Builder
	b.Grow(len(text))

	var (
		ph          phrase
		afterNumber bool // the last emitted span was a composed number
	)
	flush := func() {
		if !ph.open() {
			return
		}
		n, err := compose.ComposeTokens(pl.p, ph.toks)
		if err != nil {
			// Error scoping: the failing phrase passes through as-is.
			b.WriteString(strings.Join(ph.words, " "))
		} else {
			b.WriteString(n.Format(pl.p.DecimalSymbol()))
		}
		afterNumber = err == nil
		ph.reset()
	}

	for i := 0; i < len(scanned); i++ {
		tok := scanned[i]

		if !tok.word {
			// Only a single space continues a phrase; any other separator
			// closes it. The space between joined words is consumed.
			if tok.text == " " && ph.open() && i+1 < len(scanned) &&
				pl.extends(&ph, scanned, i+1) {
				continue
			}
			flush()
			if tok.text != " " {
				afterNumber = false
			}
			b.WriteString(tok.text)
			continue
		}

		if card, ok := pl.conv.ToCardinal(tok.text); ok {
			// Ordinal words form single-word phrases in digit form.
			flush()
			b.WriteString(pl.renderOrdinal(tok.text, card))
			afterNumber = true
			continue
		}

		toks, ok := pl.sp.Tokens(tok.text)
		if !ok || (len(toks) == 1 && toks[0].Cat == lang.Sign && afterNumber) {
			// A sign word right after a number is arithmetic, not a sign
			// prefix: "twee plus twee" stays "2 plus 2".
			flush()
			b.WriteString(tok.text)
			afterNumber = false
			continue
		}
		// Either continues the open phrase (the preceding space already
		// approved the join) or starts a fresh one.
		ph.add(tok.text, toks)
	}

	flush()
	return b.String()
}

// renderOrdinal composes the cardinal form of an ordinal word and renders
// its digit form ("tweeëntwintigste" → "22e."). The original word is
// returned when the cardinal does not compose.
func (pl *Pipeline) renderOrdinal(word, card string) string {
	toks, ok := pl.sp.Tokens(card)
	if !ok {
		return word
	}
	// A single value token is its own number; this also sidesteps the
	// never-alone rule for "eerste" → "één".
	if len(toks) == 1 && valueCat(toks[0].Cat) {
		return pl.conv.FromNumber(toks[0].Value)
	}
	n, err := compose.ComposeTokens(pl.p, toks)
	if err != nil || n.IsDecimal() {
		return word
	}
	return pl.conv.FromNumber(n.Int64())
}

// extends reports whether the word at scanned[i] continues the open phrase.
// The decision looks at the phrase state and the word's first token; the
// composer validates the full sequence when the phrase closes.
func (pl *Pipeline) extends(ph *phrase, scanned []scanTok, i int) bool {
	tok := scanned[i]
	if !tok.word {
		return false
	}
	if _, isOrd := pl.conv.ToCardinal(tok.text); isOrd {
		return false
	}
	toks, ok := pl.sp.Tokens(tok.text)
	if !ok {
		return false
	}

	cur := toks[0]
	prev := ph.toks[len(ph.toks)-1]

	// Inside a fraction every digit-valued word appends more digits.
	if ph.inDecimal {
		switch cur.Cat {
		case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit, lang.Zero:
			return true
		}
		return false
	}

	// A lone sign word binds to whatever number follows.
	if prev.Cat == lang.Sign {
		return valueCat(cur.Cat)
	}

	switch cur.Cat {
	case lang.Unit:
		// "tachtig vijf" → 85, "twee honderd vijf" → 205.
		return prev.Cat == lang.TensMultiple || prev.Cat == lang.Hundred ||
			prev.Cat == lang.Multiplier
	case lang.Teen, lang.TensMultiple, lang.FusedTensUnit:
		return prev.Cat == lang.Hundred || prev.Cat == lang.Multiplier
	case lang.Hundred:
		switch prev.Cat {
		case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit, lang.Multiplier:
			return true
		}
		return false
	case lang.Multiplier:
		if prev.Cat == lang.Multiplier || prev.Cat == lang.Zero {
			return false
		}
		// An ascending multiplier starts a new number instead of failing
		// the whole phrase: "duizend miljoen" → "1000 1000000".
		return ph.lastScale == 0 || cur.Value < ph.lastScale
	case lang.DecimalSep:
		// Joins only with fractional digits ahead, so a trailing separator
		// word ("drie komma, dus") never drags the phrase into an error.
		if ph.inDecimal || !valueCat(prev.Cat) {
			return false
		}
		return i+2 < len(scanned) && scanned[i+1].text == " " &&
			pl.startsFraction(scanned[i+2])
	}
	// Sign, Conjunction, Zero words never continue a phrase.
	return false
}

// startsFraction reports whether a scanner token is a word whose first
// vocabulary token can open the fractional digits of a decimal.
func (pl *Pipeline) startsFraction(tok scanTok) bool {
	if !tok.word {
		return false
	}
	toks, ok := pl.sp.Tokens(tok.text)
	if !ok {
		return false
	}
	switch toks[0].Cat {
	case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit, lang.Zero:
		return true
	}
	return false
}

// valueCat reports whether a category carries digits of the whole part.
func valueCat(c lang.Category) bool {
	switch c {
	case lang.Unit, lang.Teen, lang.TensMultiple, lang.FusedTensUnit,
		lang.Hundred, lang.Multiplier, lang.Zero:
		return true
	}
	return false
}

// mergeDecimals applies the decimal merge stage over the space-separated
// view of the text. Runs of other whitespace stay inside their tokens and
// pass through unchanged.
func (pl *Pipeline) mergeDecimals(text string) string {
	if !strings.Contains(text, pl.p.DecimalSymbol()) {
		return text
	}
	tokens := strings.Split(text, " ")
	merged := pl.merger.Merge(tokens)
	if len(merged) == len(tokens) {
		return text
	}
	return strings.Join(merged, " ")
}
