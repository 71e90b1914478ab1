// Package segment splits glued compound number words into their atomic
// number-word parts.
//
// Dutch and German concatenate spoken numbers into single words:
// "tweeduizendvijfhonderddrieëntwintig" is one token carrying five number
// words. Split recovers the parts by greedy longest-match against the
// language profile's vocabulary, keeping unrecognized spans as literal
// tokens and fusing trailing ordinal suffixes onto the word they inflect
// ("tweeëntwintigste" stays one ordinal token).
//
// Splitting is lossless: concatenating the Text of every returned token
// reproduces the case-folded input exactly.
//
// A Splitter memoizes results in an LRU cache and is safe for concurrent
// use by multiple goroutines.
package segment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/akpeker/text2num/internal/casefold"
	"github.com/akpeker/text2num/lang"
)

// cacheSize is the maximum number of memoized splits. Speech transcripts
// repeat number words heavily; at ~100 bytes per entry this stays under 1MB.
const cacheSize = 8192

// Kind classifies a segment token.
type Kind int

const (
	Word    Kind = iota // known vocabulary word
	Ordinal             // vocabulary word with a fused ordinal suffix
	Literal             // unrecognized span, to be passed through as text
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Ordinal:
		return "Ordinal"
	case Literal:
		return "Literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one segment of a split compound word.
type Token struct {
	Text string
	Kind Kind
}

// String returns a debug representation, e.g. Word("twintig").
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Splitter splits compound number words against one language profile.
type Splitter struct {
	p     *lang.Profile
	cache *lru.Cache[string, []Token]
}

// New returns a Splitter for the given profile with memoization enabled.
func New(p *lang.Profile) *Splitter {
	cache, _ := lru.New[string, []Token](cacheSize)
	return &Splitter{p: p, cache: cache}
}

// Split splits one whitespace-delimited token into number words and literal
// spans. The input is case-folded first.
// The returned slice may be served from a shared cache and must not be
// modified by the caller.
func (s *Splitter) Split(word string) []Token {
	folded := casefold.Fold(word)
	if toks, ok := s.cache.Get(folded); ok {
		return toks
	}
	toks := split(s.p, folded)
	s.cache.Add(folded, toks)
	return toks
}

// Tokens splits word and resolves every part in the profile's lexicon.
// Reports false when any part is a literal span or carries a fused ordinal
// suffix, i.e. when the word is not purely glued number words.
func (s *Splitter) Tokens(word string) ([]lang.Token, bool) {
	segs := s.Split(word)
	if len(segs) == 0 {
		return nil, false
	}
	toks := make([]lang.Token, 0, len(segs))
	for _, seg := range segs {
		if seg.Kind != Word {
			return nil, false
		}
		t, ok := s.p.Lookup(seg.Text)
		if !ok {
			return nil, false
		}
		toks = append(toks, t)
	}
	return toks, true
}

// split is the uncached greedy longest-match scan.
func split(p *lang.Profile, text string) []Token {
	if text == "" {
		return nil
	}

	var (
		out     []Token
		literal strings.Builder
		vocab   = p.Vocabulary()
	)

	flush := func() {
		if literal.Len() > 0 {
			out = append(out, Token{Text: literal.String(), Kind: Literal})
			literal.Reset()
		}
	}

	for len(text) > 0 {
		match := ""
		for _, w := range vocab {
			if strings.HasPrefix(text, w) {
				match = w
				break
			}
		}

		if match != "" {
			flush()
			rest := text[len(match):]
			// A directly attached ordinal suffix extends the match into
			// one ordinal token ("twintig" + "ste").
			if sfx := ordinalSuffixAt(p, rest); sfx != "" {
				out = append(out, Token{Text: match + sfx, Kind: Ordinal})
				text = rest[len(sfx):]
			} else {
				out = append(out, Token{Text: match, Kind: Word})
				text = rest
			}
			continue
		}

		// An ordinal suffix directly following an emitted word fuses onto
		// it instead of becoming a literal span. Requires an empty literal
		// buffer: the suffix must touch the word it inflects.
		if literal.Len() == 0 && len(out) > 0 && out[len(out)-1].Kind != Literal {
			if sfx := ordinalSuffixAt(p, text); sfx != "" {
				last := &out[len(out)-1]
				last.Text += sfx
				last.Kind = Ordinal
				text = text[len(sfx):]
				continue
			}
		}

		// No match at this position: buffer one rune and advance.
		_, size := utf8.DecodeRuneInString(text)
		literal.WriteString(text[:size])
		text = text[size:]
	}

	flush()
	return out
}

// ordinalSuffixAt returns the compound ordinal suffix starting at s, or ""
// when none applies. The suffix must end the token (or be followed by a
// space), mirroring the end-anchored suffix rule of the source languages.
func ordinalSuffixAt(p *lang.Profile, s string) string {
	if s == "" {
		return ""
	}
	for _, sfx := range p.CompoundOrdinalSuffixes() {
		if !strings.HasPrefix(s, sfx) {
			continue
		}
		if len(s) == len(sfx) || s[len(sfx)] == ' ' {
			return sfx
		}
	}
	return ""
}
