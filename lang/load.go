// YAML profile loading and validation.
package lang

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/akpeker/text2num/internal/casefold"
)

// maxScale is the largest multiplier scale a profile may declare.
// It equals 10^18, the largest power of ten representable in int64.
const maxScale int64 = 1_000_000_000_000_000_000

// profileDoc is the YAML document structure of a language profile.
type profileDoc struct {
	Name        string           `yaml:"name"`
	Conjunction string           `yaml:"conjunction"`
	Decimal     decimalDoc       `yaml:"decimal"`
	Sign        map[string]int64 `yaml:"sign"`
	Zero        []string         `yaml:"zero"`
	Units       map[string]int64 `yaml:"units"`
	Teens       map[string]int64 `yaml:"teens"`
	Tens        map[string]int64 `yaml:"tens"`
	Hundred     []string         `yaml:"hundred"`
	Multipliers map[string]int64 `yaml:"multipliers"`
	Fusion      []fusionDoc      `yaml:"fusion"`
	NeverAlone  []string         `yaml:"never_alone"`
	NeverConj   []string         `yaml:"never_with_conjunction"`
	Ordinals    ordinalsDoc      `yaml:"ordinals"`
	Months      []string         `yaml:"months"`
	DateLinks   []string         `yaml:"date_link_words"`
	TimeWords   []string         `yaml:"time_words"`
	HourWords   []string         `yaml:"hour_words"`
}

type decimalDoc struct {
	Word   string `yaml:"word"`
	Symbol string `yaml:"symbol"`
}

// fusionDoc generates fused tens-unit entries: for every (unit, ten) pair
// the word unit+Glue+ten is added with value ten+unit. When UnitEndsWith is
// set the rule applies only to units with that ending ("ën" after a
// trailing "e" in Dutch).
type fusionDoc struct {
	Glue         string `yaml:"glue"`
	UnitEndsWith string `yaml:"unit_ends_with"`
}

type ordinalsDoc struct {
	MinLength        int               `yaml:"min_length"`
	DigitSuffix      string            `yaml:"digit_suffix"`
	Irregular        map[string]string `yaml:"irregular"`
	Suffixes         []suffixDoc       `yaml:"suffixes"`
	CompoundSuffixes []string          `yaml:"compound_suffixes"`
}

type suffixDoc struct {
	Suffix   string `yaml:"suffix"`
	TrimStem string `yaml:"trim_stem"`
}

// Load reads a YAML language profile from r.
// Any inconsistency in the document (a word mapped to two categories, an
// invalid multiplier scale, constraint words missing from the vocabulary)
// is a configuration error wrapping ErrConfig; a profile that fails to load
// must not be used.
func Load(r io.Reader) (*Profile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lang: reading profile: %w", err)
	}
	return LoadBytes(raw)
}

// LoadBytes is Load for in-memory profile data.
func LoadBytes(raw []byte) (*Profile, error) {
	var doc profileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("lang: %w: %v", ErrConfig, err)
	}
	return build(&doc)
}

// MustLoad is LoadBytes but panics on error.
// Intended for embedded, build-time-verified profiles.
func MustLoad(raw []byte) *Profile {
	p, err := LoadBytes(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func build(doc *profileDoc) (*Profile, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("lang: %w: missing profile name", ErrConfig)
	}
	if len(doc.Units) == 0 {
		return nil, fmt.Errorf("lang: %w: profile %q declares no units", ErrConfig, doc.Name)
	}

	p := &Profile{
		name:              doc.Name,
		words:             make(map[string]Token, len(doc.Units)+len(doc.Teens)+len(doc.Tens)+len(doc.Multipliers)+16),
		neverAlone:        make(map[string]struct{}, len(doc.NeverAlone)),
		neverWithConj:     make(map[string]struct{}, len(doc.NeverConj)),
		conjunction:       casefold.Fold(doc.Conjunction),
		decimalWord:       casefold.Fold(doc.Decimal.Word),
		decimalSym:        doc.Decimal.Symbol,
		irregularOrdinals: make(map[string]string, len(doc.Ordinals.Irregular)),
		ordDigitSuffix:    doc.Ordinals.DigitSuffix,
		minOrdinalRunes:   doc.Ordinals.MinLength,
		months:            doc.Months,
		dateLinkWords:     doc.DateLinks,
		timeWords:         doc.TimeWords,
		hourWords:         doc.HourWords,
	}

	if err := addAll(p, doc.Units, Unit); err != nil {
		return nil, err
	}
	if err := addAll(p, doc.Teens, Teen); err != nil {
		return nil, err
	}
	if err := addAll(p, doc.Tens, TensMultiple); err != nil {
		return nil, err
	}
	for _, w := range doc.Hundred {
		if err := add(p, w, Hundred, 100); err != nil {
			return nil, err
		}
	}
	for w, v := range doc.Multipliers {
		if err := validScale(v); err != nil {
			return nil, fmt.Errorf("lang: %w: multiplier %q: %v", ErrConfig, w, err)
		}
		if err := add(p, w, Multiplier, v); err != nil {
			return nil, err
		}
	}
	for w, v := range doc.Sign {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("lang: %w: sign word %q must map to 1 or -1, got %d", ErrConfig, w, v)
		}
		if err := add(p, w, Sign, v); err != nil {
			return nil, err
		}
	}
	for _, w := range doc.Zero {
		if err := add(p, w, Zero, 0); err != nil {
			return nil, err
		}
	}
	if p.conjunction != "" {
		if err := add(p, p.conjunction, Conjunction, 0); err != nil {
			return nil, err
		}
	}
	if p.decimalWord != "" {
		if err := add(p, p.decimalWord, DecimalSep, 0); err != nil {
			return nil, err
		}
	}

	if err := fuse(p, doc); err != nil {
		return nil, err
	}

	for _, w := range doc.NeverAlone {
		w = casefold.Fold(w)
		if _, ok := p.words[w]; !ok {
			return nil, fmt.Errorf("lang: %w: never_alone word %q not in vocabulary", ErrConfig, w)
		}
		p.neverAlone[w] = struct{}{}
	}
	for _, w := range doc.NeverConj {
		w = casefold.Fold(w)
		if _, ok := p.words[w]; !ok {
			return nil, fmt.Errorf("lang: %w: never_with_conjunction word %q not in vocabulary", ErrConfig, w)
		}
		p.neverWithConj[w] = struct{}{}
	}

	for ord, card := range doc.Ordinals.Irregular {
		card = casefold.Fold(card)
		if _, ok := p.words[card]; !ok {
			return nil, fmt.Errorf("lang: %w: irregular ordinal %q maps to unknown word %q", ErrConfig, ord, card)
		}
		p.irregularOrdinals[casefold.Fold(ord)] = card
	}
	for _, s := range doc.Ordinals.Suffixes {
		if s.Suffix == "" {
			return nil, fmt.Errorf("lang: %w: empty ordinal suffix", ErrConfig)
		}
		p.suffixRules = append(p.suffixRules, SuffixRule{Suffix: s.Suffix, TrimStem: s.TrimStem})
	}
	sortByLenDesc(p.suffixRules)
	p.ordSuffixes = append(p.ordSuffixes, doc.Ordinals.CompoundSuffixes...)
	sortStringsByLenDesc(p.ordSuffixes)

	p.vocab = make([]string, 0, len(p.words))
	for w := range p.words {
		p.vocab = append(p.vocab, w)
	}
	sortStringsByLenDesc(p.vocab)

	return p, nil
}

func addAll(p *Profile, m map[string]int64, cat Category) error {
	for w, v := range m {
		if err := add(p, w, cat, v); err != nil {
			return err
		}
	}
	return nil
}

// add inserts a word into the lexicon, rejecting cross-category duplicates.
// Re-adding an identical entry is a no-op so fusion rules may overlap.
func add(p *Profile, word string, cat Category, value int64) error {
	word = casefold.Fold(word)
	if word == "" {
		return fmt.Errorf("lang: %w: empty word in category %s", ErrConfig, cat)
	}
	if prev, ok := p.words[word]; ok {
		if prev.Cat == cat && prev.Value == value {
			return nil
		}
		return fmt.Errorf("lang: %w: word %q mapped to both %s(%d) and %s(%d)",
			ErrConfig, word, prev.Cat, prev.Value, cat, value)
	}
	p.words[word] = Token{Word: word, Cat: cat, Value: value}
	return nil
}

// fuse generates the FusedTensUnit vocabulary from the profile's fusion
// rules: unit+glue+ten with value ten+unit, for every applicable pair.
func fuse(p *Profile, doc *profileDoc) error {
	for _, rule := range doc.Fusion {
		if rule.Glue == "" {
			return fmt.Errorf("lang: %w: fusion rule with empty glue", ErrConfig)
		}
		glue := casefold.Fold(rule.Glue)
		ending := casefold.Fold(rule.UnitEndsWith)
		for uw, uv := range doc.Units {
			uw = casefold.Fold(uw)
			if ending != "" && !hasSuffix(uw, ending) {
				continue
			}
			for tw, tv := range doc.Tens {
				tw = casefold.Fold(tw)
				if err := add(p, uw+glue+tw, FusedTensUnit, tv+uv); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// validScale checks that a multiplier scale is a power of ten of at least
// one thousand and within int64 range.
func validScale(v int64) error {
	if v < 1000 || v > maxScale {
		return fmt.Errorf("scale %d out of range [1000, 10^18]", v)
	}
	for n := v; n > 1; n /= 10 {
		if n%10 != 0 {
			return fmt.Errorf("scale %d is not a power of ten", v)
		}
	}
	return nil
}

// sortStringsByLenDesc orders words longest first, equal lengths
// lexicographic. Two distinct equal-length words can never both prefix-match
// at the same position, so the secondary order only pins determinism.
func sortStringsByLenDesc(ws []string) {
	sort.SliceStable(ws, func(i, j int) bool {
		if len(ws[i]) != len(ws[j]) {
			return len(ws[i]) > len(ws[j])
		}
		return ws[i] < ws[j]
	})
}

func sortByLenDesc(rs []SuffixRule) {
	sort.SliceStable(rs, func(i, j int) bool {
		return len(rs[i].Suffix) > len(rs[j].Suffix)
	})
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
