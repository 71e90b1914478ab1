// Tests for the Dutch profile and lexicon lookup.
package lang

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDutchLookup(t *testing.T) {
	t.Parallel()
	p := Dutch()

	cases := []struct {
		word  string
		cat   Category
		value int64
	}{
		{"nul", Zero, 0},
		{"een", Unit, 1},
		{"één", Unit, 1},
		{"negen", Unit, 9},
		{"tien", Teen, 10},
		{"negentien", Teen, 19},
		{"twintig", TensMultiple, 20},
		{"negentig", TensMultiple, 90},
		{"honderd", Hundred, 100},
		{"duizend", Multiplier, 1000},
		{"miljoen", Multiplier, 1_000_000},
		{"triljoen", Multiplier, 1_000_000_000_000_000_000},
		{"plus", Sign, 1},
		{"minus", Sign, -1},
		{"min", Sign, -1},
		{"en", Conjunction, 0},
		{"komma", DecimalSep, 0},
		// Generated fused forms.
		{"eenentwintig", FusedTensUnit, 21},
		{"tweeëntwintig", FusedTensUnit, 22},
		{"drieëndertig", FusedTensUnit, 33},
		{"negenennegentig", FusedTensUnit, 99},
		// Case folding applies before lookup.
		{"Twintig", TensMultiple, 20},
		{"ÉÉN", Unit, 1},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			tok, ok := p.Lookup(tt.word)
			if !ok {
				t.Fatalf("Lookup(%q): not found", tt.word)
			}
			if tok.Cat != tt.cat || tok.Value != tt.value {
				t.Errorf("Lookup(%q) = %s(%d), want %s(%d)",
					tt.word, tok.Cat, tok.Value, tt.cat, tt.value)
			}
		})
	}
}

func TestDutchUnknownWords(t *testing.T) {
	t.Parallel()
	p := Dutch()

	for _, w := range []string{"", "hond", "twintigen", "honderdduizend", "triljard"} {
		if tok, ok := p.Lookup(w); ok {
			t.Errorf("Lookup(%q) = %v, want not found", w, tok)
		}
	}
}

func TestDutchConstraints(t *testing.T) {
	t.Parallel()
	p := Dutch()

	if !p.NeverAlone("één") {
		t.Error(`NeverAlone("één") = false, want true`)
	}
	if p.NeverAlone("een") {
		t.Error(`NeverAlone("een") = true, want false`)
	}
	if !p.NeverWithConjunction("één") {
		t.Error(`NeverWithConjunction("één") = false, want true`)
	}
	if p.Conjunction() != "en" {
		t.Errorf("Conjunction() = %q, want %q", p.Conjunction(), "en")
	}
	if p.DecimalWord() != "komma" || p.DecimalSymbol() != "," {
		t.Errorf("decimal = %q/%q, want komma/,", p.DecimalWord(), p.DecimalSymbol())
	}
}

// TestVocabularyOrder verifies the longest-first order the greedy segmenter
// depends on.
func TestVocabularyOrder(t *testing.T) {
	t.Parallel()
	vocab := Dutch().Vocabulary()
	if len(vocab) == 0 {
		t.Fatal("empty vocabulary")
	}
	for i := 1; i < len(vocab); i++ {
		if len(vocab[i-1]) < len(vocab[i]) {
			t.Fatalf("vocabulary not sorted by descending length: %q before %q",
				vocab[i-1], vocab[i])
		}
	}
}

func TestDutchOrdinalRules(t *testing.T) {
	t.Parallel()
	p := Dutch()

	if card, ok := p.IrregularOrdinal("eerste"); !ok || card != "één" {
		t.Errorf(`IrregularOrdinal("eerste") = %q, %v, want "één", true`, card, ok)
	}
	if _, ok := p.IrregularOrdinal("tiende"); ok {
		t.Error(`IrregularOrdinal("tiende") matched, want no match`)
	}
	if p.OrdinalDigitSuffix() != "e." {
		t.Errorf("OrdinalDigitSuffix() = %q, want %q", p.OrdinalDigitSuffix(), "e.")
	}
	if p.MinOrdinalRunes() != 5 {
		t.Errorf("MinOrdinalRunes() = %d, want 5", p.MinOrdinalRunes())
	}

	rules := p.SuffixRules()
	for i := 1; i < len(rules); i++ {
		if len(rules[i-1].Suffix) < len(rules[i].Suffix) {
			t.Fatalf("suffix rules not longest-first: %q before %q",
				rules[i-1].Suffix, rules[i].Suffix)
		}
	}
}

// TestDutchSingleton verifies that Dutch returns one shared profile.
func TestDutchSingleton(t *testing.T) {
	t.Parallel()
	if Dutch() != Dutch() {
		t.Error("Dutch() returned distinct profiles")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
	}{
		{"not yaml", "{"},
		{"missing name", "units: {twee: 2}"},
		{"no units", "name: x"},
		{"duplicate word", "name: x\nunits: {twee: 2}\nteens: {twee: 12}"},
		{"bad scale", "name: x\nunits: {twee: 2}\nmultipliers: {honderdtal: 100}"},
		{"non power of ten", "name: x\nunits: {twee: 2}\nmultipliers: {gros: 1728}"},
		{"bad sign", "name: x\nunits: {twee: 2}\nsign: {dubbel: 2}"},
		{"empty fusion glue", "name: x\nunits: {twee: 2}\ntens: {twintig: 20}\nfusion: [{glue: \"\"}]"},
		{"never alone unknown", "name: x\nunits: {twee: 2}\nnever_alone: [drie]"},
		{"never conj unknown", "name: x\nunits: {twee: 2}\nnever_with_conjunction: [drie]"},
		{"irregular unknown cardinal", "name: x\nunits: {twee: 2}\nordinals: {irregular: {derde: drie}}"},
		{"empty suffix", "name: x\nunits: {twee: 2}\nordinals: {suffixes: [{suffix: \"\"}]}"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadBytes([]byte(tt.doc))
			if err == nil {
				t.Fatal("LoadBytes: expected error, got nil")
			}
			if !strings.Contains(err.Error(), ErrConfig.Error()) {
				t.Errorf("error %v does not wrap %v", err, ErrConfig)
			}
		})
	}
}

func TestLoadMinimal(t *testing.T) {
	t.Parallel()

	const doc = `
name: tiny
units:
  twee: 2
tens:
  twintig: 20
fusion:
  - glue: en
`
	p, err := LoadBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	tok, ok := p.Lookup("tweeentwintig")
	if !ok || tok.Cat != FusedTensUnit || tok.Value != 22 {
		t.Errorf("fused lookup = %v, %v, want FusedTensUnit(22)", tok, ok)
	}
}

// TestVocabularyWellFormed verifies every vocabulary word is valid UTF-8 and
// already case-folded; the segmenter matches against folded input.
func TestVocabularyWellFormed(t *testing.T) {
	t.Parallel()
	p := Dutch()
	for _, w := range p.Vocabulary() {
		if !utf8.ValidString(w) {
			t.Errorf("vocabulary word %q is not valid UTF-8", w)
		}
		if strings.ToLower(w) != w {
			t.Errorf("vocabulary word %q is not lowercase", w)
		}
		if _, ok := p.Lookup(w); !ok {
			t.Errorf("vocabulary word %q fails its own lookup", w)
		}
	}
}
