// Tests for span rewriting: currency, dates, clock times.
package rewrite

import (
	"testing"
)

var dutchMonths = []string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

func mustNormalizer(t *testing.T, opts Options) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(opts)
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return n
}

func TestCurrency(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{Currency: true})

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"euros with fraction", "3 euros con 50 céntimos", "€3.50"},
		{"euros accentless fraction", "3 euros con 50 centimos", "€3.50"},
		{"dollars", "2 dólares con 5 centavos", "$2.05"},
		{"whole only", "10 euros", "€10.00"},
		{"one euro", "un euro", "€1.00"},
		{"y connector", "7 dólares y 25 centavos", "$7.25"},
		{"in context", "kost 3 euros con 50 céntimos vandaag", "kost €3.50 vandaag"},
		{"no amount", "euros zijn geld", "euros zijn geld"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{
		Dates:         true,
		Months:        dutchMonths,
		DateLinkWords: []string{"van"},
	})

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"month name", "13 oktober 1999", "13/10/1999"},
		{"month name with van", "13 van oktober 1999", "13/10/1999"},
		{"numeric", "13 10 1999", "13/10/1999"},
		{"in context", "geboren op 13 oktober 1999 in", "geboren op 13/10/1999 in"},
		{"impossible date", "30 2 1999", "30 2 1999"},
		{"month out of range", "13 13 1999", "13 13 1999"},
		{"year too small", "13 10 0999", "13 10 0999"},
		{"case folded month", "13 Oktober 1999", "13/10/1999"},
		{"plain numbers", "5 12", "5 12"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDatesLinkWords verifies linking words come from the options, not from
// the pattern itself.
func TestDatesLinkWords(t *testing.T) {
	t.Parallel()

	custom := mustNormalizer(t, Options{
		Dates:         true,
		Months:        dutchMonths,
		DateLinkWords: []string{"des"},
	})
	if got, want := custom.Apply("13 des oktober 1999"), "13/10/1999"; got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}

	// Without link words only the plain day-month-year form matches.
	bare := mustNormalizer(t, Options{Dates: true, Months: dutchMonths})
	cases := []struct {
		input string
		want  string
	}{
		{"13 oktober 1999", "13/10/1999"},
		{"13 van oktober 1999", "13 van oktober 1999"},
		{"13 de oktober 1999", "13 de oktober 1999"},
	}
	for _, tt := range cases {
		tt := tt
		if got := bare.Apply(tt.input); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDatesMonthAsName(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{Dates: true, Months: dutchMonths, MonthAsName: true})

	cases := []struct {
		input string
		want  string
	}{
		{"13 10 1999", "13 oktober 1999"},
		{"13 oktober 1999", "13 oktober 1999"},
		{"1 1 2000", "1 januari 2000"},
	}
	for _, tt := range cases {
		tt := tt
		if got := n.Apply(tt.input); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{
		Times:     true,
		TimeWords: []string{"om"},
		HourWords: []string{"uur"},
	})

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"hour and minutes", "om 8 uur 30", "om 8:30"},
		{"hour only", "om 8 uur", "om 8:00"},
		{"minutes with en", "om 8 en 30", "om 8:30"},
		{"bare at end", "we komen om 8", "we komen om 8:00"},
		{"in context", "de trein om 8 uur 30 vertrekt", "de trein om 8:30 vertrekt"},
		{"quantity not a time", "om 3 dagen", "om 3 dagen"},
		{"hour out of range", "om 25 uur", "om 25 uur"},
		{"minute out of range", "om 8 uur 75", "om 8 uur 75"},
		{"zero padded minute", "om 8 uur 5", "om 8:05"},
		{"already formatted", "om 8:30", "om 8:30"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestClockWithoutHourWords verifies the clock pass for a profile with no
// hour-marker word: only "introducer + hour + minutes" forms are rewritten.
func TestClockWithoutHourWords(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{Times: true, TimeWords: []string{"a las"}})

	cases := []struct {
		input string
		want  string
	}{
		{"a las 8 30", "a las 8:30"},
		{"a las 8 y 30", "a las 8:30"},
		{"a las 8 personas", "a las 8 personas"},
	}
	for _, tt := range cases {
		tt := tt
		if got := n.Apply(tt.input); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizerOptionErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewNormalizer(Options{Times: true}); err == nil {
		t.Error("Times without TimeWords: expected error")
	}
	if _, err := NewNormalizer(Options{Dates: true, MonthAsName: true}); err == nil {
		t.Error("MonthAsName without Months: expected error")
	}
}

// TestApplyIdempotent verifies that a second pass over rewritten text
// changes nothing.
func TestApplyIdempotent(t *testing.T) {
	t.Parallel()
	n := mustNormalizer(t, Options{
		Currency:  true,
		Dates:     true,
		Times:     true,
		Months:    dutchMonths,
		TimeWords: []string{"om"},
		HourWords: []string{"uur"},
	})

	inputs := []string{
		"3 euros con 50 céntimos",
		"13 oktober 1999",
		"om 8 uur 30",
		"om 8",
		"gewone tekst zonder spans",
	}
	for _, in := range inputs {
		once := n.Apply(in)
		if twice := n.Apply(once); twice != once {
			t.Errorf("Apply not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func FuzzApply(f *testing.F) {
	f.Add("3 euros con 50 céntimos")
	f.Add("13 oktober 1999")
	f.Add("om 8 uur 30")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("om om om 9 9 9")

	n, err := NewNormalizer(Options{
		Currency:  true,
		Dates:     true,
		Times:     true,
		Months:    dutchMonths,
		TimeWords: []string{"om"},
		HourWords: []string{"uur"},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_ = n.Apply(s)
	})
}
