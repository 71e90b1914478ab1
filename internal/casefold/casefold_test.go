package casefold

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii lower", "twintig", "twintig"},
		{"ascii upper", "Twintig", "twintig"},
		{"diacritics", "ÉÉN", "één"},
		{"mixed", "TweeënTwintig", "tweeëntwintig"},
		{"decomposed nfd", "één", "één"},
		{"digits and punct", "3,14!", "3,14!"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestFoldIdempotent verifies that folding is a fixed point.
func TestFoldIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"één", "TWEEËNTWINTIG", "hello", "é"} {
		once := Fold(s)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold(Fold(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func FuzzFold(f *testing.F) {
	f.Add("")
	f.Add("één")
	f.Add("TWEEËNTWINTIG")
	f.Add("\xff\xfe")
	f.Add("é")

	f.Fuzz(func(t *testing.T, s string) {
		once := Fold(s)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold not idempotent on %q: %q then %q", s, once, twice)
		}
	})
}
