package wordlist

import "testing"

func TestScore(t *testing.T) {
	specials := DefaultConfig().SpecialChars

	tests := []struct {
		name  string
		token string
		want  Strength
	}{
		// len 8 (+1), lower (+1), digit (+1), 2 distinct of 8 → 3 → weak
		{"repetitive with digits", "aaaa1111", Weak},
		{"short lowercase", "abc", Weak},
		// len 8 (+1), lower (+1), 8 distinct (+1) → 3 → weak
		{"lowercase word", "sunshine", Weak},
		// len 8 (+1), upper+lower+digit (+3), 8 distinct (+1) → 5 → medium
		{"mixed case with digit", "Passw0rd", Medium},
		// len 12 (+2), upper+lower+digit (+3), special (+2), distinct (+1) → 8 → strong
		{"long mixed with special", "Xk9!mQ2#vLpz", Strong},
		{"empty", "", Weak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.token, specials); got != tt.want {
				t.Errorf("Score(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestScoreSpecialsFromConfigOnly(t *testing.T) {
	// '!' scores as special only when configured
	with := Score("abcdefg!", []string{"!"})
	without := Score("abcdefg!", []string{"#"})

	if with == without {
		t.Errorf("special-char config had no effect: both %q", with)
	}
}
