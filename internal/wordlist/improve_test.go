package wordlist

import "testing"

func TestImproveSupersetOfInput(t *testing.T) {
	cfg := DefaultConfig()
	input := []string{"dragon", "sunshine", "letmein"}

	enhanced := Improve(input, cfg)

	for _, w := range input {
		if !enhanced.Contains(w) {
			t.Errorf("enhanced set lost input token %q", w)
		}
	}
	if enhanced.Len() <= len(input) {
		t.Error("expected the improver to add tokens")
	}
}

func TestImproveTransforms(t *testing.T) {
	cfg := DefaultConfig()
	enhanced := Improve([]string{"dragon"}, cfg)

	tests := []struct {
		name string
		want string
	}{
		{"capitalized", "Dragon"},
		{"upper", "DRAGON"},
		{"leet", "dr490n"},
		{"year suffix", "dragon2023"},
		{"year prefix", "2023dragon"},
		{"special char", "dragon!"},
		{"fixed number", "dragon123"},
		{"fixed number 007", "dragon007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !enhanced.Contains(tt.want) {
				t.Errorf("enhanced set missing %q", tt.want)
			}
		})
	}
}

func TestImproveHonorsToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseLeet = false
	cfg.UseSpecialChars = false

	enhanced := Improve([]string{"dragon"}, cfg)

	if enhanced.Contains("dr490n") {
		t.Error("leet variant present with UseLeet disabled")
	}
	if enhanced.Contains("dragon!") {
		t.Error("special variant present with UseSpecialChars disabled")
	}
}

func TestImproveFiltersLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLength = 8
	cfg.MaxLength = 10

	enhanced := Improve([]string{"dragon"}, cfg)

	for token := range enhanced {
		if len(token) < 8 || len(token) > 10 {
			t.Fatalf("token %q outside bounds", token)
		}
	}
	// "dragon" itself (len 6) is filtered, "dragon2023" stays
	if enhanced.Contains("dragon") {
		t.Error("out-of-bounds input token survived the filter")
	}
	if !enhanced.Contains("dragon2023") {
		t.Error("in-bounds variant missing")
	}
}

func TestImprovePrefixCaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.ImproveYears = 1

	enhanced := Improve([]string{"dragon", "wizard"}, cfg)

	if !enhanced.Contains("dragon2020") {
		t.Error("first word should get year suffixes")
	}
	if enhanced.Contains("wizard2020") {
		t.Error("second word is beyond the cap and must not get year suffixes")
	}
}

func TestMergeCommutativeAndDeduplicated(t *testing.T) {
	cfg := DefaultConfig()
	a := []string{"dragon", "sunshine"}
	b := []string{"sunshine", "letmein"}

	ab := Merge(cfg, a, b)
	ba := Merge(cfg, b, a)

	if ab.Len() != ba.Len() {
		t.Fatalf("merge order changed result: %d vs %d", ab.Len(), ba.Len())
	}
	for token := range ab {
		if !ba.Contains(token) {
			t.Fatalf("merge order changed content: %q", token)
		}
	}
	if ab.Len() != 3 {
		t.Errorf("merged size = %d, want 3", ab.Len())
	}
}

func TestMergeFiltersLength(t *testing.T) {
	cfg := DefaultConfig()
	merged := Merge(cfg, []string{"abc", "longenough"})

	if merged.Contains("abc") {
		t.Error("short token survived merge filter")
	}
	if !merged.Contains("longenough") {
		t.Error("valid token missing after merge")
	}
}
