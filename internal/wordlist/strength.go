package wordlist

import (
	"strings"
	"unicode"
)

// Strength is the coarse heuristic bucket for a candidate password. It is not
// a security estimate.
type Strength string

const (
	Weak   Strength = "weak"
	Medium Strength = "medium"
	Strong Strength = "strong"
)

// Score rates a token by an additive point rubric: up to three points for
// length (8/12/16), one each for upper, lower and digit presence, two for any
// configured special character, and one when more than 70% of the characters
// are distinct. Totals of 3 or less are weak, 6 or less medium, above that
// strong.
func Score(token string, specials []string) Strength {
	score := 0

	if len(token) >= 8 {
		score++
	}
	if len(token) >= 12 {
		score++
	}
	if len(token) >= 16 {
		score++
	}

	if strings.ContainsFunc(token, unicode.IsUpper) {
		score++
	}
	if strings.ContainsFunc(token, unicode.IsLower) {
		score++
	}
	if strings.ContainsFunc(token, unicode.IsDigit) {
		score++
	}
	if containsAnySpecial(token, specials) {
		score += 2
	}

	// distinct > 0.7 × length, kept in integers to avoid float edges
	if 10*distinctRunes(token) > 7*len(token) {
		score++
	}

	switch {
	case score <= 3:
		return Weak
	case score <= 6:
		return Medium
	default:
		return Strong
	}
}

func containsAnySpecial(token string, specials []string) bool {
	for _, s := range specials {
		if s != "" && strings.Contains(token, s) {
			return true
		}
	}
	return false
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
