package wordlist

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// CharClassCounts is how many tokens contain at least one character of each
// class.
type CharClassCounts struct {
	Upper   int `json:"upper"`
	Lower   int `json:"lower"`
	Digit   int `json:"digit"`
	Special int `json:"special"`
}

// Stats is a read-only snapshot over a token set. Recomputing requires a
// fresh Aggregate pass.
type Stats struct {
	Total       int              `json:"total_passwords"`
	AvgLength   float64          `json:"average_length"`
	MinLength   int              `json:"min_length"`
	MaxLength   int              `json:"max_length"`
	Strengths   map[Strength]int `json:"strength_distribution"`
	WeakPct     float64          `json:"weak_percentage"`
	MediumPct   float64          `json:"medium_percentage"`
	StrongPct   float64          `json:"strong_percentage"`
	CharClasses CharClassCounts  `json:"char_type_distribution"`
	GeneratedAt time.Time        `json:"generation_timestamp"`
}

// Aggregate reduces a token set to statistics in a single pass. The clock is
// injected by the caller. An empty set yields an explicit zero record rather
// than an error.
func Aggregate(tokens Set, specials []string, now time.Time) Stats {
	stats := Stats{
		Strengths:   make(map[Strength]int),
		GeneratedAt: now,
	}

	if tokens.Len() == 0 {
		return stats
	}

	stats.Total = tokens.Len()
	stats.MinLength = math.MaxInt

	var lengthSum int
	for t := range tokens {
		n := len(t)
		lengthSum += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}

		stats.Strengths[Score(t, specials)]++

		if strings.ContainsFunc(t, unicode.IsUpper) {
			stats.CharClasses.Upper++
		}
		if strings.ContainsFunc(t, unicode.IsLower) {
			stats.CharClasses.Lower++
		}
		if strings.ContainsFunc(t, unicode.IsDigit) {
			stats.CharClasses.Digit++
		}
		if containsAnySpecial(t, specials) {
			stats.CharClasses.Special++
		}
	}

	stats.AvgLength = round2(float64(lengthSum) / float64(stats.Total))
	stats.WeakPct = pct(stats.Strengths[Weak], stats.Total)
	stats.MediumPct = pct(stats.Strengths[Medium], stats.Total)
	stats.StrongPct = pct(stats.Strengths[Strong], stats.Total)

	return stats
}

func pct(n, total int) float64 {
	return round2(float64(n) / float64(total) * 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
