package wordlist

import "strings"

// improveYears are the year suffixes applied by the improver. Fixed recent
// window rather than the engine's configured range.
var improveYears = []string{"2020", "2021", "2022", "2023", "2024", "2025"}

// improveNumbers are the fixed numeric suffixes applied by the improver.
var improveNumbers = []string{"123", "1", "12", "01", "007"}

// improveSpecialChars is how many configured special characters the improver
// appends per word.
const improveSpecialChars = 3

// Improve reapplies a subset of the engine transforms to an externally
// supplied token list: case variants, leet, year and fixed-number suffixes,
// special characters. Each transform runs over a bounded prefix of the input
// (cfg.Limits.Improve*); the input's own order is the deterministic ordering,
// so callers reading from a file get file order. The result is a superset of
// the in-bounds input, filtered by length at the end.
func Improve(words []string, cfg Config) Set {
	enhanced := NewSet(words...)

	for _, word := range prefix(words, cfg.Limits.ImproveCase) {
		enhanced.Add(capitalize(word))
		enhanced.Add(strings.ToUpper(word))
		enhanced.Add(strings.ToLower(word))
	}

	if cfg.UseLeet {
		for _, word := range prefix(words, cfg.Limits.ImproveLeet) {
			enhanced.Add(Leet(word, cfg.LeetMap))
		}
	}

	for _, word := range prefix(words, cfg.Limits.ImproveYears) {
		for _, year := range improveYears {
			enhanced.Add(word + year)
			enhanced.Add(year + word)
		}
	}

	if cfg.UseSpecialChars {
		chars := prefix(cfg.SpecialChars, improveSpecialChars)
		for _, word := range prefix(words, cfg.Limits.ImproveSpecial) {
			for _, char := range chars {
				enhanced.Add(word + char)
			}
		}
	}

	for _, word := range prefix(words, cfg.Limits.ImproveNumbers) {
		for _, num := range improveNumbers {
			enhanced.Add(word + num)
		}
	}

	return enhanced.FilterLength(cfg.MinLength, cfg.MaxLength)
}

// Merge unions any number of token lists and applies the length filter.
// Order of the lists does not matter.
func Merge(cfg Config, lists ...[]string) Set {
	merged := NewSet()
	for _, list := range lists {
		merged.AddAll(list)
	}
	return merged.FilterLength(cfg.MinLength, cfg.MaxLength)
}
