package wordlist

import (
	"strconv"
	"strings"
)

// emailProviders are substituted for the target's real mail domain, since
// people reuse the same local part across providers.
var emailProviders = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

// recentYearWindow is how many trailing years of the configured range join
// with base words.
const recentYearWindow = 10

// specialYearWindow is how many trailing years join word+char+year triples.
const specialYearWindow = 3

// Diagnostics summarizes a generation run for the caller.
type Diagnostics struct {
	BaseWords      int
	DateVariations int
	Warnings       []string
}

// Generate expands a profile into a deduplicated candidate set under the
// given policy. The expansion is additive: each step unions its combinations
// into a shared accumulator, and a single length filter runs at the end.
// Every cap lives in cfg.Limits; capped selections always operate on sorted
// input so output is reproducible across runs.
func Generate(p Profile, cfg Config) (Set, Diagnostics) {
	diag := Diagnostics{Warnings: p.Validate()}

	words := BaseWords(p)
	diag.BaseWords = len(words)

	dateSet := NewSet()
	for _, d := range []string{p.Birthdate, p.PartnerBirthdate, p.ChildBirthdate} {
		dateSet.AddAll(DateVariations(d))
	}
	dates := dateSet.Sorted()
	diag.DateVariations = len(dates)

	years := cfg.recentYears(recentYearWindow)
	seps := cfg.separators()

	tokens := NewSet(words...)

	// words × dates — the dominant cost term
	for _, word := range words {
		for _, date := range dates {
			for _, sep := range seps {
				tokens.Add(word + sep + date)
				tokens.Add(date + sep + word)
			}
		}
	}

	// words × recent years
	for _, word := range words {
		for _, year := range years {
			for _, sep := range seps {
				tokens.Add(word + sep + year)
				tokens.Add(year + sep + word)
			}
		}
	}

	if cfg.UseNumbers {
		addNumberSuffixes(tokens, words, cfg)
	}

	if cfg.UseSpecialChars {
		addSpecialChars(tokens, words, years, cfg)
	}

	if cfg.UseModernTerms {
		addModernTerms(tokens, words, cfg)
	}

	if local := p.emailLocal(); local != "" {
		for _, provider := range emailProviders {
			tokens.Add(local + "@" + provider)
		}
	}

	addPhoneFragments(tokens, p.Phone)

	if cfg.UseLeet {
		applyLeet(tokens, cfg)
	}

	return tokens.FilterLength(cfg.MinLength, cfg.MaxLength), diag
}

// addNumberSuffixes joins a bounded word prefix with numeric suffixes
// stepping by 11 through [NumFrom, min(NumTo, 100)).
func addNumberSuffixes(tokens Set, words []string, cfg Config) {
	to := cfg.NumTo
	if to > 100 {
		to = 100
	}
	for _, word := range prefix(words, cfg.Limits.NumberWords) {
		for _, num := range numberSteps(cfg.NumFrom, to) {
			tokens.Add(word + num)
			tokens.Add(num + word)
		}
	}
}

func addSpecialChars(tokens Set, words, years []string, cfg Config) {
	chars := prefix(cfg.SpecialChars, cfg.Limits.SpecialChars)
	recent := years
	if len(recent) > specialYearWindow {
		recent = recent[len(recent)-specialYearWindow:]
	}

	for _, word := range prefix(words, cfg.Limits.SpecialWords) {
		for _, char := range chars {
			tokens.Add(word + char)
			tokens.Add(char + word)
			for _, year := range recent {
				tokens.Add(word + char + year)
			}
		}
	}
}

func addModernTerms(tokens Set, words []string, cfg Config) {
	terms := prefix(cfg.ModernTerms, cfg.Limits.ModernTerms)
	for _, word := range prefix(words, cfg.Limits.ModernWords) {
		for _, term := range terms {
			tokens.Add(word + term)
			tokens.Add(term + word)
			tokens.Add(word + capitalize(term))
		}
	}
}

// addPhoneFragments adds trailing digit groups of the phone number. Shorter
// numbers contribute only the fragments they can fill.
func addPhoneFragments(tokens Set, phone string) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < 4 {
		return
	}
	for _, n := range []int{4, 6, 8} {
		if len(digits) >= n {
			tokens.Add(digits[len(digits)-n:])
		}
	}
}

// applyLeet samples the lexicographically first LeetSample tokens of the
// accumulator and unions in their leet variants. Sorting first makes the
// sample deterministic; the accumulated set has no useful ordering of its own.
func applyLeet(tokens Set, cfg Config) {
	variants := NewSet()
	for _, t := range tokens.SortedPrefix(cfg.Limits.LeetSample) {
		variants.Add(Leet(t, cfg.LeetMap))
	}
	tokens.Union(variants)
}

func numberSteps(from, to int) []string {
	var nums []string
	for n := from; n < to; n += 11 {
		nums = append(nums, strconv.Itoa(n))
	}
	return nums
}

func prefix(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
