package wordlist

import (
	"strconv"
	"time"
)

// Limits bounds the combinatorial surface of the engine. Every cap here is a
// load-bearing output-size control; the defaults keep a fully populated
// profile in the low hundreds of thousands of candidates.
type Limits struct {
	// SeparatorPrefix is how many separators (from the front of
	// Config.Separators) participate in word/date and word/year joins.
	SeparatorPrefix int
	// NumberWords caps how many base words receive numeric suffixes.
	NumberWords int
	// SpecialWords caps how many base words receive special characters.
	SpecialWords int
	// SpecialChars caps how many special characters are appended per word.
	SpecialChars int
	// ModernWords caps how many base words are combined with modern terms.
	ModernWords int
	// ModernTerms caps how many modern terms are combined per word.
	ModernTerms int
	// LeetSample caps how many accumulated tokens get a leet variant.
	LeetSample int

	// Improver prefixes: how many input words receive each transform.
	ImproveCase    int
	ImproveLeet    int
	ImproveYears   int
	ImproveSpecial int
	ImproveNumbers int
}

// Config is the policy object for a generation run. Construct it once (from
// DefaultConfig or a caller's own values) and treat it as read-only.
type Config struct {
	MinLength int
	MaxLength int

	UseLeet         bool
	UseSpecialChars bool
	UseNumbers      bool
	UseModernTerms  bool

	SpecialChars []string
	ModernTerms  []string
	Separators   []string
	Years        []string

	NumFrom int
	NumTo   int

	LeetMap LeetMap

	// Threshold is the improve-input size above which callers should warn
	// before running.
	Threshold int

	Limits Limits
}

// DefaultConfig returns the compiled-in policy. The year range ends at the
// current year so "recent years" combinations stay current.
func DefaultConfig() Config {
	return Config{
		MinLength:       6,
		MaxLength:       20,
		UseLeet:         true,
		UseSpecialChars: true,
		UseNumbers:      true,
		UseModernTerms:  true,
		SpecialChars:    []string{"!", "@", "#", "$", "%", "&", "*", "_", "-", "+", "="},
		ModernTerms: []string{
			"ai", "crypto", "bitcoin", "nft", "meta", "chatgpt", "web3",
			"defi", "blockchain", "covid", "vaccine", "zoom", "tiktok",
			"2025", "2024", "2023", "gaming", "streaming", "cloud",
		},
		Separators: []string{"", "_", "-", ".", "@", "!"},
		Years:      yearRange(1950, time.Now().Year()),
		NumFrom:    0,
		NumTo:      99,
		LeetMap:    DefaultLeetMap(),
		Threshold:  1000,
		Limits: Limits{
			SeparatorPrefix: 3,
			NumberWords:     50,
			SpecialWords:    50,
			SpecialChars:    5,
			ModernWords:     20,
			ModernTerms:     15,
			LeetSample:      5000,
			ImproveCase:     1000,
			ImproveLeet:     500,
			ImproveYears:    500,
			ImproveSpecial:  300,
			ImproveNumbers:  300,
		},
	}
}

// recentYears returns the last n entries of the configured year range.
func (c Config) recentYears(n int) []string {
	if len(c.Years) <= n {
		return c.Years
	}
	return c.Years[len(c.Years)-n:]
}

// separators returns the separator prefix used for combination joins.
func (c Config) separators() []string {
	n := c.Limits.SeparatorPrefix
	if n > len(c.Separators) {
		n = len(c.Separators)
	}
	return c.Separators[:n]
}

// withinBounds reports whether a token passes the length filter.
func (c Config) withinBounds(token string) bool {
	return len(token) >= c.MinLength && len(token) <= c.MaxLength
}

func yearRange(from, to int) []string {
	years := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}
