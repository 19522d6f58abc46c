package wordlist

import "strings"

// LeetPair maps a lowercase letter to its leet replacement.
type LeetPair struct {
	From string
	To   string
}

// LeetMap is an ordered substitution table. Order matters: substitutions are
// applied sequentially over the evolving string, so a later pair sees the
// output of earlier ones.
type LeetMap []LeetPair

// DefaultLeetMap returns the standard substitution table.
func DefaultLeetMap() LeetMap {
	return LeetMap{
		{"a", "4"},
		{"e", "3"},
		{"i", "1"},
		{"o", "0"},
		{"s", "5"},
		{"t", "7"},
		{"g", "9"},
		{"b", "8"},
	}
}

// Leet lower-cases word and applies each substitution in table order,
// replacing every occurrence. Always returns a string, unchanged when no
// letter matches.
func Leet(word string, m LeetMap) string {
	out := strings.ToLower(word)
	for _, p := range m {
		out = strings.ReplaceAll(out, p.From, p.To)
	}
	return out
}
