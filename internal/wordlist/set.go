package wordlist

import "sort"

// Set is a deduplicated collection of candidate tokens. The zero value is not
// usable; construct with NewSet.
type Set map[string]struct{}

// NewSet creates a set seeded with the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a token.
func (s Set) Add(token string) {
	s[token] = struct{}{}
}

// AddAll inserts every token from the slice.
func (s Set) AddAll(tokens []string) {
	for _, t := range tokens {
		s.Add(t)
	}
}

// Contains reports whether token is in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s)
}

// Union merges other into s.
func (s Set) Union(other Set) {
	for t := range other {
		s.Add(t)
	}
}

// Sorted returns the tokens in lexicographic order. Map iteration order is
// not stable, so every deterministic operation (capping, sampling, export)
// goes through here.
func (s Set) Sorted() []string {
	tokens := make([]string, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// SortedPrefix returns the lexicographically first n tokens, or all of them
// when the set is smaller.
func (s Set) SortedPrefix(n int) []string {
	tokens := s.Sorted()
	if len(tokens) <= n {
		return tokens
	}
	return tokens[:n]
}

// FilterLength returns a new set holding only tokens within [min, max].
// Filtering is idempotent: applying the same bounds twice changes nothing.
func (s Set) FilterLength(min, max int) Set {
	out := make(Set, len(s))
	for t := range s {
		if len(t) >= min && len(t) <= max {
			out.Add(t)
		}
	}
	return out
}
