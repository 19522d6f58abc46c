package wordlist

import "strings"

// BaseWords derives the seed tokens for combination from a profile: the
// name-like fields with case variants, name/surname combinations, keyword and
// email-local-part variants, and a reversal pass over everything longer than
// three characters. The result is deduplicated and sorted so downstream
// capping is reproducible.
func BaseWords(p Profile) []string {
	words := NewSet()

	// name, surname and company also get the all-uppercase form
	addCased(words, p.Name, true)
	addCased(words, p.Surname, true)
	addCased(words, p.Company, true)
	addCased(words, p.Nickname, false)
	addCased(words, p.PartnerName, false)
	addCased(words, p.PartnerNickname, false)
	addCased(words, p.ChildName, false)
	addCased(words, p.ChildNickname, false)
	addCased(words, p.PetName, false)

	if p.Name != "" && p.Surname != "" {
		words.Add(p.Name + p.Surname)
		words.Add(p.Surname + p.Name)
		words.Add(capitalize(p.Name) + capitalize(p.Surname))
		words.Add(p.Name[:1] + p.Surname)
	}

	if p.Company != "" {
		words.Add(strings.ReplaceAll(p.Company, " ", ""))
	}

	for _, kw := range p.Keywords {
		addCased(words, kw, true)
	}

	if local := p.emailLocal(); local != "" {
		words.Add(local)
		words.Add(capitalize(local))
		words.Add(strings.ReplaceAll(local, ".", ""))
		words.Add(strings.ReplaceAll(local, "_", ""))
	}

	// reversal pass over everything produced so far
	for _, w := range words.Sorted() {
		if len(w) > 3 {
			words.Add(reverse(w))
		}
	}

	return words.Sorted()
}

// addCased adds word and its capitalized form, plus the all-uppercase form
// when upper is set. Empty words are ignored.
func addCased(s Set, word string, upper bool) {
	if word == "" {
		return
	}
	s.Add(word)
	s.Add(capitalize(word))
	if upper {
		s.Add(strings.ToUpper(word))
	}
}

// capitalize upper-cases the first rune and lower-cases the rest. This is
// deliberately not title casing: "my company" becomes "My company".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
