package wordlist

import (
	"sort"
	"testing"
)

func TestBaseWordsNameVariants(t *testing.T) {
	words := NewSet(BaseWords(Profile{Name: "john", Surname: "doe"})...)

	for _, want := range []string{
		"john", "John", "JOHN",
		"doe", "Doe", "DOE",
		"johndoe", "doejohn", "JohnDoe", "jdoe",
	} {
		if !words.Contains(want) {
			t.Errorf("base words missing %q", want)
		}
	}
}

func TestBaseWordsReversals(t *testing.T) {
	words := NewSet(BaseWords(Profile{Name: "john"})...)

	if !words.Contains("nhoj") {
		t.Error("expected reversal of john")
	}

	// three characters and shorter are not reversed
	short := NewSet(BaseWords(Profile{Name: "abc"})...)
	if short.Contains("cba") {
		t.Error("3-char words must not be reversed")
	}
}

func TestBaseWordsCompany(t *testing.T) {
	words := NewSet(BaseWords(Profile{Name: "john", Company: "acme corp"})...)

	for _, want := range []string{"acme corp", "Acme corp", "ACME CORP", "acmecorp"} {
		if !words.Contains(want) {
			t.Errorf("base words missing %q", want)
		}
	}
}

func TestBaseWordsEmailLocalPart(t *testing.T) {
	words := NewSet(BaseWords(Profile{Name: "john", Email: "j.doe_90@example.com"})...)

	for _, want := range []string{"j.doe_90", "J.doe_90", "jdoe_90", "j.doe90"} {
		if !words.Contains(want) {
			t.Errorf("base words missing %q", want)
		}
	}
	if words.Contains("example.com") {
		t.Error("domain must not become a base word")
	}
}

func TestBaseWordsKeywords(t *testing.T) {
	words := NewSet(BaseWords(Profile{Name: "john", Keywords: []string{"hockey"}})...)

	for _, want := range []string{"hockey", "Hockey", "HOCKEY", "yekcoh"} {
		if !words.Contains(want) {
			t.Errorf("base words missing %q", want)
		}
	}
}

func TestBaseWordsSortedAndUnique(t *testing.T) {
	words := BaseWords(Profile{Name: "john", Surname: "doe", PetName: "rex"})

	if !sort.StringsAreSorted(words) {
		t.Error("base words must be sorted")
	}
	if NewSet(words...).Len() != len(words) {
		t.Error("base words contain duplicates")
	}
}

func TestBaseWordsEmptyProfile(t *testing.T) {
	if got := BaseWords(Profile{}); len(got) != 0 {
		t.Errorf("empty profile produced %v", got)
	}
}
