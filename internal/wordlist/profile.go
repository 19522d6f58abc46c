// Package wordlist generates candidate password wordlists from target
// profile data. Everything in here is a pure transformation over in-memory
// sets — no files, no network, no ambient state.
package wordlist

import "strings"

// Profile is an immutable snapshot of target identity data. All fields are
// optional; an empty string means the field is absent. Name-like fields are
// expected lower-cased at capture time, dates in DDMMYYYY.
type Profile struct {
	Name             string   `json:"name"`
	Surname          string   `json:"surname"`
	Nickname         string   `json:"nickname"`
	Birthdate        string   `json:"birthdate"`
	PartnerName      string   `json:"partner_name"`
	PartnerNickname  string   `json:"partner_nickname"`
	PartnerBirthdate string   `json:"partner_birthdate"`
	ChildName        string   `json:"child_name"`
	ChildNickname    string   `json:"child_nickname"`
	ChildBirthdate   string   `json:"child_birthdate"`
	PetName          string   `json:"pet_name"`
	Company          string   `json:"company"`
	Keywords         []string `json:"keywords"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
}

// Validate checks the profile and returns a list of warnings. Warnings are
// advisory: generation proceeds regardless, the caller decides whether to
// surface or abort.
func (p Profile) Validate() []string {
	var warnings []string

	if p.Name == "" {
		warnings = append(warnings, "name is required")
	}

	dates := []struct {
		value string
		label string
	}{
		{p.Birthdate, "birthdate"},
		{p.PartnerBirthdate, "partner birthdate"},
		{p.ChildBirthdate, "child birthdate"},
	}
	for _, d := range dates {
		if d.value != "" && !validDate(d.value) {
			warnings = append(warnings, d.label+" must be in DDMMYYYY format")
		}
	}

	if p.Email != "" && !validEmail(p.Email) {
		warnings = append(warnings, "invalid email format")
	}

	return warnings
}

// emailLocal returns the part of the email before the @, or "" if there is
// no usable local part.
func (p Profile) emailLocal() string {
	local, _, ok := strings.Cut(p.Email, "@")
	if !ok {
		return ""
	}
	return local
}

func validDate(date string) bool {
	if len(date) != 8 {
		return false
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validEmail(email string) bool {
	_, domain, ok := strings.Cut(email, "@")
	return ok && strings.Contains(domain, ".")
}
