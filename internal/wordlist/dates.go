package wordlist

// DateVariations expands an 8-digit DDMMYYYY date into the fixed fragment set
// used for combinations: day, month, year in two- and four-digit forms plus
// the common orderings. Anything that is not exactly 8 digits yields nil.
//
// The variant list is a compatibility contract with existing wordlists — do
// not extend it.
func DateVariations(date string) []string {
	if !validDate(date) {
		return nil
	}

	dd, mm, yyyy := date[:2], date[2:4], date[4:]
	yy := yyyy[2:]
	yyy := yyyy[1:]

	variants := NewSet(
		dd, mm, yyyy, yy, yyy,
		dd+mm, mm+dd,
		dd+mm+yyyy, mm+dd+yyyy,
		dd+mm+yy, mm+dd+yy,
		yyyy+mm+dd, yyyy+dd+mm,
		yy+mm+dd, yy+dd+mm,
		dd[1:], mm[1:],
	)

	return variants.Sorted()
}
