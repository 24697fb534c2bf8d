// Package address extracts a display name and address from a sender
// string. It deliberately recognizes nothing beyond the minimal
// `name <email>` shape: anything fancier belongs to a real address parser
// upstream, and a string this package cannot pick apart simply yields no
// display name.
package address

import (
	"regexp"
	"strings"
)

var mailboxRegexp = regexp.MustCompile(`^\s*"?([^"<]*)"?\s*<([^<>]*)>`)

// NormalizedAddress is the broken-down form of a sender string.
type NormalizedAddress struct {
	// Name is the display name as written, without quotes.
	Name string

	// NormalizedName is the display name reordered to "First Last" when it
	// was written "Last, First".
	NormalizedName string

	// Email is the addr-spec between angle brackets, or the whole input
	// when no brackets are present.
	Email string
}

// Parse breaks a sender string down. It is total: any input produces a
// result, with missing pieces left empty.
func Parse(s string) NormalizedAddress {
	var a NormalizedAddress
	if m := mailboxRegexp.FindStringSubmatch(s); m != nil {
		a.Name = strings.TrimSpace(m[1])
		a.Email = m[2]
	} else {
		a.Email = strings.TrimSpace(s)
	}
	a.NormalizedName = normalizeName(a.Name)
	return a
}

// normalizeName rewrites "Last, First" to "First Last". A part before the
// comma that already contains a space is taken to be a complete
// "First Last" name and kept as-is.
func normalizeName(name string) string {
	before, after, found := strings.Cut(name, ",")
	if !found {
		return name
	}

	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	if after == "" || strings.Contains(before, " ") {
		return before
	}
	return after + " " + before
}
