package reply

import (
	"regexp"
	"strings"
)

var (
	quoteMarkerRegexp = regexp.MustCompile(`^\s*>`)

	// Single-line headers introducing a quotation. The first is the classic
	// "On DATE, NAME <EMAIL> wrote:" shape, case-sensitive and anchored; the
	// second is the looser date-first form some clients emit.
	onWroteRegexp     = regexp.MustCompile(`^On\s.*wrote:$`)
	dateAuthorRegexp  = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}\s.{0,80}<[^<>\s]+@[^<>\s]+>$`)

	forwardedRegexp = regexp.MustCompile(`(?i)^-+\s*Forwarded message\s*-+$`)

	dashRunRegexp  = regexp.MustCompile(`^\s*[-_]{2,}\s*$`)
	dashNameRegexp = regexp.MustCompile(`^\s*-\w`)
	sentFromRegexp = regexp.MustCompile(`^Sent from my \w+(?: \w+){0,2}(?: \([^)]*\))?$`)
)

// isQuoteMarker reports whether the line opens with ">" quote markers,
// ignoring leading whitespace.
func isQuoteMarker(line string) bool {
	return quoteMarkerRegexp.MatchString(line)
}

// isReplyHeader reports whether the line is a client-generated header
// introducing quoted material.
func isReplyHeader(line string) bool {
	return onWroteRegexp.MatchString(line) || dateAuthorRegexp.MatchString(line)
}

// isForwardedMessage reports whether the line is a forwarded-message
// delimiter, e.g. "---------- Forwarded message ----------".
func isForwardedMessage(line string) bool {
	return forwardedRegexp.MatchString(line)
}

// signatureMatcher decides whether a line opens a signature block. The
// pattern checks are fixed; the name check is built per parse call from the
// sender's normalized display name, when one is available.
type signatureMatcher struct {
	ratio   float64
	name    *regexp.Regexp
	nameLen int
}

// newSignatureMatcher compiles a matcher for the given normalized sender
// name. An empty name disables the name heuristic and leaves the pattern
// checks active.
func newSignatureMatcher(name string, ratio float64) *signatureMatcher {
	m := &signatureMatcher{ratio: ratio}
	if name == "" {
		return m
	}

	// The sender may sign with initials, middle names, or periods between
	// the parts of their name, so each token of the name is allowed to be
	// separated by any run of word characters, periods, and whitespace.
	tokens := strings.Fields(name)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = regexp.QuoteMeta(tok)
	}
	m.name = regexp.MustCompile(`(?i)` + strings.Join(parts, `[\w.\s]*`))
	m.nameLen = len(name)
	return m
}

// matches reports whether the line looks like the start of a signature:
// a dash/underscore delimiter run, a "-Name" sign-off, a line that is
// nothing but delimiter characters (or the conventional "Original Message"
// divider), a "Sent from my ..." tagline, or a line that is mostly the
// sender's own name.
func (m *signatureMatcher) matches(line string) bool {
	if dashRunRegexp.MatchString(line) || dashNameRegexp.MatchString(line) {
		return true
	}
	if t := strings.Trim(line, "-_ \t"); t == "" || t == "Original Message" {
		return true
	}
	if sentFromRegexp.MatchString(line) {
		return true
	}
	return m.name != nil && m.name.MatchString(line) &&
		float64(m.nameLen)/float64(len(line)) > m.ratio
}
