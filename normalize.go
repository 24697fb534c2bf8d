package reply

import (
	"regexp"
	"strings"
)

var (
	// Reply headers that clients broke into multiple physical lines, e.g.
	// gmail wraps "On DATE, NAME <EMAIL> wrote:" past 80 columns. With (?s)
	// the match may span lines; the fold glues it back together.
	foldableHeaderRegexps = []*regexp.Regexp{
		// e.g. On Aug 22, 2011, at 7:37 PM, defunkt<reply@reply.github.com> wrote:
		regexp.MustCompile(`(?ms)^On\s.+?wrote:$`),
		// e.g. 2013/11/13 John Smith <john@smith.org>
		regexp.MustCompile(`(?ms)^\d{4}/\d{1,2}/\d{1,2}\s.+?<[^<>]+@[^<>]+>$`),
	}

	underscoreDelimiterRegexp = regexp.MustCompile(`^_{7,}[ \t]*$`)
)

// normalize prepares raw input for the line scanner: line endings become
// bare LF, one wrapped reply header is folded back onto a single logical
// line, and underline-style signature delimiters get a blank line above
// them so they always open a fresh fragment.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = foldQuoteHeader(text)
	return isolateSignatureDelimiters(text)
}

// foldQuoteHeader rejoins the first wrapped reply header found, replacing
// its internal newlines with spaces. Spans with an internal blank line are
// something else entirely and stay untouched. At most one fold is applied
// per input.
func foldQuoteHeader(text string) string {
	for _, re := range foldableHeaderRegexps {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			span := text[loc[0]:loc[1]]
			if !strings.Contains(span, "\n") || strings.Contains(span, "\n\n") {
				continue
			}
			return text[:loc[0]] + strings.ReplaceAll(span, "\n", " ") + text[loc[1]:]
		}
	}
	return text
}

// isolateSignatureDelimiters inserts a blank line before any run of seven
// or more underscores that directly follows a non-blank line. Mailing list
// footers use these as section dividers without surrounding whitespace,
// which would otherwise weld the footer to the paragraph above it.
func isolateSignatureDelimiters(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		if i > 0 && lines[i-1] != "" && underscoreDelimiterRegexp.MatchString(line) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
