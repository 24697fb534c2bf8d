package reply

import (
	"regexp"
	"strings"
)

// headerGroup identifies which header field a recognized label stands for,
// regardless of language. Detection counts distinct groups, so "De" and
// "From" in one block would read as a duplicate rather than two fields.
type headerGroup int

const (
	groupFrom headerGroup = iota
	groupTo
	groupCc
	groupReplyTo
	groupDate
	groupSubject

	numHeaderGroups
)

// quoteHeaderLabels maps header labels, lowercased, to their field group.
// Covers English, French, Mexican Spanish, and Brazilian Portuguese; other
// locales fall through to the continuation rule and the block is simply
// not recognized as a header.
var quoteHeaderLabels = map[string]headerGroup{
	"from": groupFrom,
	"de":   groupFrom,

	"to":   groupTo,
	"à":    groupTo,
	"a":    groupTo,
	"para": groupTo,

	"cc": groupCc,

	"reply-to":    groupReplyTo,
	"répondre à":  groupReplyTo,
	"responder a": groupReplyTo,

	"date":       groupDate,
	"sent":       groupDate,
	"envoyé":     groupDate,
	"fecha":      groupDate,
	"enviado":    groupDate,
	"data":       groupDate,
	"enviada em": groupDate,

	"subject": groupSubject,
	"objet":   groupSubject,
	"asunto":  groupSubject,
	"assunto": groupSubject,
}

// A label is the text before the first colon, optionally marked up with a
// leading "*" by clients that render headers in bold.
var quoteHeaderLabelRegexp = regexp.MustCompile(`^\s*\*?\s*([^:]{1,40}?)\s*:`)

// quoteHeaderLabel extracts a recognized header label from the line.
func quoteHeaderLabel(line string) (headerGroup, bool) {
	m := quoteHeaderLabelRegexp.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	g, ok := quoteHeaderLabels[strings.ToLower(m[1])]
	return g, ok
}

// isQuoteHeaderBlock reports whether a run of lines (top-to-bottom, no
// internal blanks) is a folded client header such as
//
//	From: Alice Smith
//	Sent: Monday, January 3, 2011 1:00 PM
//	To: Bob Jones
//	Subject: Re: meeting
//
// The first line must carry a recognized label. Unlabeled lines count as
// folded continuations of the previous field. A repeated field group means
// this is prose that merely resembles a header. Once `groups` distinct
// field groups have been seen the block is accepted without reading
// further.
func isQuoteHeaderBlock(block []string, groups int) bool {
	var seen [numHeaderGroups]bool
	n := 0
	for i, line := range block {
		g, ok := quoteHeaderLabel(line)
		if !ok {
			if i == 0 {
				return false
			}
			continue
		}
		if seen[g] {
			return false
		}
		seen[g] = true
		if n++; n >= groups {
			return true
		}
	}
	return false
}

// canExtendQuoteHeader reports whether a line scanned above the current
// block could still belong to a header that ends in that block: it must
// carry a recognized label whose field group the block does not already
// contain. This is what lets a folded header merge with the quoted text
// directly beneath it.
func canExtendQuoteHeader(line string, block []string) bool {
	g, ok := quoteHeaderLabel(line)
	if !ok {
		return false
	}
	for _, b := range block {
		if bg, ok := quoteHeaderLabel(b); ok && bg == g {
			return false
		}
	}
	return true
}
