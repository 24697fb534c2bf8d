package reply

import (
	"strings"
	"unicode"
)

// Email is the parsed result: the message's fragments in their original
// top-to-bottom order. It is immutable once Parse returns it.
type Email struct {
	fragments []*Fragment
}

// Fragments returns the fragments in top-to-bottom order. The returned
// slice is the caller's to keep.
func (e *Email) Fragments() []*Fragment {
	fs := make([]*Fragment, len(e.fragments))
	copy(fs, e.fragments)
	return fs
}

// VisibleText returns the content of the non-hidden fragments joined
// together, with trailing whitespace trimmed: the text the sender actually
// wrote, plus any quoted context sitting above it.
func (e *Email) VisibleText() string {
	parts := make([]string, 0, len(e.fragments))
	for _, f := range e.fragments {
		if f.hidden {
			continue
		}
		parts = append(parts, f.content)
	}
	return strings.TrimRightFunc(strings.Join(parts, "\n"), unicode.IsSpace)
}

// String returns the visible text.
func (e *Email) String() string {
	return e.VisibleText()
}
