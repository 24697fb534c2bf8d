package reply

import "strings"

// Fragment is one classified section of a parsed email. It is sealed when
// the scanner finishes it and never changes afterward.
type Fragment struct {
	content     string
	quoted      bool
	signature   bool
	replyHeader bool
	forwarded   bool
	hidden      bool
}

// Quoted reports whether the fragment reproduces an earlier message.
func (f *Fragment) Quoted() bool { return f.quoted }

// Signature reports whether the fragment is a sign-off block.
func (f *Fragment) Signature() bool { return f.signature }

// ReplyHeader reports whether the fragment contains a client-generated
// header introducing quoted material.
func (f *Fragment) ReplyHeader() bool { return f.replyHeader }

// Forwarded reports whether the fragment opens with a forwarded-message
// delimiter.
func (f *Fragment) Forwarded() bool { return f.forwarded }

// Hidden reports whether the fragment is excluded from the visible text.
func (f *Fragment) Hidden() bool { return f.hidden }

// String returns the fragment content.
func (f *Fragment) String() string { return f.content }

// fragmentBuilder accumulates the lines of one fragment while the scanner
// walks the message from the bottom up. Only the builder is ever mutated;
// finish produces the immutable Fragment handed to callers.
type fragmentBuilder struct {
	quoted      bool
	signature   bool
	replyHeader bool
	forwarded   bool

	// lines holds the fragment in scan order, newest last; the natural
	// top-to-bottom order is the reverse.
	lines []string

	// block holds the run of non-blank lines since the last blank line, in
	// natural top-to-bottom order. The header folding check reads it.
	block []string
}

func newFragmentBuilder(quoted bool, line string) *fragmentBuilder {
	b := &fragmentBuilder{quoted: quoted}
	b.addLine(line)
	return b
}

// addLine records a line scanned above all lines added so far. A blank
// line resets the current block.
func (b *fragmentBuilder) addLine(line string) {
	b.lines = append(b.lines, line)
	if line == "" {
		b.block = nil
	} else {
		b.block = append([]string{line}, b.block...)
	}
}

// lastLine returns the most recently added line, which is the top-most
// line of the fragment scanned so far.
func (b *fragmentBuilder) lastLine() string {
	return b.lines[len(b.lines)-1]
}

// finish seals the builder, joining its lines in natural top-to-bottom
// order and discarding the mutable buffers.
func (b *fragmentBuilder) finish() *Fragment {
	for i, j := 0, len(b.lines)-1; i < j; i, j = i+1, j-1 {
		b.lines[i], b.lines[j] = b.lines[j], b.lines[i]
	}
	f := &Fragment{
		content:     strings.Join(b.lines, "\n"),
		quoted:      b.quoted,
		signature:   b.signature,
		replyHeader: b.replyHeader,
		forwarded:   b.forwarded,
	}
	b.lines, b.block = nil, nil
	return f
}
