package reply

import (
	"strings"

	"github.com/zostay/go-reply/address"
)

// Parse parses a plain-text email body and returns the full fragment
// breakdown. It never fails: malformed or empty input yields a best-effort
// fragment sequence.
func Parse(text string, opts ...ParseOption) *Email {
	s := defaultSettings
	for _, opt := range opts {
		opt(&s)
	}

	sc := &scanner{
		settings:  s,
		signature: newSignatureMatcher(address.Parse(s.sender).NormalizedName, s.nameMatchRatio),
	}
	return sc.scan(text)
}

// ParseReply parses a plain-text email body and returns only its visible
// text.
func ParseReply(text string, opts ...ParseOption) string {
	return Parse(text, opts...).VisibleText()
}

// scanner walks the normalized message line by line from the bottom toward
// the top, deciding where fragments begin and end. One scanner serves one
// Parse call.
type scanner struct {
	settings  settings
	signature *signatureMatcher

	// foundVisible is set once a fragment of original content has been
	// finished. Fragments finished before that (everything below it in the
	// message) are hidden unless they give context; fragments finished
	// after it are the author's own flow and stay visible.
	foundVisible bool

	// cur is the fragment under construction, nil between fragments.
	cur *fragmentBuilder

	// done collects finished fragments in bottom-to-top order.
	done []*Fragment
}

func (sc *scanner) scan(text string) *Email {
	lines := strings.Split(normalize(text), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		sc.scanLine(strings.TrimRight(lines[i], " \t"))
	}

	// No blank line precedes the first physical line of the message, so the
	// boundary check has to run once more by hand.
	sc.checkBoundary()
	sc.finishFragment()

	for i, j := 0, len(sc.done)-1; i < j; i, j = i+1, j-1 {
		sc.done[i], sc.done[j] = sc.done[j], sc.done[i]
	}
	return &Email{fragments: sc.done}
}

// scanLine decides whether the line continues the fragment under
// construction or forces a new one.
func (sc *scanner) scanLine(line string) {
	if sc.cur != nil && line == "" {
		sc.checkBoundary()
	}

	quoted := isQuoteMarker(line)
	header := isReplyHeader(line)

	// Some clients (Yahoo! among them) quote replies without ">" markers.
	// When a reply header shows up, whatever is under construction beneath
	// it is the quoted reply, marked or not.
	if sc.cur != nil && header {
		sc.cur.quoted = true
		sc.cur.replyHeader = true
	}

	// The line continues the current fragment when its quoting matches, or
	// when it can bridge into a quoted fragment: blank lines, reply header
	// lines, and the label lines of a folded client header all bridge
	// without flipping the fragment's quoted state.
	if sc.cur != nil && (sc.cur.quoted == quoted ||
		(sc.cur.quoted && (header || line == "" || canExtendQuoteHeader(line, sc.cur.block)))) {
		sc.cur.addLine(line)
		return
	}

	sc.finishFragment()
	sc.cur = newFragmentBuilder(quoted, line)
}

// checkBoundary runs when a blank line is reached (and once at the top of
// the input): if the fragment under construction now starts with a
// signature or forwarded delimiter, or its current block is a folded client
// header, the fragment is flagged and finished on the spot.
func (sc *scanner) checkBoundary() {
	if sc.cur == nil {
		return
	}

	switch last := sc.cur.lastLine(); {
	case isForwardedMessage(last):
		sc.cur.forwarded = true
		sc.finishFragment()
	case sc.signature.matches(last):
		sc.cur.signature = true
		sc.finishFragment()
	case isQuoteHeaderBlock(sc.cur.block, sc.settings.quoteHeaderGroups):
		sc.cur.quoted = true
		sc.cur.replyHeader = true
		sc.finishFragment()
	}
}

// finishFragment seals the fragment under construction and decides its
// visibility. Quoted, signature, reply-header, and blank fragments are
// hidden until the first fragment of original content has been finished;
// everything finished after that point, which sits above it in the
// message, stays visible to preserve the context of inline replies.
func (sc *scanner) finishFragment() {
	if sc.cur == nil {
		return
	}

	f := sc.cur.finish()
	sc.cur = nil

	if !sc.foundVisible {
		if f.quoted || f.signature || f.replyHeader ||
			strings.TrimSpace(f.content) == "" {
			f.hidden = true
		} else {
			sc.foundVisible = true
		}
	}
	sc.done = append(sc.done, f)
}
