// Package eml pulls the pieces the reply parser cares about out of a raw
// RFC 822 message: the plain-text body, the sender, and the date. It is
// glue for the replyview command, not a general message parser.
package eml

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/zostay/go-addr/pkg/addr"
	"golang.org/x/text/encoding/charmap"
)

func init() {
	// Charsets commonly seen in real mail that go-message does not register
	// on its own.
	charset.RegisterEncoding("windows-1252", charmap.Windows1252)
	charset.RegisterEncoding("iso-8859-1", charmap.ISO8859_1)
	charset.RegisterEncoding("iso-8859-15", charmap.ISO8859_15)
}

// Message carries the parts of a raw message the reply parser consumes.
type Message struct {
	// From is the sender in "Name <email>" form, best effort.
	From string

	// Subject is the decoded subject line.
	Subject string

	// Date is the message date, zero when the header is absent or beyond
	// saving.
	Date time.Time

	// Text is the first text/plain body part. HTML-only messages leave it
	// empty.
	Text string
}

// Read parses a raw message from r.
func Read(r io.Reader) (*Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read message: %w", err)
	}

	m := &Message{}
	m.Subject, _ = mr.Header.Subject()
	m.From = sender(mr.Header)
	m.Date = date(mr.Header)

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read message part: %w", err)
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		ct, _, _ := h.ContentType()
		if m.Text != "" || !strings.HasPrefix(ct, "text/plain") {
			continue
		}

		body, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("unable to read message body: %w", err)
		}
		m.Text = string(body)
	}

	return m, nil
}

// sender renders the From header as "Name <email>". Strict parsing is
// tried first; go-addr picks up the weird-but-common headers the strict
// parser rejects, and a header neither can stomach is passed through
// verbatim.
func sender(h mail.Header) string {
	if from, err := h.AddressList("From"); err == nil && len(from) > 0 {
		if from[0].Name != "" {
			return fmt.Sprintf("%s <%s>", from[0].Name, from[0].Address)
		}
		return from[0].Address
	}

	raw := h.Get("From")
	al, err := addr.ParseEmailAddressList(raw)
	if err != nil || len(al) == 0 {
		return raw
	}
	if dn := al[0].DisplayName(); dn != "" {
		return fmt.Sprintf("%s <%s>", dn, al[0].Address())
	}
	return al[0].Address()
}

// date parses the Date header, falling back to dateparse for the formats
// broken clients emit.
func date(h mail.Header) time.Time {
	if t, err := h.Date(); err == nil {
		return t
	}
	if t, err := dateparse.ParseAny(h.Get("Date")); err == nil {
		return t
	}
	return time.Time{}
}
