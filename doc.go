// Package reply splits a plain-text email body into the fragments a human
// reader perceives: the content the sender actually wrote, material quoted
// from earlier messages, trailing signatures, and the header lines email
// clients insert above quotations ("On ... wrote:", folded From/To/Date
// blocks, and friends). From those fragments it derives the visible text of
// a message, which is the closest approximation we can get to the words the
// sender typed without any cooperation from the sending client.
//
// There is no reliable delimiter convention for any of this. Clients
// top-post, bottom-post, inline-quote, wrap header lines at 80 columns,
// localize their header labels, and skip ">" markers entirely. The parser
// therefore works heuristically: it normalizes the input, walks the lines
// from the bottom of the message toward the top, and groups runs of lines
// into fragments whose classification stays coherent. A single bottom-up
// sweep then hides everything below the first fragment that looks like
// original content. The heuristics are the well-worn ones from the reply
// parsing lineage every mail tool borrows from, and they carry the same
// documented gaps: a handful of languages for header labels, a handful of
// signature shapes, and no attempt at per-client perfection.
//
// Parsing is total. Any input, including an empty string or binary soup,
// yields a fragment sequence rather than an error. Supplying the sender's
// address via WithSender enables one extra heuristic, detecting sign-offs
// that consist mostly of the sender's own name; leaving it out simply
// disables that check.
//
// The usual entry points are ParseReply, which returns only the visible
// text, and Parse, which returns the full Email with every Fragment and its
// classification flags. Both are pure functions over their input: all
// shared tables are immutable after initialization, so concurrent calls
// need no synchronization.
//
// This package deliberately stops at classification. Decoding transport
// bytes, MIME trees, and attachments is the caller's problem; the
// internal/eml package and the replyview command show one small way to glue
// that together.
package reply
