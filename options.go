package reply

// Constants related to Parse() options.
const (
	// DefaultNameMatchRatio is the minimum share of a line the sender's
	// normalized name must account for before the line counts as a
	// name-based sign-off. A "Jane Doe" buried in a long sentence is
	// prose; a line that is mostly "Jane Doe" is a signature.
	DefaultNameMatchRatio = 0.25

	// DefaultQuoteHeaderGroups is how many distinct header field groups
	// (From, To, Cc, Reply-To, Date, Subject) a folded block must show
	// before it is accepted as a client quote header.
	DefaultQuoteHeaderGroups = 3
)

type settings struct {
	sender            string
	nameMatchRatio    float64
	quoteHeaderGroups int
}

var defaultSettings = settings{
	nameMatchRatio:    DefaultNameMatchRatio,
	quoteHeaderGroups: DefaultQuoteHeaderGroups,
}

// ParseOption refers to options that may be passed to Parse or ParseReply
// to modify how the parser works.
type ParseOption func(*settings)

// WithSender is a ParseOption that supplies the sender's address, e.g.
// `"Jane Doe" <jane@example.com>`. It enables the name-based signature
// heuristic; all other heuristics work without it. A malformed address
// degrades to parsing without a sender name rather than failing.
func WithSender(address string) ParseOption {
	return func(s *settings) { s.sender = address }
}

// WithNameMatchRatio is a ParseOption that overrides
// DefaultNameMatchRatio. Values at or above 1 effectively require the line
// to be nothing but the name; values at or below 0 accept any line
// containing the name's tokens.
func WithNameMatchRatio(ratio float64) ParseOption {
	return func(s *settings) { s.nameMatchRatio = ratio }
}

// WithQuoteHeaderGroups is a ParseOption that overrides
// DefaultQuoteHeaderGroups.
func WithQuoteHeaderGroups(groups int) ParseOption {
	return func(s *settings) { s.quoteHeaderGroups = groups }
}
