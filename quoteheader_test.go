package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuoteHeaderBlock(t *testing.T) {
	t.Parallel()

	assert.True(t, isQuoteHeaderBlock([]string{
		"From: Alice Smith",
		"Sent: Monday, January 3, 2011 1:00 PM",
		"To: Bob Jones",
		"Subject: Re: meeting",
	}, DefaultQuoteHeaderGroups))

	// Folded field values count as continuations of the field above.
	assert.True(t, isQuoteHeaderBlock([]string{
		"From: Alice Smith",
		" alice.smith@example.com",
		"To: Bob Jones",
		"Date: Monday, January 3, 2011",
	}, DefaultQuoteHeaderGroups))

	// Bold markup from rich-text clients.
	assert.True(t, isQuoteHeaderBlock([]string{
		"*From:* Alice Smith",
		"*To:* Bob Jones",
		"*Date:* Monday, January 3, 2011",
	}, DefaultQuoteHeaderGroups))

	// Too few distinct fields.
	assert.False(t, isQuoteHeaderBlock([]string{
		"From: Alice Smith",
		"To: Bob Jones",
	}, DefaultQuoteHeaderGroups))

	// The first line must carry a label.
	assert.False(t, isQuoteHeaderBlock([]string{
		"as I was saying",
		"From: Alice Smith",
		"To: Bob Jones",
		"Date: Monday",
	}, DefaultQuoteHeaderGroups))

	// A repeated field group reads as prose, even across languages.
	assert.False(t, isQuoteHeaderBlock([]string{
		"From: Alice Smith",
		"De: Alicia Herrera",
		"To: Bob Jones",
	}, DefaultQuoteHeaderGroups))

	assert.False(t, isQuoteHeaderBlock(nil, DefaultQuoteHeaderGroups))

	// A raised threshold rejects what the default accepts.
	assert.False(t, isQuoteHeaderBlock([]string{
		"From: Alice Smith",
		"To: Bob Jones",
		"Date: Monday",
	}, 4))
}

func TestIsQuoteHeaderBlockLocales(t *testing.T) {
	t.Parallel()

	assert.True(t, isQuoteHeaderBlock([]string{
		"De : Alice Smith",
		"À : Bob Jones",
		"Envoyé : lundi 3 janvier 2011",
		"Objet : RE : réunion",
	}, DefaultQuoteHeaderGroups), "French")

	assert.True(t, isQuoteHeaderBlock([]string{
		"De: Alicia Herrera",
		"Para: Roberto Juarez",
		"Fecha: lunes, 3 de enero de 2011",
		"Asunto: RE: reunión",
	}, DefaultQuoteHeaderGroups), "Spanish")

	assert.True(t, isQuoteHeaderBlock([]string{
		"De: Alice Silva",
		"Para: Roberto Souza",
		"Data: segunda-feira, 3 de janeiro de 2011",
		"Assunto: RE: reunião",
	}, DefaultQuoteHeaderGroups), "Portuguese")
}

func TestCanExtendQuoteHeader(t *testing.T) {
	t.Parallel()

	block := []string{
		"Sent: Monday, January 3, 2011 1:00 PM",
		"To: Bob Jones",
		"Subject: Re: meeting",
	}

	assert.True(t, canExtendQuoteHeader("From: Alice Smith", block))
	assert.False(t, canExtendQuoteHeader("Date: Monday", block), "Sent already fills the date group")
	assert.False(t, canExtendQuoteHeader("To: Carol", block))
	assert.False(t, canExtendQuoteHeader("as I was saying", block))
	assert.False(t, canExtendQuoteHeader("", block))
	assert.True(t, canExtendQuoteHeader("From: Alice Smith", nil))
}

func TestQuoteHeaderLabel(t *testing.T) {
	t.Parallel()

	g, ok := quoteHeaderLabel("Sent: Monday, January 3, 2011 1:00 PM")
	assert.True(t, ok)
	assert.Equal(t, groupDate, g)

	g, ok = quoteHeaderLabel("Subject: Re: meeting")
	assert.True(t, ok)
	assert.Equal(t, groupSubject, g)

	_, ok = quoteHeaderLabel("X-Mailer: something")
	assert.False(t, ok)

	_, ok = quoteHeaderLabel("no colon here")
	assert.False(t, ok)

	// The label window is capped, so a colon deep in prose does not read as
	// a field.
	_, ok = quoteHeaderLabel("this is a very long line of ordinary prose that eventually reaches a colon: here")
	assert.False(t, ok)
}
