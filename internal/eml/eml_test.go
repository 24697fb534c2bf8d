package eml_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-reply/internal/eml"
)

const singlePart = "From: \"Jane Doe\" <jane@example.com>\r\n" +
	"To: dev@example.com\r\n" +
	"Subject: Re: release\r\n" +
	"Date: Mon, 03 Jan 2011 13:00:00 -0500\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Looks good to me.\r\n" +
	"\r\n" +
	"> Can we ship it?\r\n"

func TestReadSinglePart(t *testing.T) {
	t.Parallel()

	m, err := eml.Read(strings.NewReader(singlePart))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe <jane@example.com>", m.From)
	assert.Equal(t, "Re: release", m.Subject)
	assert.True(t, m.Date.Equal(time.Date(2011, 1, 3, 18, 0, 0, 0, time.UTC)))
	assert.Contains(t, m.Text, "Looks good to me.")
	assert.Contains(t, m.Text, "> Can we ship it?")
}

const multiPart = "From: bob@example.com\r\n" +
	"Subject: hello\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/alternative; boundary=MIXED-BOUNDARY\r\n" +
	"\r\n" +
	"--MIXED-BOUNDARY\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"plain body\r\n" +
	"--MIXED-BOUNDARY\r\n" +
	"Content-Type: text/html; charset=utf-8\r\n" +
	"\r\n" +
	"<p>html body</p>\r\n" +
	"--MIXED-BOUNDARY--\r\n"

func TestReadMultipart(t *testing.T) {
	t.Parallel()

	m, err := eml.Read(strings.NewReader(multiPart))
	require.NoError(t, err)

	assert.Equal(t, "bob@example.com", m.From)
	assert.Equal(t, "hello", m.Subject)
	assert.True(t, m.Date.IsZero())
	assert.Contains(t, m.Text, "plain body")
	assert.NotContains(t, m.Text, "html body")
}

const sloppyDate = "From: carol@example.com\r\n" +
	"Subject: dates\r\n" +
	"Date: 2011-01-03 13:00:00 +0000\r\n" +
	"Content-Type: text/plain\r\n" +
	"\r\n" +
	"body\r\n"

func TestReadSloppyDate(t *testing.T) {
	t.Parallel()

	m, err := eml.Read(strings.NewReader(sloppyDate))
	require.NoError(t, err)
	assert.True(t, m.Date.Equal(time.Date(2011, 1, 3, 13, 0, 0, 0, time.UTC)))
}

func TestReadNotAMessage(t *testing.T) {
	t.Parallel()

	_, err := eml.Read(strings.NewReader("::::\nnot mail at all"))
	assert.Error(t, err)
}
