package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "3f0d8a52-7c1e-4c1b-9a57-1d2e0c9b6f11"

func TestLocateSubject(t *testing.T) {
	buf := []byte("From: a\r\nSubject: Hello\r\nTo: b\r\n")

	start, ok := LocateSubject(buf)
	require.True(t, ok)
	assert.Equal(t, "Hello\r\nTo: b\r\n", string(buf[start:]))
}

func TestLocateSubject_FirstLine(t *testing.T) {
	start, ok := LocateSubject([]byte("Subject: Hello\r\nTo: b\r\n"))
	require.True(t, ok)
	assert.Equal(t, 9, start)
}

func TestLocateSubject_NotAtLineStart(t *testing.T) {
	for _, buf := range []string{
		"",
		"From: a\r\nTo: b\r\n",
		"From: a\r\nX-Subject: Hello\r\n",
		"From: a\r\nsubject: Hello\r\n",
		"From: a\r\nSubject:Hello\r\n",
		"From: a\nSubject: Hello\n",
	} {
		_, ok := LocateSubject([]byte(buf))
		assert.False(t, ok, "%q", buf)
	}
}

func TestExtractUnfolded(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		subject string
		rest    string
	}{
		{
			name:    "single line",
			buf:     "From: a\r\nSubject: Hello\r\nTo: b\r\n",
			subject: "Hello",
			rest:    "To: b\r\n",
		},
		{
			name:    "folded with space",
			buf:     "From: a\r\nSubject: Hello\r\n World\r\nTo: b\r\n",
			subject: "Hello World",
			rest:    "To: b\r\n",
		},
		{
			name:    "folded with tab",
			buf:     "From: a\r\nSubject: this is\r\n\ta multiline\r\n  field\r\nTo: b\r\n",
			subject: "this is\ta multiline  field",
			rest:    "To: b\r\n",
		},
		{
			name:    "value at end of buffer",
			buf:     "From: a\r\nSubject: Hello",
			subject: "Hello",
			rest:    "",
		},
		{
			name:    "terminator at end of buffer",
			buf:     "From: a\r\nSubject: Hello\r\n",
			subject: "Hello",
			rest:    "",
		},
		{
			name:    "continuation at end of buffer",
			buf:     "From: a\r\nSubject: Hello\r\n World",
			subject: "Hello World",
			rest:    "",
		},
		{
			name:    "empty value",
			buf:     "From: a\r\nSubject: \r\nTo: b\r\n",
			subject: "",
			rest:    "To: b\r\n",
		},
		{
			name:    "body follows",
			buf:     "From: a\r\nSubject: Hello\r\n\r\nbody\r\n",
			subject: "Hello",
			rest:    "\r\nbody\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.buf)

			start, ok := LocateSubject(buf)
			require.True(t, ok)

			subject, end := ExtractUnfolded(buf, start)
			assert.Equal(t, tt.subject, subject)
			assert.Equal(t, tt.rest, string(buf[end:]))
		})
	}
}

func TestExtractUnfolded_InvalidUTF8(t *testing.T) {
	buf := []byte("\r\nSubject: caf\xe9\r\n")

	subject, _ := ExtractUnfolded(buf, len(subjectPattern))
	assert.Equal(t, "caf�", subject)
}

func TestExtractUnfolded_UTF8(t *testing.T) {
	buf := []byte("\r\nSubject: こんにちは\r\n")

	subject, _ := ExtractUnfolded(buf, len(subjectPattern))
	assert.Equal(t, "こんにちは", subject)
}

func TestRewriteSubject(t *testing.T) {
	res := RewriteSubject([]byte("From: a\r\nSubject: Hello\r\nTo: b\r\n"), token)

	require.True(t, res.Found)
	assert.Equal(t, "Hello", res.OriginalSubject)
	assert.Equal(t, "From: a\r\nSubject: "+token+"\r\nTo: b\r\n", string(res.Rewritten))
}

func TestRewriteSubject_Folded(t *testing.T) {
	res := RewriteSubject([]byte("From: a\r\nSubject: Hello\r\n World\r\nTo: b\r\n"), token)

	require.True(t, res.Found)
	assert.Equal(t, "Hello World", res.OriginalSubject)
	assert.Equal(t, "From: a\r\nSubject: "+token+"\r\nTo: b\r\n", string(res.Rewritten))
}

func TestRewriteSubject_Missing(t *testing.T) {
	orig := "From: a\r\nTo: b\r\n\r\nno subject here\r\n"

	res := RewriteSubject([]byte(orig), token)

	assert.False(t, res.Found)
	assert.Equal(t, "", res.OriginalSubject)
	assert.Equal(t, "Subject: "+token+"\r\n"+orig, string(res.Rewritten))
}

func TestRewriteSubject_Empty(t *testing.T) {
	res := RewriteSubject(nil, token)

	assert.False(t, res.Found)
	assert.Equal(t, "Subject: "+token+"\r\n", string(res.Rewritten))
}

func TestRewriteSubject_FirstLine(t *testing.T) {
	res := RewriteSubject([]byte("Subject: Hello\r\nTo: b\r\n"), token)

	require.True(t, res.Found)
	assert.Equal(t, "Hello", res.OriginalSubject)
	assert.Equal(t, "Subject: "+token+"\r\nTo: b\r\n", string(res.Rewritten))
}

func TestRewriteSubject_DoesNotMutateInput(t *testing.T) {
	orig := "From: a\r\nSubject: Hello\r\n World\r\nTo: b\r\n"
	buf := []byte(orig)

	_ = RewriteSubject(buf, token)

	assert.Equal(t, orig, string(buf))
}

func TestRewriteSubject_PreservesOutsideSpan(t *testing.T) {
	buf := []byte("Received: x\r\n y\r\nFrom: a\r\nSubject: one\r\n\ttwo\r\nTo: b\r\n\r\nSubject: body line\r\n")

	res := RewriteSubject(buf, token)
	require.True(t, res.Found)

	prefix := res.Rewritten[:res.Span.ValueStart]
	suffix := res.Rewritten[res.Span.ValueStart+len(token)+len(crlf):]

	assert.Equal(t, buf[:res.Span.ValueStart], prefix)
	assert.Equal(t, buf[res.Span.End:], suffix)
}

func TestRewriteSubject_Relocate(t *testing.T) {
	for _, buf := range []string{
		"From: a\r\nSubject: Hello\r\nTo: b\r\n",
		"From: a\r\nSubject: Hello\r\n World\r\nTo: b\r\n",
		"From: a\r\nTo: b\r\n",
		"",
	} {
		res := RewriteSubject([]byte(buf), token)

		start, ok := LocateSubject(res.Rewritten)
		require.True(t, ok, "%q", buf)

		subject, _ := ExtractUnfolded(res.Rewritten, start)
		assert.Equal(t, token, subject, "%q", buf)
	}
}

func TestRewriteSubject_RecoverFromDiscardedSegment(t *testing.T) {
	for _, subject := range []string{"Hello", "Re: [list] status", "", "naïve café"} {
		buf := []byte("From: a\r\nSubject: " + subject + "\r\nTo: b\r\n")

		res := RewriteSubject(buf, token)
		require.True(t, res.Found)

		discarded := buf[res.Span.ValueStart : res.Span.End-len(crlf)]
		assert.Equal(t, subject, string(discarded))
		assert.Equal(t, subject, res.OriginalSubject)
	}
}

func TestInspect(t *testing.T) {
	report := Inspect([]byte("From: a\r\nSubject: Hello\r\n World\r\n\tagain\r\nTo: b\r\n"))

	assert.True(t, report.Found)
	assert.False(t, report.FirstLine)
	assert.Equal(t, 2, report.Continuations)
	assert.Equal(t, "Hello World\tagain", report.Subject)

	assert.Equal(t, Report{}, Inspect([]byte("To: b\r\n")))
	assert.True(t, Inspect([]byte("Subject: x\r\n")).FirstLine)
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)

	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
