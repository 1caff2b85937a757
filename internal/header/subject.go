package header

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	// subjectPattern is anchored on the preceding line terminator so that
	// "Subject: " inside a value is not mistaken for the header itself.
	subjectPattern = []byte("\r\nSubject: ")
	crlf           = []byte("\r\n")
)

// subjectField is subjectPattern without its leading terminator.
func subjectField() []byte {
	return subjectPattern[len(crlf):]
}

// LocateSubject returns the offset of the first byte of the Subject value.
// A Subject header on the very first line of buf is located as well.
func LocateSubject(buf []byte) (int, bool) {
	if bytes.HasPrefix(buf, subjectField()) {
		return len(subjectField()), true
	}

	i := bytes.Index(buf, subjectPattern)
	if i < 0 {
		return 0, false
	}
	return i + len(subjectPattern), true
}

// ExtractUnfolded reads the Subject value that starts at valueStart, joining
// continuation lines. The leading whitespace of a continuation line is kept,
// only the CRLF is removed. The returned end is the offset just past the
// CRLF that terminates the value, or len(buf) if the value runs to the end.
func ExtractUnfolded(buf []byte, valueStart int) (string, int) {
	value, end, _ := unfold(buf, valueStart)
	return decodeUTF8(value), end
}

func unfold(buf []byte, valueStart int) (value []byte, end int, continuations int) {
	pos := valueStart
	for {
		eol := bytes.Index(buf[pos:], crlf)
		if eol < 0 {
			value = append(value, buf[pos:]...)
			return value, len(buf), continuations
		}
		eol += pos

		value = append(value, buf[pos:eol]...)

		next := eol + len(crlf)
		if next >= len(buf) || !isLWSP(buf[next]) {
			return value, next, continuations
		}

		pos = next
		continuations++
	}
}

// isLWSP reports whether b is linear whitespace (SP or HT).
func isLWSP(b byte) bool {
	return b == ' ' || b == '\t'
}

// decodeUTF8 replaces invalid UTF-8 sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// Rewrite returns a copy of buf whose Subject value is replaced by token.
// When span is nil a Subject header is synthesized at the start of the
// buffer and buf follows it unmodified.
func Rewrite(buf []byte, span *Span, token string) []byte {
	var out bytes.Buffer

	if span == nil {
		out.Grow(len(subjectField()) + len(token) + len(crlf) + len(buf))
		out.Write(subjectField())
		out.WriteString(token)
		out.Write(crlf)
		out.Write(buf)
		return out.Bytes()
	}

	out.Grow(span.ValueStart + len(token) + len(crlf) + len(buf) - span.End)
	out.Write(buf[:span.ValueStart])
	out.WriteString(token)
	out.Write(crlf)
	out.Write(buf[span.End:])
	return out.Bytes()
}

// RewriteSubject locates and unfolds the Subject of buf and replaces it with
// token.
func RewriteSubject(buf []byte, token string) Result {
	valueStart, ok := LocateSubject(buf)
	if !ok {
		return Result{Rewritten: Rewrite(buf, nil, token)}
	}

	subject, end := ExtractUnfolded(buf, valueStart)
	span := Span{ValueStart: valueStart, End: end}

	return Result{
		Rewritten:       Rewrite(buf, &span, token),
		OriginalSubject: subject,
		Span:            span,
		Found:           true,
	}
}

// Inspect reports where the Subject of buf is and what it unfolds to.
func Inspect(buf []byte) Report {
	valueStart, ok := LocateSubject(buf)
	if !ok {
		return Report{}
	}

	value, end, continuations := unfold(buf, valueStart)

	return Report{
		Found:         true,
		FirstLine:     valueStart == len(subjectField()),
		ValueStart:    valueStart,
		End:           end,
		Continuations: continuations,
		Subject:       decodeUTF8(value),
	}
}
