package header

// Span is the byte range of a Subject value inside a raw message.
type Span struct {
	ValueStart int // first byte after "Subject: "
	End        int // first byte after the CRLF that ends the (unfolded) value
}

// Result is the outcome of rewriting one message.
type Result struct {
	Rewritten       []byte
	OriginalSubject string
	Span            Span
	Found           bool // false when the Subject header was synthesized
}

// Report describes how the Subject header of a message was located.
type Report struct {
	Found         bool   `json:"found"`
	FirstLine     bool   `json:"firstLine"`
	ValueStart    int    `json:"valueStart"`
	End           int    `json:"end"`
	Continuations int    `json:"continuations"` // folded lines after the first
	Subject       string `json:"subject"`
}
