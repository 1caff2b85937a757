package header

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/emersion/go-message/textproto"
)

// ErrTokenNotVisible means the rewritten message parses, but a mail client
// reading its top-level header would not see the token as the subject.
var ErrTokenNotVisible = errors.New("correlation token is not the top-level subject")

// Verify checks that the top-level header of a rewritten message carries
// token as its Subject.
func Verify(rewritten []byte, token string) error {
	h, err := textproto.ReadHeader(bufio.NewReader(bytes.NewReader(rewritten)))
	if err != nil {
		return fmt.Errorf("failed to parse rewritten header: %w", err)
	}

	if subject := h.Get("Subject"); subject != token {
		return fmt.Errorf("%w: got %q", ErrTokenNotVisible, subject)
	}

	return nil
}
