// Package source reads the message to convert and stores its rewritten copy.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/emersion/go-imap/utf7"
	"github.com/emersion/go-mbox"
	"github.com/google/uuid"
)

// ErrNoMessage is returned when an mbox holds fewer messages than requested.
var ErrNoMessage = errors.New("no such message in mailbox")

// Load returns the raw bytes of the message to convert. With index < 0 path
// is a single message file; otherwise path is an mbox file and the message
// at index (0-based) is returned with its envelope line removed.
func Load(path string, index int) ([]byte, error) {
	if index < 0 {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read message: %w", err)
		}
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mailbox: %w", err)
	}
	defer f.Close()

	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		msg, err := reader.NextMessage()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %d in %s", ErrNoMessage, index, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read mailbox %s: %w", path, err)
		}

		if i != index {
			continue
		}

		b, err := io.ReadAll(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to read message %d: %w", index, err)
		}
		return b, nil
	}
}

// MailboxPath returns the file holding the named mailbox under dir. Mailbox
// files are stored under their IMAP-UTF7 encoded names.
func MailboxPath(dir, name string) (string, error) {
	encoded, err := utf7.Encoding.NewEncoder().String(name)
	if err != nil {
		return "", fmt.Errorf("invalid mailbox name %q: %w", name, err)
	}
	return filepath.Join(dir, encoded), nil
}

// WriteTemp stores data in a new uniquely named .eml file under dir (the
// system temp directory if dir is empty) and returns its path. The
// extension routes the file to the mail client's default handler.
func WriteTemp(dir string, data []byte) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, uuid.NewString()+".eml")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return path, nil
}
