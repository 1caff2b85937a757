// Package convert runs one conversion attempt: rewrite the subject of a
// message to a correlation token, open the rewritten copy in the mail client
// and wait for the matching window to be saved as a document.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/emurenMRz/eml2doc/internal/automation"
	"github.com/emurenMRz/eml2doc/internal/header"
	"github.com/emurenMRz/eml2doc/internal/poller"
	"github.com/emurenMRz/eml2doc/internal/source"
	"github.com/sirupsen/logrus"
)

// Opener hands a file to the program registered for it.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Finalizer waits for the opened message and saves it.
type Finalizer interface {
	AwaitAndFinalize(ctx context.Context, req poller.Request) (bool, error)
}

type Options struct {
	TempDir string // empty means the system temp directory
	Format  automation.SaveFormat
}

// Job names one message and where its document goes.
type Job struct {
	Source      string
	Index       int // message index when Source is an mbox, otherwise -1
	Destination string
}

type Converter struct {
	opener    Opener
	finalizer Finalizer
	opts      Options
	newToken  func() (string, error)
}

func New(opener Opener, finalizer Finalizer, opts Options) *Converter {
	return &Converter{
		opener:    opener,
		finalizer: finalizer,
		opts:      opts,
		newToken:  header.NewToken,
	}
}

// Convert performs one attempt. It returns false without an error when the
// mail client never showed the message within the poller's budget. The
// temporary rewritten message is removed before returning.
func (c *Converter) Convert(ctx context.Context, job Job) (bool, error) {
	log := logrus.WithFields(logrus.Fields{
		"source":      job.Source,
		"destination": job.Destination,
	})

	raw, err := source.Load(job.Source, job.Index)
	if err != nil {
		return false, err
	}

	token, err := c.newToken()
	if err != nil {
		return false, err
	}

	res := header.RewriteSubject(raw, token)
	if !res.Found {
		log.Debug("No Subject header found, synthesizing one")
	}

	if err := header.Verify(res.Rewritten, token); err != nil {
		if errors.Is(err, header.ErrTokenNotVisible) {
			return false, fmt.Errorf("cannot correlate %s: %w", job.Source, err)
		}
		log.WithError(err).Warn("Rewritten header could not be parsed")
	}

	tmp, err := source.WriteTemp(c.opts.TempDir, res.Rewritten)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("temp", tmp).Warn("Failed to remove temp file")
		}
	}()

	log.WithFields(logrus.Fields{
		"token": token,
		"temp":  tmp,
	}).Debug("Opening rewritten message")

	if err := c.opener.Open(ctx, tmp); err != nil {
		return false, err
	}

	return c.finalizer.AwaitAndFinalize(ctx, poller.Request{
		Source:          job.Source,
		Token:           token,
		OriginalSubject: res.OriginalSubject,
		Destination:     job.Destination,
		Format:          c.opts.Format,
	})
}
