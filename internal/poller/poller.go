// Package poller finds the mail client window opened for a rewritten
// message by its correlation token and turns it into a document.
package poller

import (
	"context"
	"fmt"

	"github.com/emurenMRz/eml2doc/internal/automation"
	"github.com/sirupsen/logrus"
)

// Request identifies what to look for and where to save it.
type Request struct {
	Source          string // original message file, used in diagnostics
	Token           string
	OriginalSubject string
	Destination     string
	Format          automation.SaveFormat
}

type passResult int

const (
	passNoMatch passResult = iota
	passMatched
	passTransient
)

// Poller scans the open item windows of a mail client.
type Poller struct {
	client automation.Client
	policy Policy
}

func New(client automation.Client, policy Policy) *Poller {
	return &Poller{
		client: client,
		policy: policy,
	}
}

// AwaitAndFinalize scans until a window whose subject equals req.Token shows
// up, restores req.OriginalSubject on it, saves it to req.Destination and
// closes it. It returns false without an error when the retry budget runs
// out. Errors are returned for cancellation and for failures after the
// window was matched.
func (p *Poller) AwaitAndFinalize(ctx context.Context, req Request) (bool, error) {
	log := logrus.WithFields(logrus.Fields{
		"source":      req.Source,
		"destination": req.Destination,
	})

	att := newAttempt(log)
	if err := att.advance(Polling); err != nil {
		return false, err
	}

	budget := p.policy.attempts()

	for pass := 1; pass <= budget; pass++ {
		if err := ctx.Err(); err != nil {
			att.fail()
			return false, err
		}

		res, item, err := p.scan(ctx, req.Token)

		switch res {
		case passMatched:
			log.WithField("attempt", pass).Debug("Found window for correlation token")
			return p.finalize(att, item, req, log)

		case passTransient:
			log.WithError(err).WithField("attempt", pass).Warn("Automation failure while scanning open items")
		}

		if pass < budget {
			if err := wait(ctx, p.policy.delay(pass)); err != nil {
				att.fail()
				return false, err
			}
		}
	}

	if err := att.advance(BudgetExhausted); err != nil {
		return false, err
	}
	att.fail()

	log.WithField("attempts", budget).Error("max attempts exceeded")

	return false, nil
}

// scan makes one pass over the open items. A failure on one item does not
// stop the pass; it is reported only if no item matched.
func (p *Poller) scan(ctx context.Context, token string) (passResult, automation.Item, error) {
	items, err := p.client.OpenItems(ctx)
	if err != nil {
		return passTransient, nil, fmt.Errorf("failed to list open items: %w", err)
	}

	var firstErr error

	for _, item := range items {
		if item == nil {
			continue
		}

		subject, err := item.Subject()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to read item subject: %w", err)
			}
			continue
		}

		if subject == token {
			return passMatched, item, nil
		}
	}

	if firstErr != nil {
		return passTransient, nil, firstErr
	}

	return passNoMatch, nil, nil
}

func (p *Poller) finalize(att *attempt, item automation.Item, req Request, log *logrus.Entry) (bool, error) {
	if err := att.advance(Matched); err != nil {
		return false, err
	}
	if err := att.advance(Finalizing); err != nil {
		return false, err
	}

	if err := item.SetSubject(req.OriginalSubject); err != nil {
		p.discard(item, log)
		att.fail()
		return false, fmt.Errorf("failed to restore subject: %w", err)
	}

	if err := item.SaveAs(req.Destination, req.Format); err != nil {
		p.discard(item, log)
		att.fail()
		return false, fmt.Errorf("failed to save %v document: %w", req.Format, err)
	}

	if err := att.advance(Done); err != nil {
		return false, err
	}

	p.discard(item, log)

	return true, nil
}

func (p *Poller) discard(item automation.Item, log *logrus.Entry) {
	if err := item.Close(true); err != nil {
		log.WithError(err).Warn("Failed to close item window")
	}
}
