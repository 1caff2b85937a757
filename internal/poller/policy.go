package poller

import (
	"context"
	"math"
	"time"
)

// DefaultMaxAttempts is the number of scans made before giving up.
const DefaultMaxAttempts = 100

// Policy bounds how often and how fast the open windows are scanned.
// A zero Backoff scans back to back, relying on the scan's own latency.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration // delay after the first unsuccessful pass, doubled after each
	MaxBackoff  time.Duration // upper bound for the delay; zero means unbounded
}

func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// delay returns the wait after the given (1-based) unsuccessful pass.
func (p Policy) delay(pass int) time.Duration {
	if p.Backoff <= 0 {
		return 0
	}

	d := p.Backoff
	for i := 1; i < pass && d < math.MaxInt64/2; i++ {
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}

	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
