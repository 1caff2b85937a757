package poller

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle stage of one conversion attempt after launch.
type State int

const (
	Launched State = iota
	Polling
	Matched
	Finalizing
	Done
	BudgetExhausted
	Failed
)

func (s State) String() string {
	switch s {
	case Launched:
		return "launched"
	case Polling:
		return "polling"
	case Matched:
		return "matched"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	case BudgetExhausted:
		return "budget-exhausted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

var transitions = map[State][]State{
	Launched:        {Polling},
	Polling:         {Matched, BudgetExhausted, Failed},
	Matched:         {Finalizing},
	Finalizing:      {Done, Failed},
	BudgetExhausted: {Failed},
}

type attempt struct {
	state State
	log   *logrus.Entry
}

func newAttempt(log *logrus.Entry) *attempt {
	return &attempt{state: Launched, log: log}
}

func (a *attempt) advance(next State) error {
	for _, s := range transitions[a.state] {
		if s == next {
			a.state = next
			if a.log != nil {
				a.log.WithField("state", next).Debug("Attempt state changed")
			}
			return nil
		}
	}

	return fmt.Errorf("invalid transition %v -> %v", a.state, next)
}

// fail moves the attempt to Failed. Reaching Failed from a state that does
// not allow it is only logged, the caller is already returning.
func (a *attempt) fail() {
	if err := a.advance(Failed); err != nil && a.log != nil {
		a.log.WithError(err).Warn("Attempt state machine out of sync")
	}
}
