// Package anrstate contains the debounce state machine behind ganr.
//
// The [Machine] turns a sequence of per-tick probe outcomes
// into hang start and hang end transitions.
// It never touches timers, goroutines or locks,
// so every branch can be tested without waiting on the clock.
package anrstate

import "fmt"

// DefaultStrikes is the number of consecutive missed probes
// required to confirm a hang.
// One miss alone is too easily caused by scheduler delay or a GC pause.
const DefaultStrikes = 2

// Outcome is the result of one probe round trip.
type Outcome uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Outcome -trimprefix=Outcome

const (
	// OutcomeUnspecified is the zero value.
	// Passing it to [*Machine.OnTick] is a bug.
	OutcomeUnspecified Outcome = iota

	// The guarded thread ran the probe callback before the deadline.
	OutcomeAnswered

	// The deadline elapsed before the probe callback ran.
	OutcomeMissed
)

// State is the debounce state held by a [Machine].
type State uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type State -trimprefix=State

const (
	// No miss outstanding.
	StateIdle State = iota

	// At least one miss, but fewer than the strike count.
	StateSuspected

	// The strike count was reached and a hang start was emitted.
	// Stays here until an answered probe ends the hang.
	StateConfirmed
)

// Transition is what a single tick produced.
// Most ticks produce TransitionNone.
type Transition uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Transition -trimprefix=Transition

const (
	TransitionNone Transition = iota
	TransitionHangStarted
	TransitionHangEnded
)

// Machine is the two-strike (by default) debounce state machine.
//
// Machine is not safe for concurrent use.
// The watchdog loop owns exactly one Machine per run
// and only touches it from its own goroutine.
type Machine struct {
	strikes int

	misses int
	state  State
}

// NewMachine returns a Machine in [StateIdle]
// that confirms a hang after strikes consecutive misses.
// It panics if strikes is less than one;
// callers are expected to have validated configuration already.
func NewMachine(strikes int) *Machine {
	if strikes < 1 {
		panic(fmt.Errorf("BUG: anrstate.NewMachine requires strikes >= 1 (got %d)", strikes))
	}

	return &Machine{strikes: strikes}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Misses returns the count of consecutive missed probes
// since the last answered or suppressed tick.
func (m *Machine) Misses() int {
	return m.misses
}

// OnTick feeds one tick into the machine and returns the resulting transition.
//
// If suppressed is set (a debugger is attached, the application is not
// in the foreground, or the process was suspended), o is ignored entirely
// and any accumulated misses are forgotten.
// A hang that was already confirmed stays confirmed through suppression,
// so that every [TransitionHangStarted] is paired with exactly one
// [TransitionHangEnded] before the next start.
// No transition is ever returned for a suppressed tick.
func (m *Machine) OnTick(o Outcome, suppressed bool) Transition {
	if suppressed {
		m.misses = 0
		if m.state != StateConfirmed {
			m.state = StateIdle
		}
		return TransitionNone
	}

	switch o {
	case OutcomeAnswered:
		wasConfirmed := m.state == StateConfirmed
		m.misses = 0
		m.state = StateIdle
		if wasConfirmed {
			return TransitionHangEnded
		}
		return TransitionNone

	case OutcomeMissed:
		if m.state == StateConfirmed {
			// Already reported; an ongoing hang is not reported twice.
			return TransitionNone
		}

		m.misses++
		if m.misses >= m.strikes {
			m.state = StateConfirmed
			return TransitionHangStarted
		}

		m.state = StateSuspected
		return TransitionNone

	default:
		panic(fmt.Errorf("BUG: anrstate.Machine.OnTick called with invalid outcome %s", o))
	}
}
