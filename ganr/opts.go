package ganr

import (
	"errors"
	"time"

	"github.com/gordian-engine/ganr/gassert"
)

// Opt is an option for [NewTracker].
type Opt func(*Tracker) error

// WithInterval sets the time between the starts of consecutive ticks.
// It defaults to the timeout, so that probe windows never overlap,
// and it may not be shorter than the timeout.
func WithInterval(d time.Duration) Opt {
	return func(t *Tracker) error {
		t.interval = d
		return nil
	}
}

// WithStrikes sets how many consecutive missed probes confirm a hang.
// The default is 2.
// A hang is therefore confirmed roughly strikes*timeout after it begins.
func WithStrikes(n int) Opt {
	return func(t *Tracker) error {
		t.strikes = n
		return nil
	}
}

// WithStopTimeout bounds how long [*Tracker.Stop] waits
// for the background goroutine to exit.
// The default is twice the timeout, but at least one second.
func WithStopTimeout(d time.Duration) Opt {
	return func(t *Tracker) error {
		t.stopTimeout = d
		return nil
	}
}

// WithClock replaces the wall clock used for suspension detection and latency.
func WithClock(c Clock) Opt {
	return func(t *Tracker) error {
		if c == nil {
			return errors.New("WithClock: clock must not be nil")
		}
		t.clock = c
		return nil
	}
}

// WithTickObserver registers o to receive every tick's result.
// Only one observer may be set.
func WithTickObserver(o TickObserver) Opt {
	return func(t *Tracker) error {
		if o == nil {
			return errors.New("WithTickObserver: observer must not be nil")
		}
		if t.observer != nil {
			return errors.New("WithTickObserver: observer already set")
		}
		t.observer = o
		return nil
	}
}

// WithAssertEnv sets the assertion environment.
// It only has an effect in builds using the "debug" tag.
func WithAssertEnv(env gassert.Env) Opt {
	return func(t *Tracker) error {
		t.assertEnv = env
		return nil
	}
}

// WithListener registers l before the tracker is first started.
// It is equivalent to calling [*Tracker.AddListener] after construction.
func WithListener(l Listener) Opt {
	return func(t *Tracker) error {
		if l == nil {
			return errors.New("WithListener: listener must not be nil")
		}
		t.listeners.Add(l)
		return nil
	}
}
