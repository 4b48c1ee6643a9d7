package ganr

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gordian-engine/ganr/ganr/internal/anrstate"
	"github.com/gordian-engine/ganr/internal/glog"
)

// run is the tracker's background goroutine.
// It is the only code that reads or writes the debounce state,
// and it runs one tick at a time until ctx is canceled.
func (t *Tracker) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	m := anrstate.NewMachine(t.strikes)

	// Last delivered event, for the debug-build ordering invariant.
	var last Event

	for seq := uint64(1); ; seq++ {
		tickStart := time.Now()

		res, ok := t.tick(ctx, m, seq)
		if !ok {
			return
		}

		if res.Event != 0 {
			invariantEventOrder(t.assertEnv, last, res.Event)
			last = res.Event

			t.log.Info("Guarded thread hang state changed", "tick", res)
			t.notify(res.Event)
		} else {
			t.log.Debug("Watchdog tick", "tick", res)
		}

		if t.observer != nil {
			t.safeCall("tick observer", func() { t.observer.ObserveTick(res) })
		}

		// Sleep out the rest of the interval, so that a quickly answered probe
		// does not shorten the time between round trips.
		wait := t.interval - time.Since(tickStart)
		if wait <= 0 {
			if ctx.Err() != nil {
				return
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// tick performs one probe round trip and feeds it to m.
// It reports false if ctx was canceled before the round trip resolved,
// in which case m is untouched.
func (t *Tracker) tick(ctx context.Context, m *anrstate.Machine, seq uint64) (TickResult, bool) {
	sup := t.suppression()

	start := t.clock.Now()
	o, ok := t.roundTrip(ctx)
	if !ok {
		return TickResult{}, false
	}
	latency := t.clock.Now().Sub(start)

	// A debugger may have paused the process during the round trip,
	// so ask again; either answer suppresses the tick.
	if sup == SuppressionNone {
		sup = t.suppression()
	}

	if sup == SuppressionNone && latency >= 2*t.timeout {
		// The timer in roundTrip bounds a live process to about one timeout.
		// Far longer means the whole process was frozen, not just the guarded thread.
		sup = SuppressionSuspended
	}

	if sup != SuppressionNone {
		t.log.Debug(
			"Suppressing watchdog tick",
			"reason", sup.describe(),
			"latency_ms", glog.Millis(latency),
		)
	}

	tr := m.OnTick(o, sup != SuppressionNone)

	res := TickResult{
		Seq:               seq,
		Answered:          o == anrstate.OutcomeAnswered,
		Latency:           latency,
		Suppression:       sup,
		ConsecutiveMisses: m.Misses(),
	}

	switch tr {
	case anrstate.TransitionHangStarted:
		res.Event = HangStarted
	case anrstate.TransitionHangEnded:
		res.Event = HangEnded
	}

	return res, true
}

func (t *Tracker) suppression() Suppression {
	if t.adapter.IsDebuggerAttached() {
		return SuppressionDebugger
	}

	if fr, ok := t.adapter.(ForegroundReporter); ok && !fr.IsApplicationInForeground() {
		return SuppressionBackground
	}

	return SuppressionNone
}

// roundTrip dispatches a callback to the guarded thread
// and races it against the timeout.
// It never waits past the deadline and reports false only if ctx is canceled first.
func (t *Tracker) roundTrip(ctx context.Context) (anrstate.Outcome, bool) {
	answered := make(chan struct{})

	// The probe contract says the callback runs at most once,
	// but a second close would panic on the guarded thread itself.
	ping := sync.OnceFunc(func() { close(answered) })

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	if !t.dispatch(ping) {
		// The guarded thread could not even be reached.
		return anrstate.OutcomeMissed, true
	}

	select {
	case <-ctx.Done():
		return anrstate.OutcomeUnspecified, false
	case <-answered:
		return anrstate.OutcomeAnswered, true
	case <-timer.C:
		// The runtime picks randomly among ready cases,
		// so the callback may have run just before the timer fired.
		// One last non-blocking check avoids a false miss.
		select {
		case <-answered:
			return anrstate.OutcomeAnswered, true
		default:
			return anrstate.OutcomeMissed, true
		}
	}
}

// dispatch hands fn to the probe, recovering a panicking probe.
func (t *Tracker) dispatch(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Warn("Probe panicked while dispatching to guarded thread", "panic", r)
			ok = false
		}
	}()

	t.probe.RunOnGuardedThread(fn)
	return true
}

// notify delivers ev to a snapshot of the registered listeners, one at a time.
func (t *Tracker) notify(ev Event) {
	for _, l := range t.listeners.Snapshot() {
		t.safeCall(fmt.Sprintf("listener %T", l), func() { l.HandleHangEvent(ev) })
	}
}

// safeCall runs fn, logging instead of propagating a panic,
// so that one faulty callback cannot stop the others or halt the loop.
func (t *Tracker) safeCall(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Warn("Recovered panic in ANR tracker callback", "callback", what, "panic", r)
		}
	}()

	fn()
}
