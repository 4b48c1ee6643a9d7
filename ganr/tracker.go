package ganr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordian-engine/ganr/gassert"
	"github.com/gordian-engine/ganr/ganr/internal/anrstate"
	"github.com/gordian-engine/ganr/internal/glog"
)

// Tracker watches a guarded thread for hangs.
//
// A Tracker is inert until [*Tracker.Start].
// Start and Stop may be called any number of times, from any goroutine;
// repeated calls are no-ops, and concurrent calls are serialized.
// Every start begins from a clean debounce state.
//
// There is no package-level tracker.
// Independent trackers, for example one per test, do not interact.
type Tracker struct {
	log *slog.Logger

	timeout     time.Duration
	interval    time.Duration
	strikes     int
	stopTimeout time.Duration

	adapter Adapter
	probe   Probe
	clock   Clock

	observer  TickObserver
	assertEnv gassert.Env

	listeners listenerSet

	// mu serializes Start and Stop and guards the fields below.
	// A non-nil done channel means the tracker is running.
	mu     sync.Mutex
	cancel context.CancelCauseFunc
	done   chan struct{}
}

// NewTracker returns a stopped Tracker that confirms a hang
// once the guarded thread, reached through probe,
// fails to answer within timeout on consecutive ticks.
//
// The adapter is only read; the caller keeps ownership of it.
// No goroutine is created until [*Tracker.Start].
//
// Every invalid setting is reported together in an [InvalidConfigurationError].
func NewTracker(
	log *slog.Logger,
	timeout time.Duration,
	adapter Adapter,
	probe Probe,
	opts ...Opt,
) (*Tracker, error) {
	t := &Tracker{
		log: log,

		timeout:     timeout,
		interval:    timeout,
		strikes:     anrstate.DefaultStrikes,
		stopTimeout: max(2*timeout, time.Second),

		adapter: adapter,
		probe:   probe,
		clock:   realClock{},
	}

	var err error
	for _, opt := range opts {
		err = errors.Join(err, opt(t))
	}
	err = errors.Join(err, t.validate())
	if err != nil {
		return nil, InvalidConfigurationError{Err: err}
	}

	return t, nil
}

// NewTrackerMillis is [NewTracker] with the timeout given
// as an integer count of milliseconds.
func NewTrackerMillis(
	log *slog.Logger,
	timeoutMillis int64,
	adapter Adapter,
	probe Probe,
	opts ...Opt,
) (*Tracker, error) {
	if timeoutMillis > math.MaxInt64/int64(time.Millisecond) {
		return nil, InvalidConfigurationError{
			Err: fmt.Errorf("timeout of %d milliseconds overflows time.Duration", timeoutMillis),
		}
	}

	return NewTracker(log, time.Duration(timeoutMillis)*time.Millisecond, adapter, probe, opts...)
}

func (t *Tracker) validate() error {
	var err error

	if t.log == nil {
		err = errors.Join(err, errors.New("logger must not be nil"))
	}

	if t.timeout <= 0 {
		err = errors.Join(err, fmt.Errorf("timeout must be positive (got %s)", t.timeout))
	}

	if t.interval < t.timeout {
		err = errors.Join(err, fmt.Errorf(
			"interval (%s) must not be shorter than timeout (%s)", t.interval, t.timeout,
		))
	}

	if t.strikes < 1 {
		err = errors.Join(err, fmt.Errorf("strikes must be at least 1 (got %d)", t.strikes))
	}

	if t.stopTimeout <= 0 {
		err = errors.Join(err, fmt.Errorf("stop timeout must be positive (got %s)", t.stopTimeout))
	}

	if t.adapter == nil {
		err = errors.Join(err, errors.New("adapter must not be nil"))
	}

	if t.probe == nil {
		err = errors.Join(err, errors.New("probe must not be nil"))
	}

	return err
}

// Start launches the background goroutine if the tracker is stopped.
// It is a no-op if the tracker is already running.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done != nil {
		return
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go t.run(ctx, done)

	t.log.Info(
		"Started ANR tracker",
		"timeout_ms", glog.Millis(t.timeout),
		"interval_ms", glog.Millis(t.interval),
		"strikes", t.strikes,
	)
}

// Stop signals the background goroutine to exit and waits for it,
// up to the configured stop timeout.
// It is a no-op if the tracker is already stopped.
//
// A probe already dispatched to the guarded thread is not recalled;
// if it runs later, it is ignored.
// No listener is called after Stop returns,
// unless the wait timed out (see [StopTimeoutError]).
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		return
	}

	t.cancel(errStopped)

	timer := time.NewTimer(t.stopTimeout)
	defer timer.Stop()

	done := t.done
	t.cancel = nil
	t.done = nil

	select {
	case <-done:
		t.log.Info("Stopped ANR tracker")
	case <-timer.C:
		handleStopTimeout(t.assertEnv, t.log, StopTimeoutError{Timeout: t.stopTimeout})
	}
}

// Running reports whether the tracker has been started and not since stopped.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done != nil
}

// AddListener registers l for future hang events.
// It reports false, and changes nothing, if l was already registered.
// It is safe to call at any time, including from within a listener.
func (t *Tracker) AddListener(l Listener) bool {
	if l == nil {
		panic(errors.New("BUG: (*Tracker).AddListener called with nil Listener"))
	}
	return t.listeners.Add(l)
}

// RemoveListener unregisters l.
// It reports false if l was not registered.
// A listener removed during a notification round
// may still receive the event of that round.
func (t *Tracker) RemoveListener(l Listener) bool {
	return t.listeners.Remove(l)
}
