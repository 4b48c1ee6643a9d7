package ganr

import "time"

// Adapter reports runtime conditions of the host process.
//
// IsDebuggerAttached is called at least once per tick,
// so it must be cheap and must not block.
type Adapter interface {
	IsDebuggerAttached() bool
}

// ForegroundReporter is an optional extension of [Adapter].
// When the adapter passed to [NewTracker] implements it,
// ticks taken while the application is not in the foreground
// are suppressed, because a backgrounded application's guarded thread
// is commonly throttled by the operating system.
type ForegroundReporter interface {
	IsApplicationInForeground() bool
}

// Probe dispatches work onto the guarded thread.
//
// RunOnGuardedThread must return promptly without waiting for fn to run.
// fn should run as soon as the guarded thread is free,
// in roughly the order it was submitted.
// If fn never runs, that is simply a missed probe;
// if it runs after the deadline, the late run is ignored.
type Probe interface {
	RunOnGuardedThread(fn func())
}

// Clock supplies wall-clock time.
// The tracker uses it to notice that the whole process was suspended
// during a probe, which must not be mistaken for a hang.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
