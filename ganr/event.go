package ganr

import (
	"fmt"
	"log/slog"
	"time"
)

// Event is a hang notification delivered to a [Listener].
type Event uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Event

const (
	// HangStarted is delivered once the guarded thread
	// has missed enough consecutive probes to confirm a hang.
	HangStarted Event = iota + 1

	// HangEnded is delivered when the guarded thread answers a probe
	// after a HangStarted.
	HangEnded
)

// Listener receives hang events.
//
// HandleHangEvent is called on the tracker's background goroutine,
// never on the guarded thread;
// listeners that must act on the guarded thread have to dispatch there themselves.
// Calls for one tracker are never concurrent.
// A listener that blocks delays the next tick,
// and it must not call [*Tracker.Stop] synchronously,
// since Stop waits for the goroutine that is running the listener.
//
// Listener values are compared with == to deduplicate registrations,
// so the dynamic type must be comparable; pointers are the usual choice.
type Listener interface {
	HandleHangEvent(Event)
}

type funcListener struct {
	fn func(Event)
}

func (l *funcListener) HandleHangEvent(e Event) { l.fn(e) }

// ListenerFunc wraps fn as a [Listener].
// Each call returns a distinct listener,
// so keep the returned value to remove it later.
func ListenerFunc(fn func(Event)) Listener {
	return &funcListener{fn: fn}
}

// Suppression is why a tick was excluded from hang detection.
type Suppression uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Suppression -trimprefix=Suppression

const (
	SuppressionNone Suppression = iota

	// The adapter reported an attached debugger.
	SuppressionDebugger

	// The adapter reported the application was not in the foreground.
	SuppressionBackground

	// The round trip took at least twice the timeout by the wall clock,
	// which means the process was suspended rather than the thread hung.
	SuppressionSuspended
)

// TickResult summarizes one watchdog tick for a [TickObserver].
type TickResult struct {
	// Seq counts ticks since the most recent start, beginning at 1.
	Seq uint64

	// Answered is set when the guarded thread ran the probe before the deadline.
	Answered bool

	// Latency is the wall-clock duration of the round trip.
	// For a missed probe this is approximately the timeout.
	Latency time.Duration

	Suppression Suppression

	// ConsecutiveMisses is the debounce count after this tick.
	ConsecutiveMisses int

	// Event is the event this tick produced, or zero for none.
	Event Event
}

func (r TickResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("seq", r.Seq),
		slog.Bool("answered", r.Answered),
		slog.Int64("latency_ms", r.Latency.Milliseconds()),
		slog.Int("misses", r.ConsecutiveMisses),
	}
	if r.Suppression != SuppressionNone {
		attrs = append(attrs, slog.String("suppression", r.Suppression.String()))
	}
	if r.Event != 0 {
		attrs = append(attrs, slog.String("event", r.Event.String()))
	}
	return slog.GroupValue(attrs...)
}

// TickObserver receives a [TickResult] after every tick,
// on the tracker's background goroutine.
// It is intended for metrics; see package ganrprom.
type TickObserver interface {
	ObserveTick(TickResult)
}

func (s Suppression) describe() string {
	switch s {
	case SuppressionDebugger:
		return "debugger attached"
	case SuppressionBackground:
		return "application in background"
	case SuppressionSuspended:
		return "process suspended"
	default:
		return fmt.Sprintf("unknown suppression %d", s)
	}
}
