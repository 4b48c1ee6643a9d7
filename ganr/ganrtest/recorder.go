package ganrtest

import (
	"github.com/gordian-engine/ganr/ganr"
)

// Recorder is a ganr.Listener and ganr.TickObserver
// that forwards everything it receives onto buffered channels.
type Recorder struct {
	events chan ganr.Event
	ticks  chan ganr.TickResult
}

// NewRecorder returns a Recorder whose channels hold bufSize values each.
// Once a channel is full, the tracker blocks on it,
// so size the buffer for the test's expected volume.
func NewRecorder(bufSize int) *Recorder {
	return &Recorder{
		events: make(chan ganr.Event, bufSize),
		ticks:  make(chan ganr.TickResult, bufSize),
	}
}

func (r *Recorder) HandleHangEvent(e ganr.Event) {
	r.events <- e
}

func (r *Recorder) ObserveTick(res ganr.TickResult) {
	select {
	case r.ticks <- res:
	default:
		// Tick volume is unbounded over a long test,
		// so drop rather than stall the tracker.
	}
}

// Events returns the channel of received hang events.
func (r *Recorder) Events() <-chan ganr.Event {
	return r.events
}

// Ticks returns the channel of observed tick results.
func (r *Recorder) Ticks() <-chan ganr.TickResult {
	return r.ticks
}

var (
	_ ganr.Listener           = (*Recorder)(nil)
	_ ganr.TickObserver       = (*Recorder)(nil)
	_ ganr.Adapter            = (*Adapter)(nil)
	_ ganr.ForegroundReporter = (*Adapter)(nil)
	_ ganr.Probe              = (*Probe)(nil)
	_ ganr.Clock              = (*Clock)(nil)
)
