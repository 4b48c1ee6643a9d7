package ganrtest

import (
	"sync"
)

// Step scripts how a [Probe] handles one dispatch.
type Step uint8

const (
	// Answer runs the callback promptly on a separate goroutine,
	// as an idle guarded thread would.
	Answer Step = iota

	// Miss holds the callback without running it,
	// as a hung guarded thread would.
	// Held callbacks can be run late with [*Probe.ReleaseHeld].
	Miss
)

// Probe is a fake ganr.Probe that follows a script of [Step] values,
// one per dispatch, and then repeats a default step.
//
// Answered callbacks run on a new goroutine, never on the caller's goroutine,
// matching the cross-thread behavior of a real probe.
type Probe struct {
	mu     sync.Mutex
	script []Step
	dflt   Step
	held   []func()
	hook   func(n int)
	n      int

	dispatched chan int
}

// NewProbe returns a Probe that plays steps in order, then answers.
func NewProbe(steps ...Step) *Probe {
	return &Probe{
		script: steps,
		dflt:   Answer,

		// Large enough that tests reading only some values never block the tracker.
		dispatched: make(chan int, 4096),
	}
}

// Then sets the step used once the script is exhausted.
// It returns p for chaining.
func (p *Probe) Then(s Step) *Probe {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dflt = s
	return p
}

// Append adds steps to the end of the remaining script.
func (p *Probe) Append(steps ...Step) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, steps...)
}

// OnDispatch sets a hook called with the 1-based dispatch number
// before each dispatch is handled.
// The hook runs synchronously on the tracker's goroutine,
// so it must not call ganr.Tracker.Stop directly;
// start a goroutine for that.
func (p *Probe) OnDispatch(hook func(n int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hook = hook
}

// Dispatched returns a channel that receives each dispatch number.
func (p *Probe) Dispatched() <-chan int {
	return p.dispatched
}

// Dispatches reports the total number of dispatches so far.
func (p *Probe) Dispatches() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}

// ReleaseHeld runs every callback held by [Miss] steps, late,
// and reports how many ran.
func (p *Probe) ReleaseHeld() int {
	p.mu.Lock()
	held := p.held
	p.held = nil
	p.mu.Unlock()

	for _, fn := range held {
		fn()
	}
	return len(held)
}

func (p *Probe) RunOnGuardedThread(fn func()) {
	p.mu.Lock()
	p.n++
	n := p.n

	step := p.dflt
	if len(p.script) > 0 {
		step = p.script[0]
		p.script = p.script[1:]
	}

	if step == Miss {
		p.held = append(p.held, fn)
		fn = nil
	}

	hook := p.hook
	p.mu.Unlock()

	if hook != nil {
		hook(n)
	}

	select {
	case p.dispatched <- n:
	default:
	}

	if fn != nil {
		go fn()
	}
}
