// Package gmainloop provides a guarded thread for Go programs:
// a single goroutine, locked to its OS thread,
// that runs submitted tasks one at a time.
//
// Programs that funnel UI, rendering or other latency-sensitive work
// through one goroutine can run that work on a [Loop]
// and pass the Loop to ganr as its Probe.
package gmainloop

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/gordian-engine/ganr/internal/gchan"
)

// Loop runs tasks serially on one goroutine.
// Create one with [New] and drive it with [*Loop.Run].
type Loop struct {
	log *slog.Logger

	tasks chan func()

	running atomic.Bool
}

// New returns a Loop whose queue holds up to queueSize pending tasks.
// It panics if queueSize is not positive.
func New(log *slog.Logger, queueSize int) *Loop {
	if queueSize <= 0 {
		panic(errors.New("BUG: gmainloop.New requires a positive queue size"))
	}

	return &Loop{
		log:   log,
		tasks: make(chan func(), queueSize),
	}
}

// Run executes queued tasks until ctx is canceled,
// then returns the cancellation cause.
// The calling goroutine is locked to its OS thread for the duration,
// so thread-affine work (for example cgo UI toolkits) stays on one thread.
//
// Run may only be active on one goroutine at a time.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("gmainloop: Run called while already running")
	}
	defer l.running.Store(false)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		fn, ok := gchan.RecvC(ctx, l.log, l.tasks, "waiting for main loop task")
		if !ok {
			return context.Cause(ctx)
		}

		fn()
	}
}

// Post queues fn to run on the loop without waiting for it.
// It reports false, dropping fn, if the queue is full.
func (l *Loop) Post(fn func()) bool {
	return gchan.TrySend(l.log, l.tasks, fn, "posting to full main loop queue")
}

// Do queues fn and waits for it to finish running on the loop.
// It returns the context error if ctx ends first;
// fn may still run later in that case.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if !gchan.SendC(ctx, l.log, l.tasks, func() {
		defer close(done)
		fn()
	}, "queueing main loop task") {
		return context.Cause(ctx)
	}

	if _, ok := gchan.RecvC(ctx, l.log, done, "waiting for main loop task to finish"); !ok {
		return context.Cause(ctx)
	}
	return nil
}

// RunOnGuardedThread implements ganr.Probe.
// A full queue means the loop is already far behind,
// so the dropped probe correctly counts as unanswered.
func (l *Loop) RunOnGuardedThread(fn func()) {
	_ = l.Post(fn)
}
