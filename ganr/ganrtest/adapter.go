package ganrtest

import "sync/atomic"

// Adapter is a fake ganr.Adapter that also implements ganr.ForegroundReporter.
// The zero value is not usable; call [NewAdapter].
type Adapter struct {
	debugger   atomic.Bool
	background atomic.Bool

	queries atomic.Int64
}

// NewAdapter returns an Adapter reporting no debugger
// and the application in the foreground.
func NewAdapter() *Adapter {
	return new(Adapter)
}

func (a *Adapter) SetDebuggerAttached(attached bool) {
	a.debugger.Store(attached)
}

func (a *Adapter) SetInForeground(foreground bool) {
	a.background.Store(!foreground)
}

// Queries reports how many times IsDebuggerAttached has been called.
func (a *Adapter) Queries() int64 {
	return a.queries.Load()
}

func (a *Adapter) IsDebuggerAttached() bool {
	a.queries.Add(1)
	return a.debugger.Load()
}

func (a *Adapter) IsApplicationInForeground() bool {
	return !a.background.Load()
}
