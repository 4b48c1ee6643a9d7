// Package gchan contains helpers for common operations with channels.
// The helpers log consistently so callers skip some boilerplate.
package gchan

import (
	"context"
	"log/slog"
)

// SendC selects between ctx.Done and sending val to out.
// If ctx is canceled before the send completes,
// SendC logs "Context canceled while " + canceledDuring and reports false.
func SendC[T any](ctx context.Context, log *slog.Logger, out chan<- T, val T, canceledDuring string) (sent bool) {
	select {
	case <-ctx.Done():
		log.Info("Context canceled while "+canceledDuring, "cause", context.Cause(ctx))
		return false
	case out <- val:
		return true
	}
}

// TrySend sends val to out only if the send can complete immediately.
// A dropped value is logged at debug level as "Dropped value while " + during.
//
// This is for producers that must never block,
// such as a watchdog dispatching onto a possibly hung goroutine.
func TrySend[T any](log *slog.Logger, out chan<- T, val T, during string) (sent bool) {
	select {
	case out <- val:
		return true
	default:
		log.Debug("Dropped value while " + during)
		return false
	}
}

// RecvC selects between ctx.Done and receiving from in.
// If ctx is canceled first, RecvC logs "Context canceled while " + canceledDuring,
// returns the zero value of T, and reports false.
func RecvC[T any](ctx context.Context, log *slog.Logger, in <-chan T, canceledDuring string) (val T, received bool) {
	select {
	case <-ctx.Done():
		log.Info("Context canceled while "+canceledDuring, "cause", context.Cause(ctx))
		return val, false
	case val := <-in:
		return val, true
	}
}
