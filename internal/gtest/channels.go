// Package gtest contains helpers shared by tests across the module.
package gtest

import (
	"time"
)

// TestingFatalHelper is the subset of [testing.TB] used by the channel helpers,
// small enough to fake in the helpers' own tests.
type TestingFatalHelper interface {
	Helper()

	Fatalf(format string, args ...any)
}

// fatal reports through tb and then panics.
// A real tb.Fatalf exits the goroutine before the panic;
// a fake does not, and must not see a zero value returned as success.
func fatal(tb TestingFatalHelper, format string, args ...any) {
	tb.Helper()
	tb.Fatalf(format, args...)
	panic("unreachable")
}

const slowMachineHint = "; if this only flakes on one machine, set GANR_TEST_TIME_FACTOR above %d"

// ReceiveSoon receives from ch, failing after a short default wait.
func ReceiveSoon[T any](tb TestingFatalHelper, ch <-chan T) T {
	tb.Helper()
	return ReceiveOrTimeout(tb, ch, ScaleMs(100))
}

// ReceiveOrTimeout receives from ch, failing if nothing arrives within timeout.
// Tracker tests use it to wait across several ticks.
func ReceiveOrTimeout[T any](tb TestingFatalHelper, ch <-chan T, timeout ScaledDuration) T {
	tb.Helper()
	if ch == nil {
		fatal(tb, "refusing to block on receive from nil %T", ch)
	}

	timer := time.NewTimer(timeout.Dur())
	defer timer.Stop()

	select {
	case x := <-ch:
		return x
	case <-timer.C:
		fatal(tb, "no value on %T %v after %s"+slowMachineHint, ch, ch, timeout.Dur(), TimeFactor)
	}
	panic("unreachable")
}

// SendSoon sends x on ch, failing if the send blocks past a short default wait.
func SendSoon[T any](tb TestingFatalHelper, ch chan<- T, x T) {
	tb.Helper()
	if ch == nil {
		fatal(tb, "refusing to block on send to nil %T", ch)
	}

	wait := ScaleMs(100)
	timer := time.NewTimer(wait.Dur())
	defer timer.Stop()

	select {
	case ch <- x:
	case <-timer.C:
		fatal(tb, "send on %T %v still blocked after %s"+slowMachineHint, ch, ch, wait.Dur(), TimeFactor)
	}
}

// NotSending fails if a value is ready on ch right now.
func NotSending[T any](tb TestingFatalHelper, ch <-chan T) {
	tb.Helper()
	if ch == nil {
		fatal(tb, "nil %T can never send; check the channel under test", ch)
	}

	select {
	case x := <-ch:
		tb.Fatalf("unexpected value on %T %v: got %v", ch, ch, x)
	default:
	}
}

// NotSendingSoon fails if a value arrives on ch within a short window.
// It always waits out the whole window,
// so prefer [NotSending] after another synchronization point.
func NotSendingSoon[T any](tb TestingFatalHelper, ch <-chan T) {
	tb.Helper()
	NotSendingFor(tb, ch, ScaleMs(75))
}

// NotSendingFor fails if a value arrives on ch before window elapses,
// such as a hang event during a run of answered probes.
func NotSendingFor[T any](tb TestingFatalHelper, ch <-chan T, window ScaledDuration) {
	tb.Helper()
	if ch == nil {
		fatal(tb, "nil %T can never send; check the channel under test", ch)
	}

	timer := time.NewTimer(window.Dur())
	defer timer.Stop()

	select {
	case <-timer.C:
	case x := <-ch:
		fatal(tb, "received value %v on %T %v within %s, expected silence", x, ch, ch, window.Dur())
	}
}

// IsSending returns a value that is ready on ch right now,
// failing if there is none.
func IsSending[T any](tb TestingFatalHelper, ch <-chan T) T {
	tb.Helper()
	if ch == nil {
		fatal(tb, "nil %T can never send; check the channel under test", ch)
	}

	select {
	case x := <-ch:
		return x
	default:
		fatal(tb, "expected a ready value on %T %v, found none", ch, ch)
	}
	panic("unreachable")
}
