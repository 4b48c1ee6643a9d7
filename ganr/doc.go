// Package ganr detects when an application's guarded thread
// (usually its main or UI thread) stops responding,
// a condition known as "Application Not Responding".
//
// A [Tracker] owns one background goroutine while running.
// On every tick, that goroutine asks the [Probe] to run a tiny callback
// on the guarded thread and races the callback against a deadline
// equal to the configured timeout.
// The result of each round trip is fed through a debounce state machine:
// a single missed deadline is tolerated as scheduler jitter,
// and only two consecutive misses (by default) confirm a hang.
// Registered [Listener] values are then told [HangStarted],
// and later [HangEnded] once the guarded thread answers again.
//
// Ticks are suppressed, and never count toward a hang, while the [Adapter]
// reports an attached debugger, while an adapter that also implements
// [ForegroundReporter] reports the application in the background,
// and when the wall clock shows the process itself was suspended.
//
// The package produces events only.
// Capturing stack traces, building reports and uploading them
// belong to listeners.
package ganr
