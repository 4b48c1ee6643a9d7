//go:build debug

package ganr

import (
	"fmt"
	"log/slog"

	"github.com/gordian-engine/ganr/gassert"
)

// invariantEventOrder asserts that events alternate
// between HangStarted and HangEnded, beginning with HangStarted.
func invariantEventOrder(env gassert.Env, prev, next Event) {
	if env == nil || !env.Enabled("ganr.loop.event_order") {
		return
	}

	want := HangStarted
	if prev == HangStarted {
		want = HangEnded
	}

	if next != want {
		env.HandleAssertionFailure(fmt.Errorf(
			"hang event %s followed %s; expected %s", next, prev, want,
		))
	}
}

// handleStopTimeout treats a stop timeout as an assertion failure when enabled,
// and otherwise logs it and abandons the goroutine.
func handleStopTimeout(env gassert.Env, log *slog.Logger, err StopTimeoutError) {
	if env != nil && env.Enabled("ganr.tracker.stop_timeout") {
		env.HandleAssertionFailure(err)
		return
	}

	log.Error("Abandoning ANR tracker goroutine", "err", err)
}
