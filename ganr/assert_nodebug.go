//go:build !debug

package ganr

import (
	"log/slog"

	"github.com/gordian-engine/ganr/gassert"
)

func invariantEventOrder(gassert.Env, Event, Event) {}

func handleStopTimeout(_ gassert.Env, log *slog.Logger, err StopTimeoutError) {
	log.Error("Abandoning ANR tracker goroutine", "err", err)
}
