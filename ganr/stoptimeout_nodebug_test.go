//go:build !debug

package ganr_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gordian-engine/ganr/ganr"
	"github.com/gordian-engine/ganr/ganr/ganrtest"
	"github.com/gordian-engine/ganr/internal/gtest"
	"github.com/stretchr/testify/require"
)

func TestTracker_stopTimeoutAbandonsGoroutine(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	blocking := ganr.ListenerFunc(func(ganr.Event) {
		close(entered)
		<-release
	})

	// The abandoned goroutine outlives the stop call,
	// so it must not log through the test's logger.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	p := ganrtest.NewProbe(ganrtest.Miss, ganrtest.Miss)
	tr, err := ganr.NewTracker(
		log, tickTimeout(), ganrtest.NewAdapter(), p,
		ganr.WithListener(blocking),
		ganr.WithStopTimeout(gtest.ScaleMs(50).Dur()),
	)
	require.NoError(t, err)

	tr.Start()
	_ = gtest.ReceiveOrTimeout(t, entered, gtest.ScaleMs(1000))

	before := time.Now()
	tr.Stop()
	elapsed := time.Since(before)

	require.GreaterOrEqual(t, elapsed, gtest.ScaleMs(50).Dur())
	require.Less(t, elapsed, gtest.ScaleMs(500).Dur())
	require.False(t, tr.Running())

	// A fresh start is allowed even though the old goroutine is stuck.
	tr.Start()
	require.True(t, tr.Running())

	close(release)
	tr.Stop()
}
