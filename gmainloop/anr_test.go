package gmainloop_test

import (
	"context"
	"testing"

	"github.com/gordian-engine/ganr/ganr"
	"github.com/gordian-engine/ganr/ganr/ganrtest"
	"github.com/gordian-engine/ganr/internal/gtest"
	"github.com/stretchr/testify/require"
)

func TestLoop_detectedHang(t *testing.T) {
	t.Parallel()

	l, _, _ := startLoop(t, 16)

	timeout := gtest.ScaleMs(20).Dur()
	rec := ganrtest.NewRecorder(8)
	tr, err := ganr.NewTracker(
		gtest.NewLogger(t), timeout, ganrtest.NewAdapter(), l,
		ganr.WithListener(rec),
	)
	require.NoError(t, err)
	t.Cleanup(tr.Stop)

	tr.Start()

	// A responsive loop produces no events.
	gtest.NotSendingFor(t, rec.Events(), gtest.ScaleMs(100))

	// Block the loop well past two timeouts.
	require.True(t, l.Post(func() {
		gtest.Sleep(gtest.ScaleMs(150))
	}))

	require.Equal(t, ganr.HangStarted, gtest.ReceiveOrTimeout(t, rec.Events(), gtest.ScaleMs(500)))
	require.Equal(t, ganr.HangEnded, gtest.ReceiveOrTimeout(t, rec.Events(), gtest.ScaleMs(500)))

	// Still responsive afterward.
	require.NoError(t, l.Do(context.Background(), func() {}))
}
