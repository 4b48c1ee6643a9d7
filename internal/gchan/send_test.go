package gchan_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/gordian-engine/ganr/internal/gchan"
	"github.com/gordian-engine/ganr/internal/gtest"
	"github.com/stretchr/testify/require"
)

// capture is a JSON slog logger that remembers what it wrote.
type capture struct {
	buf bytes.Buffer
	Log *slog.Logger
}

func newCapture() *capture {
	c := new(capture)
	c.Log = slog.New(slog.NewJSONHandler(&c.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return c
}

// Record decodes the single record written so far.
func (c *capture) Record(t *testing.T) map[string]string {
	t.Helper()

	var m map[string]string
	require.NoError(t, json.Unmarshal(c.buf.Bytes(), &m))
	return m
}

func TestCanceledHelpersLogCause(t *testing.T) {
	t.Parallel()

	for name, block := range map[string]func(context.Context, *slog.Logger) bool{
		"SendC": func(ctx context.Context, log *slog.Logger) bool {
			var nilCh chan int
			return gchan.SendC(ctx, log, nilCh, 1, "probing")
		},
		"RecvC": func(ctx context.Context, log *slog.Logger) bool {
			_, ok := gchan.RecvC(ctx, log, make(chan int), "probing")
			return ok
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := newCapture()
			ctx, cancel := context.WithCancelCause(context.Background())
			defer cancel(nil)

			res := make(chan bool, 1)
			go func() { res <- block(ctx, c.Log) }()

			gtest.NotSendingSoon(t, res)

			cancel(errors.New("tracker stopped"))
			require.False(t, gtest.ReceiveSoon(t, res))

			rec := c.Record(t)
			require.Equal(t, "INFO", rec["level"])
			require.Equal(t, "Context canceled while probing", rec["msg"])
			require.Equal(t, "tracker stopped", rec["cause"])
		})
	}
}

func TestSendC_delivers(t *testing.T) {
	t.Parallel()

	c := newCapture()
	out := make(chan string)

	res := make(chan bool, 1)
	go func() { res <- gchan.SendC(context.Background(), c.Log, out, "ping", "probing") }()

	// Unbuffered: not done until someone receives.
	gtest.NotSendingSoon(t, res)
	require.Equal(t, "ping", gtest.ReceiveSoon(t, out))
	require.True(t, gtest.ReceiveSoon(t, res))

	require.Zero(t, c.buf.Len())
}

func TestRecvC_receives(t *testing.T) {
	t.Parallel()

	c := newCapture()
	in := make(chan string, 1)
	in <- "pong"

	got, ok := gchan.RecvC(context.Background(), c.Log, in, "probing")
	require.True(t, ok)
	require.Equal(t, "pong", got)

	require.Zero(t, c.buf.Len())
}

func TestTrySend_neverBlocks(t *testing.T) {
	t.Parallel()

	c := newCapture()
	queue := make(chan func(), 1)

	require.True(t, gchan.TrySend(c.Log, queue, func() {}, "queueing task"))
	require.Zero(t, c.buf.Len())

	require.False(t, gchan.TrySend(c.Log, queue, func() {}, "queueing task"))

	rec := c.Record(t)
	require.Equal(t, "DEBUG", rec["level"])
	require.Equal(t, "Dropped value while queueing task", rec["msg"])

	_ = gtest.ReceiveSoon(t, queue)
	gtest.NotSending(t, queue)
}
