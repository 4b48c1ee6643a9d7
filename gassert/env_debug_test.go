// Only run these tests in debug mode.

//go:build debug

package gassert_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/gordian-engine/ganr/gassert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_Enabled(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   string
		test func(t *testing.T, e *gassert.Environment)
	}{
		{
			name: "rootWildcard",
			in:   "*",
			test: func(t *testing.T, e *gassert.Environment) {
				require.True(t, e.Enabled("ganr"))
				require.True(t, e.Enabled("ganr.tracker.stop_timeout"))
			},
		},
		{
			name: "rootedWildcard",
			in:   "ganr.*",
			test: func(t *testing.T, e *gassert.Environment) {
				require.False(t, e.Enabled("ganr"))
				require.True(t, e.Enabled("ganr.loop"))
				require.True(t, e.Enabled("ganr.loop.event_order"))
				require.False(t, e.Enabled("gmainloop.queue"))
			},
		},
		{
			name: "exact",
			in:   "ganr.loop.event_order, ganr.tracker.stop_timeout",
			test: func(t *testing.T, e *gassert.Environment) {
				require.True(t, e.Enabled("ganr.loop.event_order"))
				require.True(t, e.Enabled("ganr.tracker.stop_timeout"))
				require.False(t, e.Enabled("ganr.loop"))
				require.False(t, e.Enabled("ganr.loop.event_order.extra"))
			},
		},
		{
			name: "empty",
			in:   "",
			test: func(t *testing.T, e *gassert.Environment) {
				require.False(t, e.Enabled("ganr.loop.event_order"))
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, err := gassert.EnvironmentFromString(tc.in)
			require.NoError(t, err)
			tc.test(t, e)
		})
	}
}

func TestEnvironmentFromString_errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"ganr..loop",
		"ganr.*.loop",
		"g*nr.loop",
		"ganr.*.*",
		"ganr,,loop",
		".ganr",
	} {
		e, err := gassert.EnvironmentFromString(input)
		require.Error(t, err, input)
		require.Nil(t, e)
	}
}

func TestEnvironment_HandleAssertionFailure_panic(t *testing.T) {
	t.Parallel()

	e, err := gassert.EnvironmentFromString("*")
	require.NoError(t, err)

	require.Panics(t, func() {
		e.HandleAssertionFailure(errors.New("something bad"))
	})
	require.Panics(t, func() {
		e.HandleAssertionFailure(nil)
	})
}

func TestEnvironment_HandleAssertionFailure_log(t *testing.T) {
	t.Parallel()

	e, err := gassert.EnvironmentFromString("*")
	require.NoError(t, err)

	var buf bytes.Buffer
	e.OnlyLogFailures(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NotPanics(t, func() {
		e.HandleAssertionFailure(errors.New("something bad"))
	})
	require.Contains(t, buf.String(), "something bad")

	// Nil still panics when only logging.
	require.Panics(t, func() {
		e.HandleAssertionFailure(nil)
	})
}
