//go:build debug

package ganr

import (
	"testing"

	"github.com/gordian-engine/ganr/gassert/gasserttest"
	"github.com/stretchr/testify/require"
)

func TestInvariantEventOrder(t *testing.T) {
	t.Parallel()

	env := gasserttest.DefaultEnv()

	require.NotPanics(t, func() { invariantEventOrder(env, 0, HangStarted) })
	require.NotPanics(t, func() { invariantEventOrder(env, HangStarted, HangEnded) })
	require.NotPanics(t, func() { invariantEventOrder(env, HangEnded, HangStarted) })

	require.Panics(t, func() { invariantEventOrder(env, 0, HangEnded) })
	require.Panics(t, func() { invariantEventOrder(env, HangStarted, HangStarted) })
	require.Panics(t, func() { invariantEventOrder(env, HangEnded, HangEnded) })

	// Disabled rules and a missing environment never fail.
	require.NotPanics(t, func() { invariantEventOrder(gasserttest.NopEnv(), HangStarted, HangStarted) })
	require.NotPanics(t, func() { invariantEventOrder(nil, HangStarted, HangStarted) })
}
