package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordian-engine/ganr/ganr"
	"github.com/gordian-engine/ganr/internal/gtest"
	"github.com/stretchr/testify/require"
)

func TestParseTracerPid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{
			name: "not traced",
			in:   "Name:\tganr-demo\nState:\tS (sleeping)\nTracerPid:\t0\nUid:\t1000\n",
			want: 0,
		},
		{
			name: "traced",
			in:   "Name:\tganr-demo\nTracerPid:\t4321\n",
			want: 4321,
		},
		{
			name:    "missing",
			in:      "Name:\tganr-demo\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			in:      "TracerPid:\tnope\n",
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTracerPid(strings.NewReader(tc.in))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRunCmd_shortRun(t *testing.T) {
	t.Parallel()

	root := NewRootCmd(gtest.NewLogger(t))
	root.SetArgs([]string{
		"run",
		"--timeout", gtest.ScaleMs(20).Dur().String(),
		"--hang-every", gtest.ScaleMs(100).Dur().String(),
		"--hang-for", gtest.ScaleMs(80).Dur().String(),
		"--duration", gtest.ScaleMs(300).Dur().String(),
	})

	require.NoError(t, root.ExecuteContext(context.Background()))
}

func TestRunCmd_invalidTimeout(t *testing.T) {
	t.Parallel()

	root := NewRootCmd(gtest.NewLogger(t))
	root.SetArgs([]string{"run", "--timeout", "0s", "--duration", "1ms"})
	root.SetErr(new(strings.Builder))

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	require.True(t, ganr.IsInvalidConfiguration(err))
}

func TestRunCmd_negativeDurations(t *testing.T) {
	t.Parallel()

	root := NewRootCmd(gtest.NewLogger(t))
	root.SetArgs([]string{"run", "--hang-every", "-1s", "--hang-for", "-1s"})
	root.SetErr(new(strings.Builder))

	err := root.ExecuteContext(context.Background())
	require.ErrorContains(t, err, "--hang-every")
	require.ErrorContains(t, err, "--hang-for")
}

// Not parallel: t.Setenv.
func TestRunCmd_envOverridesDefault(t *testing.T) {
	t.Setenv("GANR_TIMEOUT", "-1s")
	t.Setenv("GANR_DURATION", "1ms")

	root := NewRootCmd(gtest.NewLogger(t))
	root.SetArgs([]string{"run"})
	root.SetErr(new(strings.Builder))

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	require.True(t, ganr.IsInvalidConfiguration(err))
}

func TestRunCmd_configFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ganr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: -5ms\nduration: 1ms\n"), 0o600))

	root := NewRootCmd(gtest.NewLogger(t))
	root.SetArgs([]string{"run", "--config", path})
	root.SetErr(new(strings.Builder))

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	require.True(t, ganr.IsInvalidConfiguration(err))
}
