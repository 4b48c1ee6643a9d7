package glog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/gordian-engine/ganr/internal/glog"
	"github.com/stretchr/testify/require"
)

func TestMillis(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	log.Info("Tick", "timeout_ms", glog.Millis(1500*time.Millisecond))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	require.Equal(t, float64(1500), m["timeout_ms"])
}
