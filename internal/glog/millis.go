// Package glog holds small helpers for structured logging with log/slog.
package glog

import (
	"log/slog"
	"time"
)

// Millis wraps a duration so it logs as an integer count of milliseconds.
// Watchdog timeouts are configured in milliseconds,
// so logs read more naturally in the same unit than as "1.5s" strings.
type Millis time.Duration

func (v Millis) LogValue() slog.Value {
	return slog.Int64Value(time.Duration(v).Milliseconds())
}
