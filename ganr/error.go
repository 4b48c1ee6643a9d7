package ganr

import (
	"errors"
	"fmt"
	"time"
)

// InvalidConfigurationError is returned by [NewTracker]
// when one or more configuration values are unusable.
// Err holds every problem found, joined with [errors.Join].
type InvalidConfigurationError struct {
	Err error
}

func (e InvalidConfigurationError) Error() string {
	return "invalid ANR tracker configuration: " + e.Err.Error()
}

func (e InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// IsInvalidConfiguration reports whether err is, or wraps,
// an [InvalidConfigurationError].
func IsInvalidConfiguration(err error) bool {
	var ice InvalidConfigurationError
	return errors.As(err, &ice)
}

// StopTimeoutError describes a [*Tracker.Stop] call that gave up
// waiting for the background goroutine to exit.
// That only happens when a listener or observer blocks indefinitely,
// so it is treated as a defect rather than a recoverable error.
type StopTimeoutError struct {
	Timeout time.Duration
}

func (e StopTimeoutError) Error() string {
	return fmt.Sprintf("ANR tracker goroutine did not exit within %s of stop", e.Timeout)
}

// errStopped is the cancellation cause set by [*Tracker.Stop].
var errStopped = errors.New("ANR tracker stopped")
