package gtest

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TimeFactor multiplies every timeout produced by [ScaleMs].
// It is read from the GANR_TEST_TIME_FACTOR environment variable.
//
// Watchdog tests are timing sensitive by nature.
// A contended CI machine can set e.g. GANR_TEST_TIME_FACTOR=4
// instead of anyone editing literal durations in tests.
var TimeFactor ScaledDuration = 1

func init() {
	f := os.Getenv("GANR_TEST_TIME_FACTOR")
	if f == "" {
		return
	}

	n, err := strconv.Atoi(f)
	if err != nil {
		panic(fmt.Errorf(
			"failed to parse GANR_TEST_TIME_FACTOR (%q) into an integer: %w",
			f, err,
		))
	}

	if n <= 0 {
		panic(fmt.Errorf("GANR_TEST_TIME_FACTOR must be positive; got %d", n))
	}

	TimeFactor = ScaledDuration(n)
}

// ScaledDuration is a duration that has already been multiplied by [TimeFactor].
type ScaledDuration time.Duration

// ScaleMs returns ms milliseconds multiplied by [TimeFactor].
//
// The helpers in this package accept a ScaledDuration
// so that callers cannot pass literal, unscaled timeouts.
func ScaleMs(ms int64) ScaledDuration {
	return TimeFactor * ScaledDuration(ms) * ScaledDuration(time.Millisecond)
}

// Dur converts d back to a plain [time.Duration],
// for APIs outside this package.
func (d ScaledDuration) Dur() time.Duration {
	return time.Duration(d)
}

// Sleep calls [time.Sleep] with the given scaled duration.
func Sleep(dur ScaledDuration) {
	time.Sleep(time.Duration(dur))
}
