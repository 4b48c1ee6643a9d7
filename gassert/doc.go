// Package gassert provides runtime assertions that only exist in debug builds.
//
// Checking every watchdog invariant on every tick is wasted work in production.
// When a tracker misbehaves, rebuilding with "go build -tags debug"
// and enabling the relevant rules usually points straight at the problem.
//
// Enabling assertions takes two steps.
// First, build with the "debug" tag; without it, [Env] is an empty struct
// and every assertion helper compiles to nothing.
// Second, construct an [Environment] with [EnvironmentFromString]
// (only available in debug builds) and pass it to the component,
// e.g. with ganr.WithAssertEnv.
//
// Rules are comma-separated and dot-separated:
//   - "*" enables every assertion.
//   - "ganr.*" enables every assertion whose path starts with "ganr.".
//     The wildcard may only be the final segment.
//   - "ganr.tracker.stop_timeout" enables exactly that assertion.
//   - No rules are enabled by default.
//
// A failed assertion panics unless [*Environment.OnlyLogFailures] was called.
package gassert
