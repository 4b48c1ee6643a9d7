//go:build !debug

// Package gasserttest supplies assertion environments for tests.
package gasserttest

import "github.com/gordian-engine/ganr/gassert"

// DefaultEnv returns the no-op Env in non-debug builds.
func DefaultEnv() gassert.Env {
	return gassert.Env{}
}

// NopEnv returns the no-op Env.
func NopEnv() gassert.Env {
	return gassert.Env{}
}
