//go:build debug

// Package gasserttest supplies assertion environments for tests.
package gasserttest

import "github.com/gordian-engine/ganr/gassert"

// DefaultEnv returns an assertion environment that enables every assertion.
func DefaultEnv() gassert.Env {
	env, err := gassert.EnvironmentFromString("*")
	if err != nil {
		panic(err)
	}
	return env
}

// NopEnv returns an assertion environment with every assertion disabled.
func NopEnv() gassert.Env {
	env, err := gassert.EnvironmentFromString("")
	if err != nil {
		panic(err)
	}
	return env
}
