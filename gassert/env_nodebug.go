//go:build !debug

package gassert

// Env is the assertion environment.
//
// Components that support assertions accept a gassert.Env.
// In non-debug builds Env is an empty struct with no methods,
// so code that inspects it must itself sit behind the "debug" build tag.
// In debug builds Env is an alias for *Environment.
type Env struct{}
