//go:build debug

package gassert

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Env is an alias for *Environment in debug builds.
// See the non-debug declaration for why the alias exists.
type Env = *Environment

// Environment holds the set of enabled assertion rules.
//
// Methods on Environment are safe for concurrent use,
// except OnlyLogFailures, which must be called before the
// environment is shared.
type Environment struct {
	// Prefix rules, stored without the trailing wildcard.
	// A zero-length prefix is the root wildcard.
	prefixes [][]string

	exacts [][]string

	// Nil log means failures panic.
	log *slog.Logger
}

// EnvironmentFromString parses a comma-separated list of rules.
// The empty string produces an environment with nothing enabled.
func EnvironmentFromString(in string) (*Environment, error) {
	e := new(Environment)
	if in == "" {
		return e, nil
	}

	var errs error
	for _, r := range strings.Split(in, ",") {
		errs = errors.Join(errs, e.addRule(strings.TrimSpace(r)))
	}
	if errs != nil {
		return nil, errs
	}

	return e, nil
}

func (e *Environment) addRule(r string) error {
	if r == "" {
		return errors.New("received empty rule")
	}

	if strings.Contains(r, "..") || strings.HasPrefix(r, ".") || strings.HasSuffix(r, ".") {
		return fmt.Errorf("invalid rule %q: dot-separated sections may not be empty", r)
	}

	switch strings.Count(r, "*") {
	case 0:
		e.exacts = append(e.exacts, strings.Split(r, "."))
		return nil
	case 1:
		if r == "*" {
			e.prefixes = append(e.prefixes, []string{})
			return nil
		}

		p, ok := strings.CutSuffix(r, ".*")
		if !ok {
			return fmt.Errorf("invalid rule %q: * only allowed as last element of dot-separated rule", r)
		}
		e.prefixes = append(e.prefixes, strings.Split(p, "."))
		return nil
	default:
		return fmt.Errorf("invalid rule %q: may contain at most one *, and it must be at the end", r)
	}
}

// OnlyLogFailures makes [*Environment.HandleAssertionFailure]
// log at error level instead of panicking.
func (e *Environment) OnlyLogFailures(log *slog.Logger) {
	e.log = log
}

// HandleAssertionFailure panics with err,
// or logs it if [*Environment.OnlyLogFailures] was called.
// A nil err is a programming error and always panics.
func (e *Environment) HandleAssertionFailure(err error) {
	if err == nil {
		panic(errors.New("BUG: HandleAssertionFailure called with nil error"))
	}

	if e.log == nil {
		panic(fmt.Errorf("assertion failure: %w", err))
	}

	e.log.Error("Assertion failure", "err", err)
}

// Enabled reports whether the dot-separated rule path is enabled,
// either by an exact rule or by a wildcard prefix rule.
func (e *Environment) Enabled(rule string) bool {
	if len(e.prefixes) == 0 && len(e.exacts) == 0 {
		return false
	}

	parts := strings.Split(rule, ".")

	for _, p := range e.prefixes {
		// A prefix must be strictly shorter than the rule;
		// "ganr.*" does not enable "ganr" itself.
		if len(p) < len(parts) && slices.Equal(p, parts[:len(p)]) {
			return true
		}
	}

	for _, x := range e.exacts {
		if slices.Equal(x, parts) {
			return true
		}
	}

	return false
}
