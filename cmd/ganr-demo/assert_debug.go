//go:build debug

package main

import (
	"github.com/gordian-engine/ganr/ganr"
	"github.com/gordian-engine/ganr/gassert"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const assertRuleFlag = "assert-rules"

func addAssertRuleFlag(fs *pflag.FlagSet) {
	// Default to all rules.
	fs.String(assertRuleFlag, "*", "Comma-separated assertion rules. Only available in debug builds. See package docs for github.com/gordian-engine/ganr/gassert.")
}

func getAssertTrackerOpt(v *viper.Viper) (ganr.Opt, error) {
	env, err := gassert.EnvironmentFromString(v.GetString(assertRuleFlag))
	if err != nil {
		return nil, err
	}
	return ganr.WithAssertEnv(env), nil
}
