//go:build !debug

package main

import (
	"github.com/gordian-engine/ganr/ganr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// No-op functions to match the debug build.

func addAssertRuleFlag(*pflag.FlagSet) {}

func getAssertTrackerOpt(*viper.Viper) (_ ganr.Opt, _ error) {
	return
}
