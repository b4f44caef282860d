// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	flag "github.com/spf13/pflag"
)

// configFlag registers --config on a subcommand flag set, defaulting to
// the global flag's value. Both argument orders work:
//
//	scansearch search --config conf/santacruz.yml
//	scansearch --config conf/santacruz.yml search
//
// The global stdlib flag set stops parsing at the first non-flag argument,
// so a --config given after the command name reaches the subcommand set.
func configFlag(fs *flag.FlagSet, global string) *string {
	return fs.String("config", global, "Path to santacruz.yml configuration file")
}
