// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/scansearch/internal/config"
	"github.com/kraklabs/scansearch/internal/errors"
	"github.com/kraklabs/scansearch/internal/es"
	"github.com/kraklabs/scansearch/internal/output"
)

// runIndices executes the 'indices' CLI command, listing the backend's
// scan-result indices. System indices (leading dot) are filtered out.
//
// Flags:
//   - --json: Output results as JSON (default: false)
//
// Examples:
//
//	scansearch indices --config conf/santacruz.yml
//	scansearch indices --config conf/santacruz.yml --json
func runIndices(args []string, configPath string) {
	fs := flag.NewFlagSet("indices", flag.ExitOnError)
	cfgPath := configFlag(fs, configPath)
	jsonOutput := fs.Bool("json", false, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: scansearch indices [options]

Lists the backend's data indices, excluding system indices.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	ctx := context.Background()

	sess, err := es.Dial(ctx, cfg)
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	indices, err := sess.ListIndices(ctx)
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	if *jsonOutput {
		if err := output.JSON(map[string][]string{"indices": indices}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	for _, idx := range indices {
		fmt.Println(idx)
	}
}
