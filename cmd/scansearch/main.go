// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package main implements the scansearch CLI for querying security-scan
// results (nmap, httpx, nuclei) stored in Elasticsearch.
//
// Usage:
//
//	scansearch search --config conf/santacruz.yml [options]
//	scansearch indices --config conf/santacruz.yml [--json]
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// main is the entry point for the scansearch CLI.
//
// It parses global flags and dispatches to command handlers.
//
// Global flags:
//   - --version: Display version information and exit
//   - --config: Path to the santacruz.yml configuration file
//
// Commands:
//   - search: Build and execute the per-tool search plan
//   - indices: List the backend's scan-result indices
func main() {
	// Global flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "", "Path to santacruz.yml configuration file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `scansearch - query scan results stored in Elasticsearch

scansearch turns a small parameter set (address, time window, limit, tool)
into per-tool Elasticsearch queries, runs them over an authenticated
session and renders the hits.

Usage:
  scansearch <command> [options]

Commands:
  search        Build and execute the per-tool search plan
  indices       List the backend's scan-result indices

Global Options:
  --config      Path to santacruz.yml (required by both commands)
  --version     Show version and exit

Examples:
  scansearch search --config conf/santacruz.yml
  scansearch search --config conf/santacruz.yml --addr 10.0.0.5 --tool httpx
  scansearch search --config conf/santacruz.yml --start now-7d --output json
  scansearch indices --config conf/santacruz.yml --json

Configuration:
  The YAML file supplies elasticsearch.{ssl,ip,port,username,password,
  verify_certs} and tool_list (the enabled scanner tools).

For detailed command help: scansearch <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("scansearch version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "search":
		runSearch(cmdArgs, *configPath)
	case "indices":
		runIndices(cmdArgs, *configPath)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
