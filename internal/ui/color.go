// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package ui provides user interface utilities for the scansearch CLI.
//
// This package offers color output helpers that respect the --no-color flag
// and NO_COLOR environment variable.
//
// Color usage guidelines:
//   - Cyan: Info, neutral messages
//   - Bold: Headers, important labels
//   - Dim: Less important details, empty result markers
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Pre-configured color instances for consistent CLI output.
//
// These are initialized at package load time and respect the global
// color.NoColor setting when called.
var (
	// Cyan is used for informational messages.
	Cyan = color.New(color.FgCyan)

	// Bold is used for headers and important labels.
	Bold = color.New(color.Bold)

	// Dim is used for less important details, like empty result markers.
	Dim = color.New(color.Faint)
)

// InitColors configures global color output based on the noColor flag.
//
// This should be called early in main() after parsing flags to ensure
// all color output respects the --no-color flag and NO_COLOR environment
// variable.
//
// The fatih/color library already respects NO_COLOR automatically, but this
// function provides explicit control via the CLI flag.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Infof prints a formatted cyan informational message.
//
// Example output: "Connecting to Elasticsearch: https://10.0.0.2:9200"
func Infof(format string, args ...any) {
	_, _ = Cyan.Printf(format+"\n", args...)
}

// Header returns a bold section header followed by an underline of the
// same width, for grouping per-tool result tables.
//
// Example output:
//
//	nmap
//	────
func Header(title string) string {
	return fmt.Sprintf("%s\n%s", Bold.Sprint(title), strings.Repeat("─", len(title)))
}
