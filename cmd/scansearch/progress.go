// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// newToolProgress creates a progress bar across the plan's tools.
// Returns nil when progress should not be shown, allowing callers to
// safely check for nil.
//
// Progress is disabled when:
//   - --output json is set (stdout carries machine-readable data)
//   - stderr is not a TTY (piped output, CI environments, etc.)
func newToolProgress(total int, enabled bool) *progressbar.ProgressBar {
	if !enabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("querying"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
