// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/scansearch/internal/config"
	"github.com/kraklabs/scansearch/internal/errors"
	"github.com/kraklabs/scansearch/internal/es"
	"github.com/kraklabs/scansearch/internal/output"
	"github.com/kraklabs/scansearch/internal/query"
	"github.com/kraklabs/scansearch/internal/ui"
)

// runSearch executes the 'search' CLI command.
//
// It loads the configuration, builds one query document per enabled tool,
// dials the backend, executes the plan sequentially and renders the hits.
// The --tool selector is validated against tool_list before any network
// I/O happens; the plan itself always covers every enabled tool and the
// renderer narrows to the selection.
//
// Flags:
//   - --addr: Target IP address to match (default: none)
//   - --start: Window start, backend date-math (default: now-24h)
//   - --end: Window end (default: now)
//   - --limit: Result size per tool, forwarded verbatim (default: 100)
//   - --tool: Enabled tool name or "all" (default: all)
//   - --output: txt or json (default: txt)
//   - --debug: Enable debug logging
//   - --no-color: Disable colored output
//   - --metrics-addr: HTTP address for Prometheus metrics (default: disabled)
//
// Examples:
//
//	scansearch search --config conf/santacruz.yml
//	scansearch search --config conf/santacruz.yml --addr 10.0.0.5 --tool nmap
//	scansearch search --config conf/santacruz.yml --start now-7d --output json
func runSearch(args []string, configPath string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	cfgPath := configFlag(fs, configPath)
	addr := fs.String("addr", "", "Search for IP address")
	start := fs.String("start", "now-24h", "Search from start time")
	end := fs.String("end", "now", "Search to end time")
	limit := fs.Int("limit", 100, "Limit number of results")
	tool := fs.String("tool", query.All, "Search for data based on tool name")
	format := fs.String("output", "txt", "Output format (txt or json)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: scansearch search [options]

Builds one Elasticsearch query per tool in tool_list and executes them
over an authenticated session, sequentially, one round-trip at a time.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ui.InitColors(*noColor)
	jsonMode := *format == "json"

	if *format != "txt" && *format != "json" {
		errors.FatalError(errors.NewInputError(
			fmt.Sprintf("Unknown output format %q", *format),
			"Only txt and json are supported",
			"Pass --output txt or --output json",
		), false)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		errors.FatalError(err, jsonMode)
	}

	// Resolve the plan before dialing: an unknown --tool must fail
	// without a connection attempt.
	params := query.Params{Addr: *addr, Start: *start, End: *end, Limit: *limit}
	plan, err := query.BuildPlan(cfg, *tool, *format, params)
	if err != nil {
		errors.FatalError(err, jsonMode)
	}

	// Start Prometheus metrics endpoint (optional)
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: *metricsAddr, Handler: mux}
			logger.Info("metrics.http.start", "addr", *metricsAddr, "path", "/metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics.http.error", "err", err)
			}
		}()
	}

	ctx := context.Background()

	if *debug {
		ui.Infof("Connecting to Elasticsearch: %s", cfg.BaseURL())
	}

	sess, err := es.Dial(ctx, cfg)
	if err != nil {
		errors.FatalError(err, jsonMode)
	}
	logger.Debug("search.session.established", "url", sess.BaseURL())

	bar := newToolProgress(len(plan.Tools), !jsonMode)
	results, err := sess.Execute(ctx, plan, func(query.Tool) {
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		errors.FatalError(err, jsonMode)
	}

	if jsonMode {
		if err := output.JSON(searchResult(plan, results)); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	if err := output.Text(os.Stdout, plan, results); err != nil {
		errors.FatalError(err, false)
	}
}

// searchResult narrows the executed results to the plan's selection for
// JSON output, keyed by tool name.
func searchResult(plan *query.Plan, results es.Results) es.Results {
	selected := make(es.Results, len(results))
	for _, tool := range plan.Selected() {
		selected[tool.String()] = results[tool.String()]
	}
	return selected
}
