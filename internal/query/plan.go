// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package query

import (
	"fmt"
	"strings"

	"github.com/kraklabs/scansearch/internal/config"
	"github.com/kraklabs/scansearch/internal/errors"
)

// Plan is the set of query documents to execute for one invocation,
// keyed by tool. Keys are unique; iteration order is not significant.
type Plan struct {
	// Tools maps each enabled tool to its query document.
	Tools map[Tool]Document

	// Selector is the --tool value as given: a tool name or All. The
	// plan always contains every enabled tool regardless of Selector;
	// the renderer narrows its output to the selected tool. See
	// DESIGN.md for the history of this behavior.
	Selector string

	// Format is the output format selector, consumed by the renderer.
	Format string
}

// BuildPlan validates the tool selector against cfg's tool_list and builds
// one query document per enabled tool.
//
// Validation happens before any network I/O: a selector naming a tool that
// is not enabled is a configuration error and must not cost a connection
// attempt. Names in tool_list outside the supported set are skipped, as
// the result store has no schema for them.
func BuildPlan(cfg *config.Config, selector, format string, p Params) (*Plan, error) {
	if selector != All && !cfg.ToolEnabled(selector) {
		return nil, errors.NewConfigError(
			fmt.Sprintf("Unknown tool %q", selector),
			fmt.Sprintf("The tool is not listed in tool_list of %s", cfg.Source),
			fmt.Sprintf("Use one of: %s (or %q)", strings.Join(cfg.ToolList, ", "), All),
			nil,
		)
	}

	base := cfg.BaseURL()
	plan := &Plan{
		Tools:    make(map[Tool]Document, len(cfg.ToolList)),
		Selector: selector,
		Format:   format,
	}

	for _, name := range cfg.ToolList {
		tool, ok := ParseTool(name)
		if !ok {
			continue
		}
		plan.Tools[tool] = Build(base, tool, p)
	}

	return plan, nil
}

// Selected returns the tools whose results should be rendered, in
// declaration order: every planned tool for All, otherwise only the
// selected one.
func (p *Plan) Selected() []Tool {
	var out []Tool
	for _, t := range Tools() {
		if _, ok := p.Tools[t]; !ok {
			continue
		}
		if p.Selector != All && p.Selector != t.String() {
			continue
		}
		out = append(out, t)
	}
	return out
}
