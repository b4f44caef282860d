// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kraklabs/scansearch/internal/es"
	"github.com/kraklabs/scansearch/internal/query"
	"github.com/kraklabs/scansearch/internal/ui"
)

// Text renders per-tool result tables to w.
//
// Only the plan's selected tools are rendered (all of them for the "all"
// selector). Columns follow the tool schema's projection; values are
// resolved with a dotted-path lookup so nuclei's nested event.* fields
// land in their columns.
func Text(w io.Writer, plan *query.Plan, results es.Results) error {
	for _, tool := range plan.Selected() {
		hits := results[tool.String()]

		fmt.Fprintln(w, ui.Header(tool.String()))
		if len(hits) == 0 {
			_, _ = ui.Dim.Fprintln(w, "no results")
			fmt.Fprintln(w)
			continue
		}

		schema := tool.Schema()
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(schema.Includes, "\t"))
		for _, hit := range hits {
			row := make([]string, len(schema.Includes))
			for i, field := range schema.Includes {
				row[i] = cell(hit, field)
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// cell formats one field of a hit for table display.
func cell(hit map[string]any, field string) string {
	v := lookup(hit, field)
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}

// lookup resolves field against hit, trying the literal key first and
// then walking the dotted path through nested objects.
func lookup(hit map[string]any, field string) any {
	if v, ok := hit[field]; ok {
		return v
	}

	cur := any(hit)
	for _, part := range strings.Split(field, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[part]
		if !ok {
			return nil
		}
	}
	return cur
}
