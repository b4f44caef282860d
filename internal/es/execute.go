// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kraklabs/scansearch/internal/errors"
	"github.com/kraklabs/scansearch/internal/query"
)

// Hit is one decoded document source. Field layout varies per tool schema,
// and nuclei sources nest under "event", so hits stay dynamic.
type Hit map[string]any

// Results maps tool name to the decoded hits of its query document.
type Results map[string][]Hit

// searchResponse matches the filter_path=hits.hits._source projection.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Hit `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search executes one query document and returns its decoded hits.
//
// The request is a POST of the document's JSON body to its URI. A non-200
// response is fatal, same policy as the liveness probe.
func (s *Session) Search(ctx context.Context, tool query.Tool, doc query.Document) ([]Hit, error) {
	esMetrics.init()

	start := time.Now()
	resp, err := s.post(ctx, doc.URI, doc.Body)
	if err != nil {
		return nil, errors.NewNetworkError(
			"Search request failed",
			fmt.Sprintf("Cannot execute the %s query against %s", tool, doc.URI),
			"Check that the backend is still reachable",
			err,
		)
	}
	defer drain(resp.Body)

	if resp.StatusCode != 200 {
		return nil, statusError(resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.NewNetworkError(
			"Malformed search response",
			fmt.Sprintf("The %s query returned a body the hits projection cannot decode", tool),
			"Check that the configured backend is actually Elasticsearch",
			err,
		)
	}

	hits := make([]Hit, 0, len(decoded.Hits.Hits))
	for _, h := range decoded.Hits.Hits {
		hits = append(hits, h.Source)
	}

	esMetrics.queries.WithLabelValues(tool.String()).Inc()
	esMetrics.hits.WithLabelValues(tool.String()).Add(float64(len(hits)))
	esMetrics.duration.Observe(time.Since(start).Seconds())

	slog.Debug("es.search.done", "tool", tool.String(), "hits", len(hits),
		"elapsed", time.Since(start))

	return hits, nil
}

// Execute runs every document in the plan sequentially, one round-trip at
// a time, and returns the hits keyed by tool name. The first backend
// failure aborts the run.
//
// observe, when non-nil, is called after each tool's query completes; the
// search command uses it to advance a progress bar.
func (s *Session) Execute(ctx context.Context, plan *query.Plan, observe func(query.Tool)) (Results, error) {
	results := make(Results, len(plan.Tools))
	for _, tool := range query.Tools() {
		doc, ok := plan.Tools[tool]
		if !ok {
			continue
		}
		hits, err := s.Search(ctx, tool, doc)
		if err != nil {
			return nil, err
		}
		results[tool.String()] = hits
		if observe != nil {
			observe(tool)
		}
	}
	return results, nil
}
