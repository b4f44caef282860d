// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package es_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/scansearch/internal/errors"
	"github.com/kraklabs/scansearch/internal/es"
	"github.com/kraklabs/scansearch/internal/query"
	scantest "github.com/kraklabs/scansearch/internal/testing"
)

var testParams = query.Params{Start: "now-24h", End: "now", Limit: 100}

// TestExecute runs the full plan against the fake backend and decodes the
// hits projection for every tool.
func TestExecute(t *testing.T) {
	backend := &scantest.Backend{
		Sources: map[string][]map[string]any{
			"nmap": {
				{"time": "2026-08-20T10:00:00Z", "ip": "10.0.0.5", "port": 443, "protocol": "tcp"},
			},
			"nuclei": {
				{"@timestamp": "2026-08-20T11:00:00Z", "event": map[string]any{"ip": "10.0.0.5"}},
				{"@timestamp": "2026-08-20T12:00:00Z", "event": map[string]any{"ip": "10.0.0.6"}},
			},
		},
	}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	plan, err := query.BuildPlan(cfg, query.All, "txt", testParams)
	require.NoError(t, err)

	var observed []query.Tool
	results, err := sess.Execute(context.Background(), plan, func(tool query.Tool) {
		observed = append(observed, tool)
	})
	require.NoError(t, err)

	// One entry per enabled tool; httpx shares the nmap index, so it
	// decodes the same canned sources.
	require.Len(t, results, 3)
	assert.Len(t, results["nmap"], 1)
	assert.Len(t, results["httpx"], 1)
	assert.Len(t, results["nuclei"], 2)

	assert.Equal(t, "10.0.0.5", results["nmap"][0]["ip"])

	// observe fires once per tool, in declaration order.
	assert.Equal(t, []query.Tool{query.Nmap, query.Httpx, query.Nuclei}, observed)
}

// TestExecute_NilObserve: the callback is optional.
func TestExecute_NilObserve(t *testing.T) {
	backend := &scantest.Backend{}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	plan, err := query.BuildPlan(cfg, query.All, "txt", testParams)
	require.NoError(t, err)

	_, err = sess.Execute(context.Background(), plan, nil)
	require.NoError(t, err)
}

// TestSearch_BadStatus: a failing search is fatal with the connectivity
// policy, aborting the rest of the plan.
func TestSearch_BadStatus(t *testing.T) {
	backend := &scantest.Backend{}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	backend.Status = http.StatusInternalServerError

	plan, err := query.BuildPlan(cfg, query.All, "txt", testParams)
	require.NoError(t, err)

	_, err = sess.Execute(context.Background(), plan, nil)
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitNetwork, ue.ExitCode)
	assert.Contains(t, ue.Cause, "500")
}

// TestSearch_EmptyHits decodes an empty hits array into an empty slice.
func TestSearch_EmptyHits(t *testing.T) {
	backend := &scantest.Backend{}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	doc := query.Build(cfg.BaseURL(), query.Nmap, testParams)
	hits, err := sess.Search(context.Background(), query.Nmap, doc)
	require.NoError(t, err)

	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}
