// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package es_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/scansearch/internal/errors"
	"github.com/kraklabs/scansearch/internal/es"
	scantest "github.com/kraklabs/scansearch/internal/testing"
)

// TestListIndices filters system indices and preserves catalog order.
func TestListIndices(t *testing.T) {
	backend := &scantest.Backend{
		Indices: []string{".kibana_1", "nmap", ".security-7", "nuclei", "nmap-2026.08"},
	}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	indices, err := sess.ListIndices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"nmap", "nuclei", "nmap-2026.08"}, indices)
	for _, idx := range indices {
		assert.False(t, strings.HasPrefix(idx, "."), "system index leaked: %s", idx)
	}
}

// TestListIndices_Empty returns an empty, non-nil slice when everything is
// a system index.
func TestListIndices_Empty(t *testing.T) {
	backend := &scantest.Backend{Indices: []string{".kibana_1", ".security-7"}}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	indices, err := sess.ListIndices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, indices)
	assert.Empty(t, indices)
}

// TestListIndices_BadStatus reuses the liveness failure policy.
func TestListIndices_BadStatus(t *testing.T) {
	backend := &scantest.Backend{}
	cfg := scantest.StartBackend(t, backend)

	sess, err := es.Dial(context.Background(), cfg)
	require.NoError(t, err)

	// Fail everything after the successful dial.
	backend.Status = http.StatusBadGateway

	_, err = sess.ListIndices(context.Background())
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitNetwork, ue.ExitCode)
	assert.Contains(t, ue.Cause, "502")
}
