// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package es

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kraklabs/scansearch/internal/errors"
)

// systemIndexPrefix marks internal Elasticsearch indices (.kibana,
// .security-7, ...) that are never scan-result collections.
const systemIndexPrefix = "."

// ListIndices returns the non-system indices known to the backend, in the
// order the catalog endpoint reports them.
//
// The listing is derived fresh on every call; nothing is cached. A non-200
// response is fatal with the same policy as the liveness probe.
func (s *Session) ListIndices(ctx context.Context) ([]string, error) {
	uri := s.base + "/_cat/indices?h=index&format=json"

	resp, err := s.get(ctx, uri)
	if err != nil {
		return nil, errors.NewNetworkError(
			"Connection failed",
			fmt.Sprintf("Cannot list indices at %s", s.base),
			"Check that the backend is still reachable",
			err,
		)
	}
	defer drain(resp.Body)

	if resp.StatusCode != 200 {
		return nil, statusError(resp.StatusCode)
	}

	var rows []struct {
		Index string `json:"index"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.NewNetworkError(
			"Malformed index listing",
			"The catalog endpoint did not return the expected JSON shape",
			"Check that the configured backend is actually Elasticsearch",
			err,
		)
	}

	indices := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.HasPrefix(row.Index, systemIndexPrefix) {
			continue
		}
		indices = append(indices, row.Index)
	}
	return indices, nil
}
