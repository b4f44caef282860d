// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package query

// Params is the common, immutable search parameter set supplied once per
// invocation. Start and End are opaque expressions in the backend's own
// date-math grammar ("now-24h", "2026-01-01", ...) and are passed through
// verbatim; Limit is forwarded unchanged with no bound enforced here.
type Params struct {
	// Addr is the optional target IP. Empty means no address clause.
	Addr string

	// Start and End bound the time-range filter.
	Start string
	End   string

	// Limit is the result size forwarded to the backend.
	Limit int
}

// Document is one search request to issue: target URI plus JSON body.
type Document struct {
	URI  string `json:"uri"`
	Body Body   `json:"body"`
}

// Body is the structured query body shared by all tools.
type Body struct {
	Query  BoolQuery    `json:"query"`
	Source SourceFilter `json:"_source"`
	Size   int          `json:"size"`
}

// BoolQuery wraps the boolean query clauses.
type BoolQuery struct {
	Bool BoolClauses `json:"bool"`
}

// BoolClauses carries the must and filter arrays. Both are always present
// in the encoded body, even when empty.
type BoolClauses struct {
	Must   []Clause `json:"must"`
	Filter []Clause `json:"filter"`
}

// SourceFilter selects the fields projected into each hit's _source.
type SourceFilter struct {
	Includes []string `json:"includes"`
}

// Clause is a single query clause (match, range, exists). Single-key maps
// encode deterministically, which keeps builders idempotent.
type Clause map[string]any

// RangeBounds are the inclusive bounds of a time-range clause.
type RangeBounds struct {
	Gte string `json:"gte"`
	Lte string `json:"lte"`
}

func matchClause(field, value string) Clause {
	return Clause{"match": map[string]string{field: value}}
}

func existsClause(field string) Clause {
	return Clause{"exists": map[string]string{"field": field}}
}

func rangeClause(field, gte, lte string) Clause {
	return Clause{"range": map[string]RangeBounds{field: {Gte: gte, Lte: lte}}}
}

// Build constructs the tool's query document against baseURL.
//
// The body always carries a range clause on the tool's timestamp field.
// A pinned match (httpx's script discriminator) comes first in must and an
// exists requirement precedes the range clause in filter, matching the
// layout the result store was populated with. The address match is
// appended to must only when p.Addr is non-empty.
func Build(baseURL string, tool Tool, p Params) Document {
	s := tool.Schema()

	must := []Clause{}
	if s.PinField != "" {
		must = append(must, matchClause(s.PinField, s.PinValue))
	}

	filter := []Clause{}
	if s.RequireField != "" {
		filter = append(filter, existsClause(s.RequireField))
	}
	filter = append(filter, rangeClause(s.TimeField, p.Start, p.End))

	if p.Addr != "" {
		must = append(must, matchClause(s.AddrField, p.Addr))
	}

	return Document{
		URI: baseURL + "/" + s.Index + "/_search?filter_path=hits.hits._source",
		Body: Body{
			Query:  BoolQuery{Bool: BoolClauses{Must: must, Filter: filter}},
			Source: SourceFilter{Includes: s.Includes},
			Size:   p.Limit,
		},
	}
}
