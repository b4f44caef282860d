// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package es

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// searchMetrics holds Prometheus metrics for plan execution. They are only
// exported when the search command is run with --metrics-addr.
type searchMetrics struct {
	once sync.Once

	queries  *prometheus.CounterVec
	hits     *prometheus.CounterVec
	duration prometheus.Histogram
}

var esMetrics searchMetrics

func (m *searchMetrics) init() {
	m.once.Do(func() {
		m.queries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scansearch_queries_total",
			Help: "Search queries executed, by tool",
		}, []string{"tool"})
		m.hits = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scansearch_hits_total",
			Help: "Hits returned by the backend, by tool",
		}, []string{"tool"})
		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scansearch_query_duration_seconds",
			Help:    "Wall time of one search round-trip",
			Buckets: prometheus.DefBuckets,
		})

		prometheus.MustRegister(m.queries, m.hits, m.duration)
	})
}
