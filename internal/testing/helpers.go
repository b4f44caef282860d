// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package testing

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/kraklabs/scansearch/internal/config"
)

// Backend is a fake Elasticsearch for package tests: a liveness root, a
// _cat/indices catalog, and per-index _search endpoints serving canned
// sources.
type Backend struct {
	// Indices is served by GET /_cat/indices. System names (leading
	// dot) are included so filtering can be exercised.
	Indices []string

	// Sources maps index name to the _source documents its _search
	// endpoint returns.
	Sources map[string][]map[string]any

	// Status, when non-zero, is returned for every request instead of
	// the canned payloads. Used to simulate a failing backend.
	Status int

	// Requests records the paths hit, in order.
	Requests []string
}

// ServeHTTP implements http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.Requests = append(b.Requests, r.URL.Path)

	if b.Status != 0 {
		w.WriteHeader(b.Status)
		return
	}

	switch {
	case r.URL.Path == "/":
		w.WriteHeader(http.StatusOK)

	case r.URL.Path == "/_cat/indices":
		rows := make([]map[string]string, 0, len(b.Indices))
		for _, idx := range b.Indices {
			rows = append(rows, map[string]string{"index": idx})
		}
		writeJSON(w, rows)

	case strings.HasSuffix(r.URL.Path, "/_search"):
		index := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "/_search")
		hits := make([]map[string]any, 0, len(b.Sources[index]))
		for _, src := range b.Sources[index] {
			hits = append(hits, map[string]any{"_source": src})
		}
		writeJSON(w, map[string]any{"hits": map[string]any{"hits": hits}})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// StartBackend serves backend over httptest and returns a configuration
// pointing at it. The server is shut down when the test finishes.
func StartBackend(t *testing.T, backend *Backend) *config.Config {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return ConfigFor(t, srv, []string{"nmap", "httpx", "nuclei"})
}

// StartTLSBackend is StartBackend over a self-signed TLS server, for
// exercising the insecure-transport path.
func StartTLSBackend(t *testing.T, backend *Backend) *config.Config {
	t.Helper()
	srv := httptest.NewTLSServer(backend)
	t.Cleanup(srv.Close)
	return ConfigFor(t, srv, []string{"nmap", "httpx", "nuclei"})
}

// ConfigFor builds a Config whose elasticsearch block points at srv.
func ConfigFor(t *testing.T, srv *httptest.Server, tools []string) *config.Config {
	t.Helper()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split test server host: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}

	return &config.Config{
		Elasticsearch: config.Elasticsearch{
			SSL:  u.Scheme == "https",
			IP:   host,
			Port: port,
		},
		ToolList: tools,
		Source:   "test.yml",
	}
}
