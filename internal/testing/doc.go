// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package testing provides shared helpers for scansearch package tests:
// a canned fake Elasticsearch backend over httptest and configuration
// construction pointed at it.
//
// Import it under an alias to avoid clashing with the standard library:
//
//	scantest "github.com/kraklabs/scansearch/internal/testing"
package testing
