// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

// TestInitColors verifies the global flag toggles fatih/color state.
func TestInitColors(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	InitColors(true)
	if !color.NoColor {
		t.Error("InitColors(true) did not disable colors")
	}

	InitColors(false)
	if color.NoColor {
		t.Error("InitColors(false) did not enable colors")
	}
}

// TestInfof verifies the message lands on color's output writer with a
// trailing newline.
func TestInfof(t *testing.T) {
	originalNoColor := color.NoColor
	originalOutput := color.Output
	color.NoColor = true
	var buf strings.Builder
	color.Output = &buf
	defer func() {
		color.NoColor = originalNoColor
		color.Output = originalOutput
	}()

	Infof("Connecting to Elasticsearch: %s", "https://10.0.0.2:9200")

	if got := buf.String(); got != "Connecting to Elasticsearch: https://10.0.0.2:9200\n" {
		t.Errorf("Infof wrote %q", got)
	}
}

// TestHeader verifies the underline matches the title width.
func TestHeader(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	got := Header("nmap")

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Header() = %q, want two lines", got)
	}
	if lines[0] != "nmap" {
		t.Errorf("title = %q, want %q", lines[0], "nmap")
	}
	if lines[1] != strings.Repeat("─", len("nmap")) {
		t.Errorf("underline = %q, want %d rule characters", lines[1], len("nmap"))
	}
}
