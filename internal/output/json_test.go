// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONTo(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"indices": []string{"nmap", "nuclei"}}

	if err := JSONTo(&buf, data); err != nil {
		t.Fatalf("JSONTo: %v", err)
	}

	// Pretty-printed output is indented.
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("JSONTo output not indented:\n%s", buf.String())
	}

	var decoded map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded["indices"]) != 2 {
		t.Errorf("indices = %v, want 2 entries", decoded["indices"])
	}
}

func TestJSONTo_UnencodableValue(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONTo(&buf, make(chan int)); err == nil {
		t.Error("JSONTo(chan) = nil error, want failure")
	}
}
