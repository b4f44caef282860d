// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package query builds per-tool Elasticsearch query documents from a small
// common parameter set.
//
// Each supported scanner tool stores its results with a different field
// layout, sometimes in a shared index. A static Schema table normalizes
// those differences: builders read the schema instead of hard-coding field
// names, so a time-range filter always lands on the tool's own timestamp
// field and an address match on its own address field.
//
// Builders are pure: no I/O, no clock, no shared state. Identical inputs
// produce byte-identical documents.
package query

// Tool is a closed variant over the supported scanner schemas.
//
// Adding a tool means adding a constant here, a Schema entry in schemas,
// and a name in toolNames. There is no string dispatch anywhere else.
type Tool int

const (
	Nmap Tool = iota
	Httpx
	Nuclei
)

// All is the --tool sentinel selecting every configured tool.
const All = "all"

var toolNames = [...]string{
	Nmap:   "nmap",
	Httpx:  "httpx",
	Nuclei: "nuclei",
}

// String returns the tool's user-facing name, as used in tool_list.
func (t Tool) String() string {
	if int(t) < 0 || int(t) >= len(toolNames) {
		return "unknown"
	}
	return toolNames[t]
}

// ParseTool maps a tool_list / --tool name to its variant.
// The second result is false for names outside the closed set.
func ParseTool(name string) (Tool, bool) {
	for t, n := range toolNames {
		if n == name {
			return Tool(t), true
		}
	}
	return 0, false
}

// Tools returns every supported tool in declaration order.
func Tools() []Tool {
	return []Tool{Nmap, Httpx, Nuclei}
}

// Schema describes, for one tool, where its documents live and which fields
// carry the target address and the event timestamp.
type Schema struct {
	// Index is the backend collection holding the tool's documents.
	Index string

	// TimeField is the event timestamp field, used by the range filter.
	TimeField string

	// AddrField is the target address field, used by the optional
	// address match clause.
	AddrField string

	// Includes is the _source projection returned for each hit.
	Includes []string

	// PinField/PinValue add a mandatory match clause to must. Used by
	// httpx, whose hits live in the nmap index and are distinguished by
	// the script field rather than by collection name.
	PinField string
	PinValue string

	// RequireField adds an exists clause to filter. Used by httpx to
	// drop nse rows without script output.
	RequireField string
}

var schemas = [...]Schema{
	Nmap: {
		Index:     "nmap",
		TimeField: "time",
		AddrField: "ip",
		Includes:  []string{"time", "ip", "port", "protocol", "script", "script_output"},
	},
	// httpx is run from an nmap nse script (httpx.nse), so its results
	// land in the nmap index and carry script="httpx".
	Httpx: {
		Index:        "nmap",
		TimeField:    "time",
		AddrField:    "ip",
		Includes:     []string{"time", "script", "script_output"},
		PinField:     "script",
		PinValue:     "httpx",
		RequireField: "script_output",
	},
	Nuclei: {
		Index:     "nuclei",
		TimeField: "@timestamp",
		AddrField: "event.ip",
		Includes: []string{
			"@timestamp", "event.ip", "event.info.severity",
			"event.info.name", "event.matched-at", "event.template-id",
			"event.info.classification.cvss-score", "event.info.description",
		},
	},
}

// Schema returns the tool's static schema record.
func (t Tool) Schema() Schema {
	return schemas[t]
}
