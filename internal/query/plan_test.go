// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/scansearch/internal/config"
	"github.com/kraklabs/scansearch/internal/errors"
)

func testConfig(tools ...string) *config.Config {
	return &config.Config{
		Elasticsearch: config.Elasticsearch{SSL: true, IP: "10.0.0.2", Port: 9200},
		ToolList:      tools,
		Source:        "conf/santacruz.yml",
	}
}

// TestBuildPlan_AllTools: the plan covers every enabled tool, each built
// against its own schema.
func TestBuildPlan_AllTools(t *testing.T) {
	cfg := testConfig("nmap", "httpx", "nuclei")
	p := Params{Start: "now-24h", End: "now", Limit: 100}

	plan, err := BuildPlan(cfg, All, "txt", p)
	require.NoError(t, err)

	assert.Len(t, plan.Tools, 3)
	assert.Equal(t, "https://10.0.0.2:9200/nuclei/_search?filter_path=hits.hits._source",
		plan.Tools[Nuclei].URI)
	assert.Equal(t, []Tool{Nmap, Httpx, Nuclei}, plan.Selected())
}

// TestBuildPlan_SingleSelectorStillBuildsAll preserves the observed
// behavior: the selector narrows rendering, not the plan.
func TestBuildPlan_SingleSelectorStillBuildsAll(t *testing.T) {
	cfg := testConfig("nmap", "httpx", "nuclei")
	p := Params{Start: "now-24h", End: "now", Limit: 100}

	plan, err := BuildPlan(cfg, "httpx", "txt", p)
	require.NoError(t, err)

	assert.Len(t, plan.Tools, 3)
	assert.Equal(t, []Tool{Httpx}, plan.Selected())
}

// TestBuildPlan_UnknownSelector is the configuration-error path: fatal,
// names the tool and the config source, and never reaches the network
// (BuildPlan performs no I/O at all).
func TestBuildPlan_UnknownSelector(t *testing.T) {
	cfg := testConfig("nmap", "httpx")

	plan, err := BuildPlan(cfg, "masscan", "txt", Params{Start: "now-24h", End: "now", Limit: 100})
	require.Error(t, err)
	assert.Nil(t, plan)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitConfig, ue.ExitCode)
	assert.Contains(t, ue.Message, "masscan")
	assert.Contains(t, ue.Cause, "conf/santacruz.yml")
}

// TestBuildPlan_SkipsUnsupportedEnabledNames: tool_list entries outside
// the schema table are ignored rather than failing the run.
func TestBuildPlan_SkipsUnsupportedEnabledNames(t *testing.T) {
	cfg := testConfig("nmap", "masscan")

	plan, err := BuildPlan(cfg, All, "txt", Params{Start: "now-24h", End: "now", Limit: 100})
	require.NoError(t, err)

	assert.Len(t, plan.Tools, 1)
	_, ok := plan.Tools[Nmap]
	assert.True(t, ok)
}

// TestBuildPlan_CarriesFormat: the output selector is passed through for
// the renderer, untouched.
func TestBuildPlan_CarriesFormat(t *testing.T) {
	cfg := testConfig("nmap")

	plan, err := BuildPlan(cfg, "nmap", "json", Params{Start: "now-24h", End: "now", Limit: 100})
	require.NoError(t, err)

	assert.Equal(t, "json", plan.Format)
	assert.Equal(t, "nmap", plan.Selector)
}
