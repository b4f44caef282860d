// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads the scansearch YAML configuration.
//
// The file supplies the Elasticsearch connection settings and the set of
// scanner tools whose results are stored in the backend:
//
//	elasticsearch:
//	  ssl: true
//	  ip: 10.0.0.2
//	  port: 9200
//	  username: elastic
//	  password: changeme
//	  verify_certs: false
//	tool_list:
//	  - nmap
//	  - httpx
//	  - nuclei
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/scansearch/internal/errors"
)

// Elasticsearch holds backend connection settings.
type Elasticsearch struct {
	// SSL selects https over http for the base URL.
	SSL bool `yaml:"ssl"`

	// IP is the backend host (IP literal or hostname).
	IP string `yaml:"ip"`

	// Port is the backend port, typically 9200.
	Port int `yaml:"port"`

	// Username and Password supply HTTP Basic credentials. An empty
	// Username disables authentication entirely.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// VerifyCerts enables TLS certificate verification. It defaults to
	// false: the backend is typically an internal service behind a
	// self-signed certificate. Set it to true when a trusted chain exists.
	VerifyCerts bool `yaml:"verify_certs"`
}

// Config is the parsed scansearch configuration.
//
// It is constructed once by Load and treated as immutable afterwards.
type Config struct {
	Elasticsearch Elasticsearch `yaml:"elasticsearch"`

	// ToolList names the scanner tools whose results may be searched.
	ToolList []string `yaml:"tool_list"`

	// Source is the path the configuration was loaded from. It is kept
	// for error messages only and never written back.
	Source string `yaml:"-"`
}

// Load reads and parses the configuration file at path.
//
// It returns a *errors.UserError with exit code ExitConfig on any failure,
// so callers can hand the result straight to errors.FatalError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(
			"Cannot read configuration",
			fmt.Sprintf("Failed to open %s", path),
			"Pass --config with the path to your santacruz.yml",
			err,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError(
			"Cannot parse configuration",
			fmt.Sprintf("%s is not valid YAML", path),
			"Fix the syntax error reported below the elasticsearch/tool_list keys",
			err,
		)
	}

	if cfg.Elasticsearch.IP == "" {
		return nil, errors.NewConfigError(
			"Incomplete configuration",
			fmt.Sprintf("elasticsearch.ip is missing in %s", path),
			"Set elasticsearch.ip to the backend host",
			nil,
		)
	}
	if cfg.Elasticsearch.Port == 0 {
		return nil, errors.NewConfigError(
			"Incomplete configuration",
			fmt.Sprintf("elasticsearch.port is missing in %s", path),
			"Set elasticsearch.port (Elasticsearch defaults to 9200)",
			nil,
		)
	}

	cfg.Source = path
	return &cfg, nil
}

// BaseURL returns the backend base URL as scheme://host:port.
func (c *Config) BaseURL() string {
	scheme := "http"
	if c.Elasticsearch.SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Elasticsearch.IP, c.Elasticsearch.Port)
}

// ToolEnabled reports whether name appears in tool_list.
func (c *Config) ToolEnabled(name string) bool {
	for _, t := range c.ToolList {
		if t == name {
			return true
		}
	}
	return false
}
