// Copyright 2026 Empathic, Inc.
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads hotline settings from YAML files and environment
// variables with a well-defined precedence order (highest to lowest):
//
//  1. Command-line flags (applied by cmd/hotline)
//  2. HOTLINE_* environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// Without an explicit path, files are searched at .hotline.yaml and
// .hotline.yml in the current directory, then ~/.hotline/config.yaml and
// ~/.hotline/config.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from the given file, or from the standard
// locations when path is empty. A missing file in the standard locations is
// not an error; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, candidate := range defaultPaths() {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := loadFile(candidate, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", candidate, err)
			}
			break
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// defaultPaths returns the standard config file locations in search order.
func defaultPaths() []string {
	return []string{
		".hotline.yaml",
		".hotline.yml",
		filepath.Join(os.Getenv("HOME"), ".hotline", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".hotline", "config.yml"),
	}
}

// loadFile reads and parses a YAML config file into cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies HOTLINE_* environment variables to cfg. These
// are the same names the original CLI-only tool used, so existing setups
// keep working.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOTLINE_ENDPOINT"); v != "" {
		cfg.Linear.Endpoint = v
	}
	if v := os.Getenv("HOTLINE_API_KEY"); v != "" {
		cfg.Linear.APIKey = v
	}
	if v := os.Getenv("HOTLINE_TEAM_ID"); v != "" {
		cfg.Linear.TeamID = v
	}
	if v := os.Getenv("HOTLINE_PROJECT_ID"); v != "" {
		cfg.Linear.ProjectID = v
	}
	if v := os.Getenv("HOTLINE_PROXY_URL"); v != "" {
		cfg.Proxy.URL = v
	}
	if v := os.Getenv("HOTLINE_PROXY_TOKEN"); v != "" {
		cfg.Proxy.Token = v
	}
}

// Validate checks that the configuration can actually file a report in its
// selected mode. Called after all sources are applied.
func (c *Config) Validate() error {
	switch c.Mode() {
	case ModeProxy:
		// The relay holds credentials and IDs; the URL is all we need.
		return nil
	case ModeDirect:
		if c.Linear.APIKey == "" {
			return fmt.Errorf("no proxy URL or API key configured: set HOTLINE_PROXY_URL or HOTLINE_API_KEY")
		}
		if c.Linear.Endpoint == "" {
			return fmt.Errorf("linear endpoint cannot be empty")
		}
		if c.Linear.TeamID == "" {
			return fmt.Errorf("team ID is required for direct mode: set HOTLINE_TEAM_ID or --team-id")
		}
		if c.Linear.ProjectID == "" {
			return fmt.Errorf("project ID is required for direct mode: set HOTLINE_PROJECT_ID or --project-id")
		}
	}
	return nil
}
