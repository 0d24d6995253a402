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

package config

import "github.com/empathichq/hotline/internal/linear"

// Mode selects how a report reaches Linear.
type Mode string

const (
	// ModeDirect calls Linear's API with a caller-held API key.
	ModeDirect Mode = "direct"
	// ModeProxy routes through a relay that holds the API key.
	ModeProxy Mode = "proxy"
)

// Config holds everything the CLI needs to file a report. Values come from
// a YAML file, HOTLINE_* environment variables, and command-line flags, in
// ascending precedence.
type Config struct {
	Linear LinearConfig `yaml:"linear"`
	Proxy  ProxyConfig  `yaml:"proxy"`
}

// LinearConfig contains direct-mode settings. Endpoint is overridable for
// tests and self-hosted gateways.
type LinearConfig struct {
	Endpoint  string `yaml:"endpoint"`
	APIKey    string `yaml:"api_key"`
	TeamID    string `yaml:"team_id"`
	ProjectID string `yaml:"project_id"`
}

// ProxyConfig contains proxy-mode settings. A non-empty URL selects proxy
// mode; Token is optional bearer authentication against the relay.
type ProxyConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// DefaultConfig returns a Config with built-in defaults. Credentials have
// no defaults; they must come from file, environment, or flags.
func DefaultConfig() *Config {
	return &Config{
		Linear: LinearConfig{
			Endpoint: linear.DefaultEndpoint,
		},
	}
}

// Mode returns the report mode the configuration selects. A configured
// proxy URL wins over an API key, so distributed setups can keep a key
// around for discovery while still reporting through the relay.
func (c *Config) Mode() Mode {
	if c.Proxy.URL != "" {
		return ModeProxy
	}
	return ModeDirect
}
