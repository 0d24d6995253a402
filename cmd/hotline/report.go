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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/empathichq/hotline/internal/config"
	"github.com/empathichq/hotline/internal/linear"
	"github.com/empathichq/hotline/internal/relay"
	"github.com/empathichq/hotline/internal/report"
	"github.com/empathichq/hotline/internal/sysinfo"
)

// reportTimeout bounds the single network round-trip a report makes.
const reportTimeout = 30 * time.Second

func newReportCommand(configPath *string) *cobra.Command {
	var (
		description string
		apiKey      string
		teamID      string
		projectID   string
		endpoint    string
		proxyURL    string
		proxyToken  string
		extraFields []string
	)

	cmd := &cobra.Command{
		Use:   "report <title>",
		Short: "File a bug report and print the created issue URL",
		Long: `File a bug report as a Linear issue.

The title is required; a longer description is optional. System information
(OS, architecture, versions) is attached as a table in the issue body, and
--field adds your own rows to it.

With --proxy-url (or HOTLINE_PROXY_URL) the report goes through the relay.
Otherwise --api-key (or HOTLINE_API_KEY) files it directly, which also
requires a team ID and project ID; run "hotline teams" to find those.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), reportTimeout)
			defer cancel()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			applyOverride(&cfg.Linear.APIKey, apiKey)
			applyOverride(&cfg.Linear.TeamID, teamID)
			applyOverride(&cfg.Linear.ProjectID, projectID)
			applyOverride(&cfg.Linear.Endpoint, endpoint)
			applyOverride(&cfg.Proxy.URL, proxyURL)
			applyOverride(&cfg.Proxy.Token, proxyToken)

			if err := cfg.Validate(); err != nil {
				return err
			}

			info, err := buildSystemInfo(extraFields)
			if err != nil {
				return err
			}

			return runReport(ctx, newReporter(cfg), args[0], description, info, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Detailed description of the bug")
	cmd.Flags().StringArrayVar(&extraFields, "field", nil, "Extra system-info row as key=value (repeatable)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Linear API key for direct mode (overrides HOTLINE_API_KEY)")
	cmd.Flags().StringVar(&teamID, "team-id", "", "Linear team ID for direct mode (overrides HOTLINE_TEAM_ID)")
	cmd.Flags().StringVar(&projectID, "project-id", "", "Linear project ID for direct mode (overrides HOTLINE_PROJECT_ID)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Linear GraphQL endpoint (overrides HOTLINE_ENDPOINT)")
	cmd.Flags().StringVar(&proxyURL, "proxy-url", "", "Relay URL to report through instead of calling Linear directly (overrides HOTLINE_PROXY_URL)")
	cmd.Flags().StringVar(&proxyToken, "proxy-token", "", "Bearer token for relay authentication (overrides HOTLINE_PROXY_TOKEN)")

	return cmd
}

// applyOverride sets *dst to value when the flag was actually given.
func applyOverride(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// newReporter builds the client the configuration selects.
func newReporter(cfg *config.Config) report.Reporter {
	if cfg.Mode() == config.ModeProxy {
		client := relay.New(cfg.Proxy.URL)
		if cfg.Proxy.Token != "" {
			client = client.WithToken(cfg.Proxy.Token)
		}
		return client
	}
	return linear.New(cfg.Linear.APIKey, cfg.Linear.TeamID, cfg.Linear.ProjectID,
		linear.WithEndpoint(cfg.Linear.Endpoint))
}

// buildSystemInfo combines the collected defaults with --field additions,
// preserving order.
func buildSystemInfo(extra []string) ([]report.Field, error) {
	info := sysinfo.Collect()
	for _, kv := range extra {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --field %q, expected key=value", kv)
		}
		info = append(info, report.Field{Key: key, Value: value})
	}
	return info, nil
}

// runReport files the report and prints the created issue URL.
func runReport(ctx context.Context, r report.Reporter, title, description string, info []report.Field, out io.Writer) error {
	url, err := r.CreateIssue(ctx, title, description, info)
	if err != nil {
		return fmt.Errorf("failed to file bug report: %w", err)
	}

	fmt.Fprintln(out, url)
	return nil
}
