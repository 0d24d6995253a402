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

	"github.com/spf13/cobra"

	"github.com/empathichq/hotline/internal/config"
	"github.com/empathichq/hotline/internal/linear"
)

func newTeamsCommand(configPath *string) *cobra.Command {
	var (
		apiKey   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List Linear teams and projects for direct-mode setup",
		Long: `List the teams and projects of the Linear workspace the configured API
key belongs to. Direct mode needs a team ID and a project ID; this command
shows where to find them. It also verifies that the API key works.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), reportTimeout)
			defer cancel()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			applyOverride(&cfg.Linear.APIKey, apiKey)
			applyOverride(&cfg.Linear.Endpoint, endpoint)

			if cfg.Linear.APIKey == "" {
				return fmt.Errorf("an API key is required to list teams: set HOTLINE_API_KEY or use --api-key")
			}

			client := linear.New(cfg.Linear.APIKey, "", "",
				linear.WithEndpoint(cfg.Linear.Endpoint))

			return runTeams(ctx, client, cmd)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Linear API key (overrides HOTLINE_API_KEY)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Linear GraphQL endpoint (overrides HOTLINE_ENDPOINT)")

	return cmd
}

// runTeams prints the workspace's teams with their projects and IDs.
func runTeams(ctx context.Context, client *linear.Client, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	viewer, err := client.Viewer(ctx)
	if err != nil {
		return fmt.Errorf("could not authenticate with Linear: %w", err)
	}
	fmt.Fprintf(out, "Workspace of %s <%s>\n\n", viewer.Name, viewer.Email)

	teams, err := client.Teams(ctx)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		fmt.Fprintln(out, "No teams visible to this API key.")
		return nil
	}

	for _, team := range teams {
		fmt.Fprintf(out, "%s  %s\n", team.Key, team.Name)
		fmt.Fprintf(out, "    team id: %s\n", team.ID)
		for _, p := range team.Projects {
			fmt.Fprintf(out, "    project: %s (id: %s)\n", p.Name, p.ID)
		}
	}

	return nil
}
