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

package linear

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shurcooL/graphql"

	"github.com/empathichq/hotline/pkg/version"
)

// Direct mode needs a team ID and a project ID, which Linear only shows
// buried in its UI. The discovery queries here let the CLI list them, and
// double as an API key check.

// Viewer identifies the user the API key belongs to.
type Viewer struct {
	ID    string
	Name  string
	Email string
}

// Project is a Linear project an issue can be filed into.
type Project struct {
	ID   string
	Name string
}

// Team is a Linear team with the projects it owns.
type Team struct {
	ID       string
	Key      string
	Name     string
	Projects []Project
}

// maximum teams and nested projects fetched per discovery call. Workspaces
// are small; pagination is not worth carrying here.
const (
	discoveryTeamLimit    = 50
	discoveryProjectLimit = 25
)

// Viewer returns the user the configured API key authenticates as. A
// failure here almost always means the key is invalid.
func (c *Client) Viewer(ctx context.Context) (*Viewer, error) {
	var query struct {
		Viewer struct {
			ID    graphql.String
			Name  graphql.String
			Email graphql.String
		}
	}

	if err := c.gql().Query(ctx, &query, nil); err != nil {
		return nil, fmt.Errorf("failed to query viewer: %w", err)
	}

	return &Viewer{
		ID:    string(query.Viewer.ID),
		Name:  string(query.Viewer.Name),
		Email: string(query.Viewer.Email),
	}, nil
}

// Teams lists the workspace's teams and their projects so users can find
// the IDs to put in their configuration.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var query struct {
		Teams struct {
			Nodes []struct {
				ID       graphql.String
				Key      graphql.String
				Name     graphql.String
				Projects struct {
					Nodes []struct {
						ID   graphql.String
						Name graphql.String
					}
				} `graphql:"projects(first: $projectLimit)"`
			}
		} `graphql:"teams(first: $teamLimit)"`
	}

	variables := map[string]interface{}{
		"teamLimit":    graphql.Int(discoveryTeamLimit),
		"projectLimit": graphql.Int(discoveryProjectLimit),
	}

	if err := c.gql().Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]Team, 0, len(query.Teams.Nodes))
	for _, node := range query.Teams.Nodes {
		team := Team{
			ID:       string(node.ID),
			Key:      string(node.Key),
			Name:     string(node.Name),
			Projects: make([]Project, 0, len(node.Projects.Nodes)),
		}
		for _, p := range node.Projects.Nodes {
			team.Projects = append(team.Projects, Project{
				ID:   string(p.ID),
				Name: string(p.Name),
			})
		}
		teams = append(teams, team)
	}

	return teams, nil
}

// gql builds a GraphQL client that authenticates the way Linear expects.
func (c *Client) gql() *graphql.Client {
	httpClient := &http.Client{
		Transport: &authTransport{
			apiKey: c.apiKey,
			base:   c.hc.Transport,
		},
		Timeout: c.hc.Timeout,
	}
	return graphql.NewClient(c.endpoint, httpClient)
}

// authTransport adds Linear authentication to outgoing requests. The raw
// API key goes in the Authorization header; Linear rejects Bearer-prefixed
// personal keys.
type authTransport struct {
	apiKey string
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("User-Agent", "hotline/"+version.Version)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
