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
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	hoterrors "github.com/empathichq/hotline/internal/errors"
	"github.com/empathichq/hotline/internal/httpjson"
	"github.com/empathichq/hotline/internal/report"
)

// DefaultEndpoint is Linear's public GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

const issueCreateMutation = `mutation IssueCreate($input: IssueCreateInput!) {
    issueCreate(input: $input) {
        success
        issue {
            id
            identifier
            url
        }
    }
}`

// Client calls Linear's GraphQL API directly with an API key. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	apiKey    string
	teamID    string
	projectID string
	endpoint  string
	hc        *http.Client
	http      *httpjson.Client
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint, e.g. for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithLogger sets the logger for the client's events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a direct-mode client. New issues are filed into the given team
// and project.
func New(apiKey, teamID, projectID string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		teamID:    teamID,
		projectID: projectID,
		endpoint:  DefaultEndpoint,
		hc:        http.DefaultClient,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = httpjson.New(httpjson.WithHTTPClient(c.hc), httpjson.WithLogger(c.log))
	return c
}

// issueCreateResponse matches the success shape of the IssueCreate mutation.
// Errors captures the top-level errors field Linear uses to report
// business-logic failures inside a 200 response.
type issueCreateResponse struct {
	Data struct {
		IssueCreate struct {
			Issue struct {
				ID         string `json:"id"`
				Identifier string `json:"identifier"`
				URL        string `json:"url"`
			} `json:"issue"`
		} `json:"issueCreate"`
	} `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// CreateIssue files a bug report on Linear and returns the created issue URL.
//
// A non-2xx status or an embedded errors field fails with *errors.APIError;
// a success body without an issue URL fails with *errors.ParseError. A
// missing identifier is cosmetic and falls back to "unknown".
func (c *Client) CreateIssue(ctx context.Context, title, description string, info []report.Field) (string, error) {
	body := map[string]any{
		"query": issueCreateMutation,
		"variables": map[string]any{
			"input": map[string]any{
				"teamId":      c.teamID,
				"projectId":   c.projectID,
				"title":       title,
				"description": report.FormatDescription(description, info),
			},
		},
	}
	headers := map[string]string{
		"Authorization": c.apiKey,
	}

	var parsed issueCreateResponse
	resp, err := c.http.PostJSON(ctx, c.endpoint, headers, body, &parsed)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", &hoterrors.APIError{Message: fmt.Sprintf("%d: %s", resp.Status, resp.Body)}
	}
	if len(parsed.Errors) > 0 {
		return "", &hoterrors.APIError{Message: string(parsed.Errors)}
	}

	issue := parsed.Data.IssueCreate.Issue
	if issue.URL == "" {
		return "", &hoterrors.ParseError{Message: "linear response missing issue url"}
	}
	identifier := issue.Identifier
	if identifier == "" {
		identifier = "unknown"
	}

	c.log.InfoContext(ctx, "created linear issue", "identifier", identifier, "url", issue.URL)
	return issue.URL, nil
}
