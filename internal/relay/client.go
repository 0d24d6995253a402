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

// Package relay is the proxy-mode client: it posts bug reports to a relay
// that holds the Linear API key, so distributed binaries never embed a
// secret. The relay speaks a flat JSON contract ({title, description} in,
// {url} out) and supplies the team and project itself.
package relay

import (
	"context"
	"log/slog"
	"net/http"

	hoterrors "github.com/empathichq/hotline/internal/errors"
	"github.com/empathichq/hotline/internal/httpjson"
	"github.com/empathichq/hotline/internal/report"
)

// Client posts bug reports to a relay URL, optionally authenticating with a
// bearer token. It is immutable; WithToken returns a modified copy, so a
// Client can be shared across concurrent call sites.
type Client struct {
	url   string
	token string
	hc    *http.Client
	http  *httpjson.Client
	log   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

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

// New creates a proxy-mode client that posts to the given relay URL.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url: url,
		hc:  http.DefaultClient,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = httpjson.New(httpjson.WithHTTPClient(c.hc), httpjson.WithLogger(c.log))
	return c
}

// WithToken returns a copy of the client that sends
// "Authorization: Bearer <token>" on every call. The receiver is left
// unchanged; calling WithToken again replaces the token on the copy.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// relayResponse is the relay's flat success shape.
type relayResponse struct {
	URL string `json:"url"`
}

// CreateIssue files a bug report through the relay and returns the created
// issue URL.
//
// A non-2xx status fails with *errors.ProxyError carrying the status and
// the body verbatim; the relay's error format is not assumed to be JSON.
func (c *Client) CreateIssue(ctx context.Context, title, description string, info []report.Field) (string, error) {
	payload := map[string]any{
		"title":       title,
		"description": report.FormatDescription(description, info),
	}

	var headers map[string]string
	if c.token != "" {
		headers = map[string]string{"Authorization": "Bearer " + c.token}
	}

	var parsed relayResponse
	resp, err := c.http.PostJSON(ctx, c.url, headers, payload, &parsed)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", &hoterrors.ProxyError{Status: resp.Status, Body: string(resp.Body)}
	}
	if parsed.URL == "" {
		return "", &hoterrors.ParseError{Message: "proxy response missing url"}
	}

	c.log.InfoContext(ctx, "created linear issue via proxy", "url", parsed.URL)
	return parsed.URL, nil
}
