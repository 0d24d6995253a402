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

// Package httpjson performs the single JSON-over-HTTP POST both report
// clients are built on. It deliberately does not classify non-2xx statuses:
// the two modes read rejection bodies differently (Linear embeds GraphQL
// errors in a 200, the relay returns opaque text on non-2xx), so statuses
// are handed back raw and classification stays with the caller.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	hoterrors "github.com/empathichq/hotline/internal/errors"
	"github.com/empathichq/hotline/pkg/version"
)

// maxResponseBytes caps how much of a response body is read. Issue-create
// responses are tiny; anything near this limit is garbage.
const maxResponseBytes = 1 << 20

// Response is the outcome of a completed HTTP exchange. Body holds the full
// response text regardless of status; decoding into the caller's type only
// happens for 2xx statuses.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the response carried a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client issues JSON POST requests. The zero value is not usable; call New.
type Client struct {
	hc  *http.Client
	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, e.g. to set a timeout
// or point tests at a local server.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithLogger sets the logger used for the debug trace of responses.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a JSON POST client. By default it uses http.DefaultClient and
// slog.Default.
func New(opts ...Option) *Client {
	c := &Client{
		hc:  http.DefaultClient,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostJSON serializes body, issues a single POST with the given headers plus
// Content-Type: application/json, and reads the full response.
//
// Failure handling:
//   - transport-level failures (DNS, connect, TLS, timeout) return a
//     *errors.RequestError wrapping the cause; the call is not retried
//   - non-2xx statuses are not an error here: the Response carries the
//     status and raw body for the caller to classify
//   - a 2xx response whose body is not valid JSON returns a
//     *errors.ParseError; otherwise the body is decoded into out
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body, out any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &hoterrors.ParseError{Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &hoterrors.RequestError{Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "hotline/"+version.Version)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &hoterrors.RequestError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &hoterrors.RequestError{Err: err}
	}

	result := &Response{
		Status: resp.StatusCode,
		Body:   respBody,
	}
	if !result.OK() {
		return result, nil
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return nil, &hoterrors.ParseError{Message: err.Error()}
		}
	}

	c.log.DebugContext(ctx, "tracker response received",
		"url", url,
		"status", resp.StatusCode,
		"response", string(respBody))

	return result, nil
}
