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

// Package errors defines the closed set of error kinds a bug-report call can
// fail with. Callers branch on kind with errors.As to decide how to react
// (for example, whether a retry could ever help); nothing in this package is
// matched by message text.
//
// The four kinds map to CLI exit codes in cmd/hotline:
//   - RequestError: the HTTP exchange itself failed (exit code 3)
//   - APIError, ProxyError: the remote side rejected the report (exit code 2)
//   - ParseError: the response could not be understood (exit code 1)
package errors

import "fmt"

// RequestError indicates the HTTP exchange could not complete at all:
// DNS failure, connection refused, TLS handshake, timeout. The underlying
// cause is preserved for errors.Is/As inspection.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError indicates the Linear API rejected the mutation, either with a
// non-2xx status or with an errors field embedded in a 200 response.
// Direct mode only.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linear api error: %s", e.Message)
}

// ProxyError indicates the relay returned a non-2xx status. The response
// body is preserved verbatim; the relay's error format is not assumed to
// be JSON. Proxy mode only.
type ProxyError struct {
	Status int
	Body   string
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("proxy returned error %d: %s", e.Status, e.Body)
}

// ParseError indicates a response that completed with a success status but
// could not be used: malformed JSON, or a success body missing a required
// field such as the issue URL. Either mode.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %s", e.Message)
}
