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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	hoterrors "github.com/empathichq/hotline/internal/errors"
	"github.com/empathichq/hotline/internal/report"
)

func TestClient_CreateIssue(t *testing.T) {
	tests := []struct {
		name         string
		responseCode int
		responseBody string
		wantURL      string
		wantAPIErr   string
		wantParseErr string
	}{
		{
			name:         "successful creation returns issue url",
			responseCode: http.StatusOK,
			responseBody: `{"data":{"issueCreate":{"success":true,"issue":{"id":"abc-123","identifier":"EMP-42","url":"https://x/EMP-42"}}}}`,
			wantURL:      "https://x/EMP-42",
		},
		{
			name:         "missing identifier is cosmetic, not an error",
			responseCode: http.StatusOK,
			responseBody: `{"data":{"issueCreate":{"success":true,"issue":{"id":"abc-123","url":"https://x/EMP-43"}}}}`,
			wantURL:      "https://x/EMP-43",
		},
		{
			name:         "embedded errors field inside a 200",
			responseCode: http.StatusOK,
			responseBody: `{"errors":[{"message":"Invalid input"}]}`,
			wantAPIErr:   "Invalid input",
		},
		{
			name:         "non-2xx status",
			responseCode: http.StatusBadRequest,
			responseBody: `{"error":"bad api key"}`,
			wantAPIErr:   `400: {"error":"bad api key"}`,
		},
		{
			name:         "success body without issue url",
			responseCode: http.StatusOK,
			responseBody: `{"data":{"issueCreate":{"success":true,"issue":{"id":"abc-123","identifier":"EMP-44"}}}}`,
			wantParseErr: "missing issue url",
		},
		{
			name:         "malformed success body",
			responseCode: http.StatusOK,
			responseBody: `{"data":`,
			wantParseErr: "unexpected end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if auth := r.Header.Get("Authorization"); auth != "lin_api_test" {
					t.Errorf("expected raw api key in Authorization, got %q", auth)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("expected application/json, got %q", ct)
				}

				var reqBody struct {
					Query     string `json:"query"`
					Variables struct {
						Input map[string]string `json:"input"`
					} `json:"variables"`
				}
				if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if !strings.Contains(reqBody.Query, "mutation IssueCreate") {
					t.Errorf("query missing IssueCreate mutation: %s", reqBody.Query)
				}
				if reqBody.Variables.Input["teamId"] != "team-1" {
					t.Errorf("expected teamId team-1, got %q", reqBody.Variables.Input["teamId"])
				}
				if reqBody.Variables.Input["projectId"] != "proj-1" {
					t.Errorf("expected projectId proj-1, got %q", reqBody.Variables.Input["projectId"])
				}
				if reqBody.Variables.Input["title"] != "crash on startup" {
					t.Errorf("unexpected title %q", reqBody.Variables.Input["title"])
				}

				w.WriteHeader(tt.responseCode)
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := New("lin_api_test", "team-1", "proj-1", WithEndpoint(server.URL))
			url, err := client.CreateIssue(context.Background(), "crash on startup", "details", nil)

			switch {
			case tt.wantAPIErr != "":
				var apiErr *hoterrors.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %v", err)
				}
				if !strings.Contains(apiErr.Message, tt.wantAPIErr) {
					t.Errorf("expected message containing %q, got %q", tt.wantAPIErr, apiErr.Message)
				}
			case tt.wantParseErr != "":
				var parseErr *hoterrors.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ParseError, got %v", err)
				}
				if !strings.Contains(parseErr.Message, tt.wantParseErr) {
					t.Errorf("expected message containing %q, got %q", tt.wantParseErr, parseErr.Message)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if url != tt.wantURL {
					t.Errorf("expected url %q, got %q", tt.wantURL, url)
				}
			}
		})
	}
}

func TestClient_CreateIssueRendersDescription(t *testing.T) {
	var gotDescription string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody struct {
			Variables struct {
				Input map[string]string `json:"input"`
			} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		gotDescription = reqBody.Variables.Input["description"]

		w.Write([]byte(`{"data":{"issueCreate":{"success":true,"issue":{"id":"i","identifier":"EMP-1","url":"https://x/EMP-1"}}}}`))
	}))
	defer server.Close()

	client := New("lin_api_test", "team-1", "proj-1", WithEndpoint(server.URL))
	info := []report.Field{{Key: "OS", Value: "linux"}}
	if _, err := client.CreateIssue(context.Background(), "crash", "details...", info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := report.FormatDescription("details...", info)
	if gotDescription != want {
		t.Errorf("expected rendered description %q, got %q", want, gotDescription)
	}
	if !strings.Contains(gotDescription, "| OS | linux |") {
		t.Errorf("system info table missing from description: %q", gotDescription)
	}
}

func TestClient_CreateIssueTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New("lin_api_test", "team-1", "proj-1", WithEndpoint(url))
	_, err := client.CreateIssue(context.Background(), "crash", "", nil)

	var reqErr *hoterrors.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}

func TestClient_ImplementsReporter(t *testing.T) {
	var _ report.Reporter = New("key", "team", "proj")
}
