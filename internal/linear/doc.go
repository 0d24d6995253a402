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

// Package linear is the direct-mode client: it calls Linear's GraphQL API
// with a caller-held API key. Linear expects the raw key in the
// Authorization header, not a Bearer token.
//
// Issue creation posts a fixed IssueCreate mutation through internal/httpjson
// so the client can see raw statuses and the errors field Linear embeds in
// 200 responses. The workspace discovery queries (Viewer, Teams) ride on
// shurcooL/graphql instead; they have no such classification needs.
//
// Basic usage:
//
//	client := linear.New("lin_api_...", "team-id", "project-id")
//	url, err := client.CreateIssue(ctx, "crash on startup", "details...", []report.Field{
//	    {Key: "OS", Value: "linux"},
//	})
package linear
