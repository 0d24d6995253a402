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

// Command hotline files bug reports to Linear from the command line.
//
// Reports travel one of two ways. With a proxy URL configured the report
// goes to a relay that holds the Linear API key, which is the recommended
// setup for distributed binaries. With an API key configured the report
// goes straight to Linear's GraphQL API. A proxy URL wins when both are
// present.
//
//	hotline report "crash on startup" -d "stack trace attached"
//	hotline teams
//
// Configuration comes from flags, HOTLINE_* environment variables, and
// .hotline.yaml / ~/.hotline/config.yaml, in that precedence order.
//
// Exit codes: 0 on success, 2 when Linear or the relay rejected the report,
// 3 when the network exchange itself failed, 1 for anything else. Scripts
// can branch on the code without parsing error text.
package main
