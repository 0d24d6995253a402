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

// Package report defines the bug-report capability shared by the two client
// modes: calling Linear directly with an API key (internal/linear), or going
// through a relay that holds the key (internal/relay). The two clients share
// no implementation; their request shapes and failure modes genuinely differ,
// so this package only fixes the contract and the description rendering.
package report

import "context"

// Field is one system-info key/value pair attached to a report, for example
// ("OS", "linux"). Fields render in the order supplied; keys need not be
// unique, duplicates render as separate table rows.
type Field struct {
	Key   string
	Value string
}

// Reporter files a bug report and returns the URL of the created issue.
// Implementations are immutable after construction and safe for concurrent
// use; each call performs exactly one blocking round-trip with no retries.
//
// description may be empty. Every failure is one of the kinds in
// internal/errors.
type Reporter interface {
	CreateIssue(ctx context.Context, title, description string, info []Field) (string, error)
}
