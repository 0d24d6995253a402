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

package report

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatDescription renders the issue body: the free-text description, a
// blank line, then a Markdown table with one row per system-info field.
// Either part may be absent; with both absent the result is the empty
// string. Trailing whitespace is trimmed.
//
// Keys and values are not escaped: a cell containing "|" will corrupt the
// table rendering. Callers own their field content.
func FormatDescription(description string, info []Field) string {
	var b strings.Builder

	if description != "" {
		b.WriteString(description)
		b.WriteString("\n\n")
	}

	if len(info) > 0 {
		b.WriteString("## System Info\n\n")
		b.WriteString("| Field | Value |\n|-------|-------|\n")
		for _, f := range info {
			fmt.Fprintf(&b, "| %s | %s |\n", f.Key, f.Value)
		}
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
