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
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		info        []Field
		want        string
	}{
		{
			name:        "both empty yields empty string",
			description: "",
			info:        nil,
			want:        "",
		},
		{
			name:        "description only, no table",
			description: "desc",
			info:        []Field{},
			want:        "desc",
		},
		{
			name:        "system info only",
			description: "",
			info:        []Field{{Key: "OS", Value: "linux"}},
			want: "## System Info\n\n" +
				"| Field | Value |\n|-------|-------|\n" +
				"| OS | linux |",
		},
		{
			name:        "description and system info",
			description: "crash on startup",
			info: []Field{
				{Key: "OS", Value: "macos"},
				{Key: "Arch", Value: "arm64"},
			},
			want: "crash on startup\n\n" +
				"## System Info\n\n" +
				"| Field | Value |\n|-------|-------|\n" +
				"| OS | macos |\n" +
				"| Arch | arm64 |",
		},
		{
			name:        "caller order preserved, duplicate keys kept",
			description: "",
			info: []Field{
				{Key: "Plugin", Value: "alpha"},
				{Key: "Plugin", Value: "beta"},
				{Key: "Arch", Value: "amd64"},
			},
			want: "## System Info\n\n" +
				"| Field | Value |\n|-------|-------|\n" +
				"| Plugin | alpha |\n" +
				"| Plugin | beta |\n" +
				"| Arch | amd64 |",
		},
		{
			name:        "pipe characters pass through unescaped",
			description: "",
			info:        []Field{{Key: "Shell", Value: "a|b"}},
			want: "## System Info\n\n" +
				"| Field | Value |\n|-------|-------|\n" +
				"| Shell | a|b |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDescription(tt.description, tt.info)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDescriptionProperties(t *testing.T) {
	combos := []struct {
		description string
		info        []Field
	}{
		{"", nil},
		{"desc", nil},
		{"", []Field{{Key: "OS", Value: "linux"}}},
		{"desc\nwith lines\n", []Field{{Key: "OS", Value: "linux"}, {Key: "Go", Value: "go1.24"}}},
		{"trailing spaces   ", []Field{}},
	}

	for _, c := range combos {
		got := FormatDescription(c.description, c.info)

		// Never any trailing whitespace.
		assert.Equal(t, strings.TrimRightFunc(got, unicode.IsSpace), got,
			"output must have no trailing whitespace: %q", got)

		// A table appears iff system info is non-empty.
		hasTable := strings.Contains(got, "| Field | Value |")
		assert.Equal(t, len(c.info) > 0, hasTable,
			"table presence must track system info: %q", got)
	}
}
