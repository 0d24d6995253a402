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

// Package sysinfo collects the diagnostic key/value pairs the CLI attaches
// to every bug report.
package sysinfo

import (
	"runtime"

	"github.com/empathichq/hotline/internal/report"
	"github.com/empathichq/hotline/pkg/version"
)

// Collect returns the default system-info fields, in the order they render
// in the issue body. Callers append their own fields after these.
func Collect() []report.Field {
	return []report.Field{
		{Key: "OS", Value: runtime.GOOS},
		{Key: "Arch", Value: runtime.GOARCH},
		{Key: "Go", Value: runtime.Version()},
		{Key: "Version", Value: version.Version},
	}
}
