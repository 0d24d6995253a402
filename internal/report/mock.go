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

import "context"

// MockReporter is a Reporter implementation for testing the CLI and other
// callers without network access.
type MockReporter struct {
	// URL to return on success.
	URL string

	// Error to return instead of URL.
	Error error

	// Track calls for verification.
	CallCount       int
	LastTitle       string
	LastDescription string
	LastInfo        []Field
}

// CreateIssue implements the Reporter interface.
func (m *MockReporter) CreateIssue(ctx context.Context, title, description string, info []Field) (string, error) {
	m.CallCount++
	m.LastTitle = title
	m.LastDescription = description
	m.LastInfo = info

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if m.Error != nil {
		return "", m.Error
	}
	if m.URL != "" {
		return m.URL, nil
	}
	return "https://linear.app/empathic/issue/EMP-1", nil
}
