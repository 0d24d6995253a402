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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	hoterrors "github.com/empathichq/hotline/internal/errors"
	"github.com/empathichq/hotline/internal/logging"
	"github.com/empathichq/hotline/pkg/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "hotline",
		Short: "File bug reports to Linear",
		Long: `Hotline files bug reports as Linear issues, either by calling the
Linear API directly with an API key, or through a relay that holds the key
on your behalf (recommended for open source / distributed binaries).`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(logging.NewTerminalHandler(os.Stderr, level)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .hotline.yaml, ~/.hotline/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including raw API responses")

	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newTeamsCommand(&configPath))

	return rootCmd
}

// mapErrorToExitCode maps report failures to exit codes so scripts can tell
// a network failure apart from a rejection without parsing error text.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	var reqErr *hoterrors.RequestError
	if errors.As(err, &reqErr) {
		return 3 // Network errors
	}

	var apiErr *hoterrors.APIError
	var proxyErr *hoterrors.ProxyError
	if errors.As(err, &apiErr) || errors.As(err, &proxyErr) {
		return 2 // Linear or the relay rejected the report
	}

	return 1 // General error
}
