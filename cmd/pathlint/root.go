// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/pathlint/internal/config"
	"fillmore-labs.com/pathlint/internal/run"
)

const version = "0.1.0"

// execute runs the root command over args and returns the process exit
// code. A non-nil error means the invocation itself was invalid, as opposed
// to a completed run that found offenses.
func execute(args []string) (int, error) {
	code := run.ExitClean

	cmd := newRootCommand(&code)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return 0, err
	}

	return code, nil
}

func newRootCommand(code *int) *cobra.Command {
	var (
		silent     bool
		noColor    bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:     "pathlint [flags] PATH...",
		Short:   "A linter that scolds you for using 'os.path'",
		Long:    "Pathlint scans Python files or directories for direct usage\nof the deprecated os.path API and suggests pathlib instead.",
		Version: version,
		Args:    cobra.MinimumNArgs(1),

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Default()

			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}

				settings = loaded
			}

			// Flags only tighten the settings file, matching argparse
			// store_true semantics.
			if silent {
				settings.Silent = true
			}

			if noColor {
				settings.NoColor = true
			}

			runner := run.New(settings, cmd.OutOrStdout(), slog.Default())
			*code = runner.Run(cmd.Context(), args)

			return nil
		},
	}

	cmd.Flags().BoolVar(&silent, "silent", false, "suppress the offense message, only show findings")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&configFile, "config", "", "path to a pathlint.toml settings file")

	return cmd
}
