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

// Package report formats lint findings for human consumption. It performs no
// analysis and makes no exit-code decisions.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/pathlint/analyzer"
	"fillmore-labs.com/pathlint/internal/config"
)

// Stats aggregates a run's results for the summary block.
type Stats struct {
	// Processed is the number of files read and analyzed, including files
	// skipped over read or parse errors.
	Processed int

	// FilesWithOffenses is the number of files with at least one offense.
	FilesWithOffenses int

	// TotalOffenses is the offense count across all files.
	TotalOffenses int
}

// Clean reports whether the run found no offenses.
func (s Stats) Clean() bool {
	return s.TotalOffenses == 0
}

// Reporter writes findings and the run summary to a single output stream.
type Reporter struct {
	out     io.Writer
	message string
	silent  bool
	header  *color.Color
	scold   *color.Color
}

// New creates a [Reporter] writing to out, configured by the given settings.
func New(out io.Writer, settings config.Settings) *Reporter {
	header := color.New(color.FgYellow)
	scold := color.New(color.FgRed, color.Bold)

	if settings.NoColor {
		header.DisableColor()
		scold.DisableColor()
	}

	return &Reporter{
		out:     out,
		message: settings.Message,
		silent:  settings.Silent,
		header:  header,
		scold:   scold,
	}
}

// File prints one file's findings, one line per offense, followed by the
// scolding message unless silenced.
func (r *Reporter) File(path string, offenses []analyzer.Offense) {
	r.header.Fprintf(r.out, "\nOffenses found in: %s\n", path)

	for _, o := range offenses {
		fmt.Fprintf(r.out, "  L%d: %s\n", o.Line, o.Text)
	}

	if !r.silent {
		r.scold.Fprintln(r.out, r.message)
	}
}

// NoFiles prints the informational message for a run that matched no files.
func (r *Reporter) NoFiles() {
	fmt.Fprintln(r.out, "No Python files found in the specified paths to lint.")
}

// Summary prints the closing summary block.
func (r *Reporter) Summary(stats Stats) {
	fmt.Fprintln(r.out, "\n--- Linter Summary ---")
	fmt.Fprintf(r.out, "Processed %d Python file(s).\n", stats.Processed)

	if stats.Clean() {
		fmt.Fprintln(r.out, "Congratulations! No 'os.path' usage found.")

		return
	}

	fmt.Fprintf(r.out, "Found a total of %d 'os.path' instance(s) in %d file(s).\n",
		stats.TotalOffenses, stats.FilesWithOffenses)
	fmt.Fprintln(r.out, "Please refactor to pathlib.")
}
