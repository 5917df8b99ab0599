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

// Package run drives a lint run: it collects files from the command-line
// arguments, feeds each one through the analyzer, and aggregates results
// into the exit status. All per-file failures are contained here; none of
// them aborts the run.
package run

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"fillmore-labs.com/pathlint/analyzer"
	"fillmore-labs.com/pathlint/internal/config"
	"fillmore-labs.com/pathlint/internal/report"
)

// Exit codes of the pathlint command. A run with no matching files at all is
// clean, even if some arguments were skipped with warnings.
const (
	ExitClean    = 0
	ExitOffenses = 1
)

// Runner executes one synchronous lint run. Files are processed strictly one
// after another, in sorted order, for reproducible output.
type Runner struct {
	analyzer *analyzer.Analyzer
	reporter *report.Reporter
	log      *slog.Logger
	settings config.Settings
}

// New creates a [Runner] printing findings to out and diagnostics to the
// logger.
func New(settings config.Settings, out io.Writer, log *slog.Logger) *Runner {
	return &Runner{
		analyzer: analyzer.New(),
		reporter: report.New(out, settings),
		log:      log,
		settings: settings,
	}
}

// Run lints every file reachable from the given path arguments and returns
// the process exit code.
func (r *Runner) Run(ctx context.Context, paths []string) int {
	files := r.collect(paths)
	if len(files) == 0 {
		r.reporter.NoFiles()

		return ExitClean
	}

	var stats report.Stats

	for _, path := range files {
		stats.Processed++

		offenses := r.lintFile(ctx, path)
		if len(offenses) == 0 {
			continue
		}

		stats.FilesWithOffenses++
		stats.TotalOffenses += len(offenses)
		r.reporter.File(path, offenses)
	}

	r.reporter.Summary(stats)

	if stats.Clean() {
		return ExitClean
	}

	return ExitOffenses
}

// lintFile analyzes one file. Read and parse failures are logged to the
// error channel and yield zero offenses.
func (r *Runner) lintFile(ctx context.Context, path string) []analyzer.Offense {
	offenses, err := r.analyzer.File(ctx, path)
	if err == nil {
		return offenses
	}

	var (
		parseErr *analyzer.ParseError
		readErr  *analyzer.ReadError
	)

	switch {
	case errors.As(err, &parseErr):
		r.log.Error("syntax error",
			slog.String("file", parseErr.Path),
			slog.Int("line", parseErr.Line),
			slog.Int("offset", parseErr.Column),
			slog.String("msg", parseErr.Msg))

	case errors.As(err, &readErr):
		r.log.Error("cannot read file",
			slog.String("file", readErr.Path),
			slog.Any("err", readErr.Err))

	default:
		r.log.Error("analysis failed",
			slog.String("file", path),
			slog.Any("err", err))
	}

	return nil
}
