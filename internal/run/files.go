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

package run

import (
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// collect resolves the path arguments into the sorted set of files to lint.
// Directories are walked recursively for matching suffixes; missing paths
// and non-matching files are reported and skipped, never fatal.
func (r *Runner) collect(paths []string) []string {
	seen := make(map[string]struct{})

	for _, arg := range paths {
		path, err := filepath.Abs(arg)
		if err != nil {
			r.log.Warn("skipping path", slog.String("path", arg), slog.Any("err", err))

			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			r.log.Warn("path does not exist or is not accessible", slog.String("path", arg))

			continue
		}

		switch {
		case info.IsDir():
			r.walkDir(path, seen)

		case r.settings.Matches(path):
			seen[path] = struct{}{}

		default:
			r.log.Info("skipping non-Python file", slog.String("path", arg))
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// walkDir adds every matching regular file under root to the set.
func (r *Runner) walkDir(root string, seen map[string]struct{}) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.log.Warn("cannot traverse", slog.String("path", path), slog.Any("err", err))

			return nil
		}

		if !d.IsDir() && r.settings.Matches(path) {
			seen[path] = struct{}{}
		}

		return nil
	})
	if err != nil {
		r.log.Warn("directory walk aborted", slog.String("path", root), slog.Any("err", err))
	}
}
