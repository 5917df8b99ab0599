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

package analyzer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fillmore-labs.com/pathlint/internal/pyast"
)

// DefaultMaxFileSize is the largest source file Source accepts unless
// configured otherwise with [WithMaxFileSize].
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Analyzer detects deprecated os.path usage in Python source. The zero
// configuration from [New] is suitable for command-line use; [Option] values
// exist for embedding the analyzer into other tools.
//
// An Analyzer is stateless between calls and safe for concurrent use; all
// per-file state lives in a visitor created per call.
type Analyzer struct {
	maxFileSize int64
}

// New creates a new [Analyzer], applying any [Option] values over the
// defaults.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{maxFileSize: DefaultMaxFileSize}
	Options(opts).apply(a)

	return a
}

// Source analyzes Python source text and returns the deduplicated offense
// list, sorted by (line, text). The path is used in error values only.
//
// A malformed file yields a *[ParseError] and no offenses; oversized input
// yields a *[ReadError] wrapping [ErrFileTooLarge].
func (a *Analyzer) Source(ctx context.Context, src []byte, path string) ([]Offense, error) {
	if a.maxFileSize > 0 && int64(len(src)) > a.maxFileSize {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(src))}
	}

	tree, err := pyast.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	if serr := tree.Check(); serr != nil {
		return nil, &ParseError{Path: path, Line: serr.Line, Column: serr.Column, Msg: serr.Msg}
	}

	v := &visitor{src: src, lines: strings.Split(string(src), "\n")}
	pyast.Walk(tree.Root(), v.visit)

	return finalize(v.offenses), nil
}

// File reads a file and analyzes its content with [Analyzer.Source]. A
// failed read yields a *[ReadError] carrying the underlying cause.
func (a *Analyzer) File(ctx context.Context, path string) ([]Offense, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return a.Source(ctx, src, path)
}
