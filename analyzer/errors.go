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
	"errors"
	"fmt"
)

// ErrFileTooLarge is wrapped into a [ReadError] when a source file exceeds
// the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadError reports a file whose content could not be obtained. The file is
// skipped; a read failure never aborts a run.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError reports a file that failed to parse, with the 1-based location
// of the first syntax error. The file is skipped with zero offenses.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Msg    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in %s at line %d, offset %d: %s", e.Path, e.Line, e.Column, e.Msg)
}
