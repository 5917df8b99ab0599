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
	"cmp"
	"slices"
)

// Offense is one occurrence of the deprecated os.path API on a source line.
// Two offenses are equal iff both fields are equal; distinct syntactic
// matches on the same line collapse to one offense during deduplication.
type Offense struct {
	// Line is the 1-based source line of the matched node.
	Line int

	// Text is the stripped source line, or [MissingLineText] when the line
	// number falls outside the analyzed source.
	Text string
}

// MissingLineText is the sentinel offense text used when no source line is
// available for a matched node.
const MissingLineText = "<source line not available>"

// Compare orders offenses by line number, then by line text.
func (o Offense) Compare(other Offense) int {
	if c := cmp.Compare(o.Line, other.Line); c != 0 {
		return c
	}

	return cmp.Compare(o.Text, other.Text)
}

// finalize sorts the raw offense list by (line, text) and removes duplicate
// pairs. It is pure up to reordering its argument in place.
func finalize(offenses []Offense) []Offense {
	slices.SortFunc(offenses, Offense.Compare)

	return slices.Compact(offenses)
}
