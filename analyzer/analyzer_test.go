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

package analyzer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/pathlint/analyzer"
)

func TestSource(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []Offense
	}{
		// Module imports
		{
			name: "module_import",
			src:  "import os.path\nprint('x')",
			want: []Offense{{Line: 1, Text: "import os.path"}},
		},
		{
			name: "aliased_module_import",
			src:  "import os.path as osp",
			want: []Offense{{Line: 1, Text: "import os.path as osp"}},
		},
		{
			name: "plain_os_import",
			src:  "import os",
			want: nil,
		},
		{
			name: "unrelated_dotted_import",
			src:  "import xml.etree",
			want: nil,
		},

		// Name imports
		{
			name: "name_import",
			src:  "from os import path",
			want: []Offense{{Line: 1, Text: "from os import path"}},
		},
		{
			name: "aliased_name_import",
			src:  "from os import path as p",
			want: []Offense{{Line: 1, Text: "from os import path as p"}},
		},
		{
			name: "name_import_mixed_list",
			src:  "from os import getcwd, path, sep",
			want: []Offense{{Line: 1, Text: "from os import getcwd, path, sep"}},
		},
		{
			name: "name_import_other",
			src:  "from os import getcwd",
			want: nil,
		},
		{
			name: "wildcard_from_os",
			src:  "from os import *",
			want: nil,
		},

		// Submodule imports
		{
			name: "submodule_import",
			src:  "from os.path import join",
			want: []Offense{{Line: 1, Text: "from os.path import join"}},
		},
		{
			name: "submodule_import_many",
			src:  "from os.path import join, exists",
			want: []Offense{{Line: 1, Text: "from os.path import join, exists"}},
		},
		{
			name: "submodule_wildcard",
			src:  "from os.path import *",
			want: []Offense{{Line: 1, Text: "from os.path import *"}},
		},

		// Attribute and call access
		{
			name: "attribute_access",
			src:  "import os\nsep = os.path.sep",
			want: []Offense{{Line: 2, Text: "sep = os.path.sep"}},
		},
		{
			name: "call_collapses_with_attribute",
			src:  "import os\nresult = os.path.join('a','b')",
			want: []Offense{{Line: 2, Text: "result = os.path.join('a','b')"}},
		},
		{
			name: "bare_two_level_chain_is_clean",
			src:  "import os\np = os.path",
			want: nil,
		},
		{
			name: "nested_in_function",
			src:  "import os\ndef f():\n    return os.path.exists('x')",
			want: []Offense{{Line: 3, Text: "return os.path.exists('x')"}},
		},
		{
			name: "lookalike_root_is_clean",
			src:  "sep = myos.path.sep",
			want: nil,
		},

		// Clean and empty sources
		{
			name: "pathlib_only",
			src:  "from pathlib import Path\np = Path('t')",
			want: nil,
		},
		{
			name: "empty_source",
			src:  "",
			want: nil,
		},

		// Ordering across lines
		{
			name: "sorted_by_line",
			src:  "import os.path\nx = os.path.sep\ny = os.path.join('a')",
			want: []Offense{
				{Line: 1, Text: "import os.path"},
				{Line: 2, Text: "x = os.path.sep"},
				{Line: 3, Text: "y = os.path.join('a')"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New().Source(context.Background(), []byte(tt.src), tt.name+".py")
			if err != nil {
				t.Fatalf("Source() error = %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Source() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSourceIdempotent(t *testing.T) {
	t.Parallel()

	src := []byte("import os.path\nx = os.path.join('a', 'b')\n")
	a := New()

	first, err := a.Source(context.Background(), src, "idem.py")
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}

	second, err := a.Source(context.Background(), src, "idem.py")
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}

	if !slices.Equal(first, second) {
		t.Errorf("repeated analysis differs: %v vs %v", first, second)
	}
}

func TestSourceSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := New().Source(context.Background(), []byte("def f(:\n    pass\n"), "broken.py")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Source() error = %v, want *ParseError", err)
	}

	if parseErr.Path != "broken.py" {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, "broken.py")
	}

	if parseErr.Line < 1 || parseErr.Column < 1 {
		t.Errorf("ParseError location = (%d, %d), want 1-based values", parseErr.Line, parseErr.Column)
	}
}

func TestSourceFileTooLarge(t *testing.T) {
	t.Parallel()

	a := New(WithMaxFileSize(8))

	_, err := a.Source(context.Background(), []byte("import os.path\n"), "big.py")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("Source() error = %v, want ErrFileTooLarge", err)
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Source() error = %v, want *ReadError", err)
	}
}

func TestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.py")
	if err := os.WriteFile(path, []byte("import os.path\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().File(context.Background(), path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	want := []Offense{{Line: 1, Text: "import os.path"}}
	if !slices.Equal(got, want) {
		t.Errorf("File() = %v, want %v", got, want)
	}
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.py")

	_, err := New().File(context.Background(), path)

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("File() error = %v, want *ReadError", err)
	}

	if readErr.Path != path {
		t.Errorf("ReadError.Path = %q, want %q", readErr.Path, path)
	}
}
