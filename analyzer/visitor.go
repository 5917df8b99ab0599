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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/pathlint/internal/pyast"
)

// Names making up the deprecated chain. The patterns are fixed rules of the
// linter, not configuration.
const (
	rootName      = "os"
	attrName      = "path"
	dottedModule  = "os.path"
	kindImport    = "import_statement"
	kindFrom      = "import_from_statement"
	kindAttribute = "attribute"
	kindCall      = "call"
	kindDotted    = "dotted_name"
	kindAliased   = "aliased_import"
	kindName      = "identifier"
)

// visitor accumulates raw offenses while walking one file's syntax tree.
// State is owned by a single file analysis; a fresh visitor is created per
// file.
type visitor struct {
	src      []byte
	lines    []string
	offenses []Offense
}

// visit tests a single node against the four offense patterns. The patterns
// are independent: an attribute chain used as a callee matches both the
// attribute and the call rule, and deduplication resolves the overlap.
func (v *visitor) visit(node *sitter.Node) {
	switch node.Type() {
	case kindImport:
		v.importStatement(node)

	case kindFrom:
		v.importFromStatement(node)

	case kindAttribute:
		if v.chainsOSPath(node) {
			v.record(node)
		}

	case kindCall:
		if fn := node.ChildByFieldName("function"); fn != nil && v.chainsOSPath(fn) {
			v.record(node)
		}
	}
}

// importStatement catches "import os.path", plain or aliased.
func (v *visitor) importStatement(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case kindDotted:
			if pyast.Text(child, v.src) == dottedModule {
				v.record(node)
			}

		case kindAliased:
			if name := child.ChildByFieldName("name"); name != nil && pyast.Text(name, v.src) == dottedModule {
				v.record(node)
			}
		}
	}
}

// importFromStatement catches "from os import path" when one of the imported
// names is literally path, and "from os.path import ..." regardless of the
// imported names.
func (v *visitor) importFromStatement(node *sitter.Node) {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return
	}

	switch pyast.Text(module, v.src) {
	case dottedModule:
		v.record(node)

	case rootName:
		// Names follow the "import" keyword; one offense per matching name,
		// collapsed later by dedup.
		sawImport := false
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)

			switch child.Type() {
			case "import":
				sawImport = true

			case kindDotted, kindName:
				if sawImport && pyast.Text(child, v.src) == attrName {
					v.record(node)
				}

			case kindAliased:
				if name := child.ChildByFieldName("name"); name != nil && pyast.Text(name, v.src) == attrName {
					v.record(node)
				}
			}
		}
	}
}

// chainsOSPath reports whether node is an attribute access whose object is
// itself the attribute access os.path rooted at a plain name. A bare os.path
// read is not a chain and does not match.
func (v *visitor) chainsOSPath(node *sitter.Node) bool {
	if node.Type() != kindAttribute {
		return false
	}

	object := node.ChildByFieldName("object")
	if object == nil || object.Type() != kindAttribute {
		return false
	}

	root := object.ChildByFieldName("object")
	attr := object.ChildByFieldName("attribute")

	return root != nil && root.Type() == kindName && pyast.Text(root, v.src) == rootName &&
		attr != nil && pyast.Text(attr, v.src) == attrName
}

// record appends an offense for the node's starting line.
func (v *visitor) record(node *sitter.Node) {
	line := int(node.StartPoint().Row) + 1

	text := MissingLineText
	if idx := line - 1; idx >= 0 && idx < len(v.lines) {
		text = strings.TrimSpace(v.lines[idx])
	}

	v.offenses = append(v.offenses, Offense{Line: line, Text: text})
}
