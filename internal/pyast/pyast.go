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

// Package pyast wraps the tree-sitter Python grammar behind a small parsing
// surface. It turns source text into a syntax tree and locates the first
// syntax error; it knows nothing about lint rules.
package pyast

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SyntaxError describes the first malformed region of a parsed source file.
// Line and Column are 1-based, matching how Python reports its own
// SyntaxError locations.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, offset %d: %s", e.Line, e.Column, e.Msg)
}

// Tree holds a parsed syntax tree. Close must be called to release the
// underlying tree-sitter resources.
type Tree struct {
	tree *sitter.Tree
}

// Parse parses Python source into a syntax tree. Tree-sitter is
// error-tolerant, so a non-nil error only indicates a failure of the parser
// itself; malformed source is detected afterwards with [Tree.Check].
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}

	return &Tree{tree: tree}, nil
}

// Root returns the root node of the parsed tree.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Check scans the tree for the first ERROR or missing node and reports its
// location. It returns nil for a well-formed tree.
func (t *Tree) Check() *SyntaxError {
	root := t.tree.RootNode()
	if root == nil || !root.HasError() {
		return nil
	}

	node := firstError(root)
	if node == nil {
		// HasError without a locatable node; blame the start of the file.
		return &SyntaxError{Line: 1, Column: 1, Msg: "invalid syntax"}
	}

	msg := "invalid syntax"
	if node.IsMissing() {
		msg = fmt.Sprintf("missing %q", node.Type())
	}

	pt := node.StartPoint()

	return &SyntaxError{
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
		Msg:    msg,
	}
}

// firstError finds the first ERROR or missing node in document order.
// Only subtrees flagged by HasError are descended into.
func firstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}

		if found := firstError(child); found != nil {
			return found
		}
	}

	return nil
}

// Text returns the source text covered by a node.
func Text(node *sitter.Node, src []byte) string {
	end := node.EndByte()
	if end > uint32(len(src)) {
		end = uint32(len(src))
	}

	start := node.StartByte()
	if start > end {
		return ""
	}

	return string(src[start:end])
}

// Walk traverses the named nodes of a subtree depth-first, parent before
// children, calling fn for every node.
func Walk(node *sitter.Node, fn func(*sitter.Node)) {
	fn(node)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		Walk(node.NamedChild(i), fn)
	}
}
