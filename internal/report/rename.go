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

package report

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Renamer gives shadowing variables names of their own, x_1, x_2 and so on.
//
// A nil *Renamer suggests no fixes.
type Renamer struct {
	// renamed holds variables already renamed.
	renamed map[*types.Var]struct{}

	// count is the last suffix used per name, so suffixes stay unique within a function.
	count map[string]int
}

// NewRenamer creates a new [Renamer].
func NewRenamer() *Renamer {
	return &Renamer{
		renamed: make(map[*types.Var]struct{}),
		count:   make(map[string]int),
	}
}

// Renames returns a fix renaming the declaration and all uses of v within fdecl.
func (r *Renamer) Renames(info *types.Info, fdecl inspector.Cursor, v *types.Var) []analysis.SuggestedFix {
	if r == nil {
		return nil
	}

	if _, ok := r.renamed[v]; ok {
		return nil
	}

	r.renamed[v] = struct{}{}

	name, parent := v.Name(), v.Parent()

	suffix, ok := r.uniqueSuffix(parent, name)
	if !ok {
		return nil
	}

	scope, ok := fdecl.FindByPos(parent.Pos(), parent.End())
	if !ok {
		return nil
	}

	var (
		edits  []analysis.TextEdit
		hasDef bool
		offset = len(name)
	)

	for c := range scope.Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)

		def, ok := identifies(info, id, v)
		if !ok {
			continue
		}

		hasDef = hasDef || def

		pos := id.NamePos + token.Pos(offset)
		edits = append(edits, analysis.TextEdit{Pos: pos, End: pos, NewText: suffix})
	}

	// implicit variables have no declaring identifier to rename
	if !hasDef {
		return nil
	}

	return []analysis.SuggestedFix{{Message: "Rename variable " + name + " to " + name + string(suffix), TextEdits: edits}}
}

// identifies reports whether id refers to v, and whether it declares it.
func identifies(info *types.Info, id *ast.Ident, v *types.Var) (def, ok bool) {
	if obj, ok := info.Uses[id]; ok {
		return false, obj == v
	}

	if obj, ok := info.Defs[id]; ok {
		return true, obj == v
	}

	return false, false
}

// uniqueSuffix returns the next suffix for name that conflicts with no variable in
// the scope hierarchy of scope.
func (r *Renamer) uniqueSuffix(scope *types.Scope, name string) ([]byte, bool) {
	if name == "_" {
		return nil, false
	}

	const maxTries = 99

	c := r.count[name]

	for range maxTries {
		c++
		suffix := "_" + strconv.Itoa(c)

		if fullName := name + suffix; declaredAbove(scope, fullName) || declaredBelow(scope, fullName) {
			continue
		}

		r.count[name] = c

		return []byte(suffix), true
	}

	return nil, false
}

// declaredAbove reports whether name is declared in scope or any of its parents.
func declaredAbove(scope *types.Scope, name string) bool {
	for s := scope; s != nil; s = s.Parent() {
		if s.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// declaredBelow reports whether name is declared in any scope nested in scope.
func declaredBelow(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil || declaredBelow(child, name) {
			return true
		}
	}

	return false
}
