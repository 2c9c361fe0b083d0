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

package check

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
)

// ShadowUse is a use of a variable after it was previously shadowed.
type ShadowUse struct {
	// Var is the shadowed variable.
	Var *types.Var

	// Use is the identifier referring to Var.
	Use *ast.Ident

	// ShadowPos is the position of the shadowing declaration.
	ShadowPos token.Pos
}

// ShadowChecker tracks shadowed variables and collects their uses after the shadowing scope ended.
type ShadowChecker struct {
	// shadowed maps shadowed variables.
	shadowed map[*types.Var]shadowInfo

	// usedAfterShadow collects usage of variables used after previously shadowed.
	usedAfterShadow []ShadowUse
}

// NewShadowChecker creates a [ShadowChecker]. A disabled checker records nothing.
func NewShadowChecker(enabled bool) ShadowChecker {
	var sc ShadowChecker

	if enabled {
		sc.shadowed = make(map[*types.Var]shadowInfo)
	}

	return sc
}

// UsedAfterShadow returns the collected uses, sorted by position.
func (sc *ShadowChecker) UsedAfterShadow() []ShadowUse {
	slices.SortFunc(sc.usedAfterShadow, func(a, b ShadowUse) int { return int(a.Use.Pos() - b.Use.Pos()) })

	return sc.usedAfterShadow
}

// shadowInfo tracks when an outer variable is shadowed by an inner declaration.
type shadowInfo struct {
	// start is the end of the scope containing the shadowing declaration.
	// end is the end of the first reassignment to the outer variable, or NoPos.
	start, end token.Pos

	// ignore is the position of the identifier in the reassignment itself.
	ignore token.Pos

	// decl is the position of the shadowing declaration.
	decl token.Pos
}

// shadowing reports whether pos falls within the active shadowing window.
func (s shadowInfo) shadowing(pos token.Pos) bool {
	return pos >= s.start && (!s.end.IsValid() || pos < s.end) && s.ignore != pos
}

// RecordShadowingDeclaration notes that inner, declared by id, shadows outer.
func (sc *ShadowChecker) RecordShadowingDeclaration(outer, inner *types.Var, id *ast.Ident) {
	if sc.shadowed == nil {
		return
	}

	sc.shadowed[outer] = shadowInfo{start: inner.Parent().End(), end: token.NoPos, decl: id.NamePos}
}

// RecordUse records a read of v at id.
func (sc *ShadowChecker) RecordUse(v *types.Var, id *ast.Ident) {
	if s, ok := sc.shadowed[v]; ok && s.shadowing(id.NamePos) {
		sc.usedAfterShadow = append(sc.usedAfterShadow, ShadowUse{Var: v, Use: id, ShadowPos: s.decl})

		delete(sc.shadowed, v) // record only the first usage
	}
}

// RecordAssignment records an assignment to v at id, completed at assignmentDone.
//
// The outer variable has a new value after the assignment, so later uses are
// not affected by the earlier shadow. Uses on the right hand side of the
// assignment itself still are.
func (sc *ShadowChecker) RecordAssignment(v *types.Var, id *ast.Ident, assignmentDone token.Pos) {
	s, ok := sc.shadowed[v]
	if !ok {
		return
	}

	switch hasEnd := s.end.IsValid(); {
	case id.NamePos < s.start:
		// Assignment inside the shadowing scope, before it ended

	case !hasEnd:
		s.ignore = id.NamePos
		s.end = assignmentDone
		sc.shadowed[v] = s

	case id.NamePos >= s.end:
		delete(sc.shadowed, v)

	default:
		// before the end: nested in the assignment, e.g. in a function literal
		if assignmentDone < s.end {
			s.ignore = id.NamePos
			s.end = assignmentDone
			sc.shadowed[v] = s
		}
	}
}
