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

// Package usage collects the shadowing declarations and shadowed uses of a function body.
package usage

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/shadowing/internal/config"
	"fillmore-labs.com/shadowing/internal/scope"
	"fillmore-labs.com/shadowing/internal/usage/check"
)

// Shadow is a declaration hiding a variable of an enclosing scope.
type Shadow struct {
	// Inner is the shadowing variable, declared by Ident.
	Inner *types.Var
	Ident *ast.Ident

	// Outer is the shadowed variable.
	Outer *types.Var
}

// Retyped reports whether the shadowing variable has a different type than the shadowed one.
func (s Shadow) Retyped() bool {
	return scope.Retyped(s.Inner, s.Outer)
}

// Result holds the findings for a single function body.
type Result struct {
	// Shadows lists shadowing declarations in source order.
	Shadows []Shadow

	// UsedAfterShadow lists the first use of a variable after a shadowing scope ended.
	UsedAfterShadow []check.ShadowUse
}

// Collector walks function bodies.
type Collector struct {
	info   *types.Info
	scopes scope.Index
	checks config.Checks
}

// New creates a [Collector] for a package.
func New(info *types.Info, scopes scope.Index, checks config.Checks) Collector {
	return Collector{info: info, scopes: scopes, checks: checks}
}

// Collect walks body in source order and records shadowing declarations and shadowed uses.
func (c Collector) Collect(ctx context.Context, body inspector.Cursor) Result {
	defer trace.StartRegion(ctx, "Collect").End()

	var (
		result   Result
		sc       = check.NewShadowChecker(c.checks.Enabled(config.UseAfterShadowCheck))
		assigned = make(map[*ast.Ident]token.Pos) // left hand side identifiers to end of assignment
	)

	nodeTypes := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.Ident)(nil),
		(*ast.TypeSwitchStmt)(nil),
	}

	for n := range body.Preorder(nodeTypes...) {
		switch node := n.Node().(type) {
		case *ast.AssignStmt:
			if node.Tok != token.ASSIGN && node.Tok != token.DEFINE {
				continue // compound assignments read the variable
			}

			for _, expr := range node.Lhs {
				if id, ok := expr.(*ast.Ident); ok {
					assigned[id] = node.End()
				}
			}

		case *ast.TypeSwitchStmt:
			if shadow, ok := c.typeSwitchShadow(node); ok {
				result.Shadows = append(result.Shadows, shadow)
				sc.RecordShadowingDeclaration(shadow.Outer, shadow.Inner, shadow.Ident)
			}

		case *ast.Ident:
			if v, ok := c.info.Defs[node].(*types.Var); ok && !v.IsField() {
				if outer := c.scopes.Shadowing(v); outer != nil {
					result.Shadows = append(result.Shadows, Shadow{Inner: v, Ident: node, Outer: outer})
					sc.RecordShadowingDeclaration(outer, v, node)
				}

				continue
			}

			v, ok := c.info.Uses[node].(*types.Var)
			if !ok {
				continue
			}

			if done, ok := assigned[node]; ok {
				sc.RecordAssignment(v, node, done)
			} else {
				sc.RecordUse(v, node)
			}
		}
	}

	result.UsedAfterShadow = sc.UsedAfterShadow()

	return result
}

// typeSwitchShadow finds the variable hidden by the symbolic variable of a type switch.
//
// The symbolic variable has no object of its own; every clause declares an
// implicit variable instead. The first clause variable with a type different
// from the shadowed variable represents the switch, so a retype is reported as such.
func (c Collector) typeSwitchShadow(stmt *ast.TypeSwitchStmt) (Shadow, bool) {
	assign, ok := stmt.Assign.(*ast.AssignStmt)
	if !ok || len(assign.Lhs) != 1 {
		return Shadow{}, false
	}

	id, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return Shadow{}, false
	}

	shadow := Shadow{Ident: id}

	for _, clause := range stmt.Body.List {
		v, ok := c.info.Implicits[clause].(*types.Var)
		if !ok {
			continue
		}

		if shadow.Outer == nil {
			if shadow.Outer = c.scopes.Shadowing(v); shadow.Outer == nil {
				return Shadow{}, false
			}
		}

		shadow.Inner = v

		if shadow.Retyped() {
			break
		}
	}

	return shadow, shadow.Inner != nil
}
