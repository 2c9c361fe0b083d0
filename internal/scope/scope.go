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

// Package scope maps type checker scopes back to their syntax and resolves shadowed variables.
package scope

import (
	"go/ast"
	"go/types"
)

// Index maps scopes to their corresponding AST nodes.
type Index map[*types.Scope]ast.Node

// NewIndex creates an [Index] from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Node returns the syntax of scope, or nil when it is not part of the analyzed files.
func (s Index) Node(scope *types.Scope) ast.Node {
	return s[scope]
}

// FunctionLevel reports whether scope is the top level scope of a function or function literal.
func (s Index) FunctionLevel(scope *types.Scope) bool {
	_, ok := s[scope].(*ast.FuncType)

	return ok
}
