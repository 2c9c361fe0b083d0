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

package scope

import (
	"go/ast"

	"golang.org/x/tools/go/ast/astutil"
)

// Name returns a short description of the syntax opening a scope.
func Name(node ast.Node) string {
	switch node.(type) {
	case nil:
		return "unknown scope"

	case *ast.FuncType:
		return "function"

	case *ast.BlockStmt:
		return "block"

	case *ast.IfStmt:
		return "if statement"

	case *ast.CaseClause:
		return "case clause"

	case *ast.CommClause:
		return "select case"

	case *ast.ForStmt, *ast.RangeStmt:
		return "loop"

	case *ast.SwitchStmt, *ast.TypeSwitchStmt:
		return "switch statement"

	default:
		return astutil.NodeDescription(node)
	}
}
