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

import "go/types"

// Shadowing finds the variable hidden by inner, if any.
//
// The search stays within the function declaring inner: variables declared at
// the top level of a function don't shadow, and the search does not continue
// past the enclosing function scope. Outer variables may have a different type.
func (s Index) Shadowing(inner *types.Var) (outer *types.Var) {
	scope := inner.Parent()
	if scope == nil || s.FunctionLevel(scope) {
		return nil
	}

	name := inner.Name()
	if name == "_" {
		return nil
	}

	for parent := scope.Parent(); parent != nil; parent = parent.Parent() {
		obj := parent.Lookup(name)
		if obj == nil || obj.Pos() > inner.Pos() {
			if s.FunctionLevel(parent) {
				break
			}

			continue
		}

		outer, ok := obj.(*types.Var)
		if !ok {
			return nil // shadows a constant, type or function
		}

		return outer
	}

	return nil
}

// Retyped reports whether inner has a different type than the outer variable it shadows.
func Retyped(inner, outer *types.Var) bool {
	return !types.Identical(inner.Type(), outer.Type())
}
