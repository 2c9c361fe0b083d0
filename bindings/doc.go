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

// Package bindings prints how a binding name is shadowed, retyped and mutated.
//
// # Overview
//
// The procedure walks through six steps. An integer x is bound, shadowed in
// a block, shadowed again in a nested block and read after the nested block
// ends, which shows the outer value again. A string of four spaces is then
// shadowed by its own length, and finally a mutable slot is assigned the
// length in place.
//
// # Output
//
//	The value of x at the beginning is: 5
//	The value of x after the first shadow is: 6
//	The value of x in the inner scope with the second shadow is: 12
//	The value of x after the inner scope is: 6
//	spaces: 4
//	spaces: 4
//
// Go does not allow redeclaring a name in the same block, so each shadow
// opens a block of its own. A variable declared as string cannot hold an
// int, so the mutation step assigns the length to a second, mutable slot.
package bindings
