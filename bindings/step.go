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

package bindings

import "fmt"

// Kind describes how the value of a [Step] came to be visible.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Binding is the first binding of a name.
	Binding Kind = iota // binding

	// Shadow is a new binding of a visible name, computed from the previous one.
	Shadow // shadow

	// InnerShadow is a shadow declared in a nested block, discarded at the block's end.
	InnerShadow // inner shadow

	// Restored is the outer binding, visible again after a nested block ended.
	Restored // restored

	// Retype is a shadow with a different type than the binding it hides.
	Retype // retype

	// Mutation is an in-place assignment to an existing mutable slot.
	Mutation // mutation
)

// Step is a single line of the transcript.
type Step struct {
	Kind  Kind
	Name  string
	When  string // empty for plain "name: value" lines
	Value int
}

// String renders the step the way [Run] prints it.
func (s Step) String() string {
	if s.When == "" {
		return fmt.Sprintf("%s: %d", s.Name, s.Value)
	}

	return fmt.Sprintf("The value of %s %s is: %d", s.Name, s.When, s.Value)
}
