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

import (
	"fmt"
	"io"
	"iter"
)

// Steps yields the transcript in statement order.
func Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		_ = shadowInteger(yield) && shadowSpaces(yield) && mutateSpaces(yield)
	}
}

// Run writes the transcript to w, one step per line.
func Run(w io.Writer) error {
	n := 0
	for s := range Steps() {
		n++
		if _, err := fmt.Fprintln(w, s); err != nil {
			return fmt.Errorf("bindings: write step %d: %w", n, err)
		}
	}

	return nil
}

// Transcript returns the rendered lines [Run] writes.
func Transcript() []string {
	var lines []string
	for s := range Steps() {
		lines = append(lines, s.String())
	}

	return lines
}

func shadowInteger(yield func(Step) bool) bool {
	x := 5
	if !yield(Step{Kind: Binding, Name: "x", When: "at the beginning", Value: x}) {
		return false
	}

	{
		x := x + 1
		if !yield(Step{Kind: Shadow, Name: "x", When: "after the first shadow", Value: x}) {
			return false
		}

		{
			x := x * 2
			if !yield(Step{Kind: InnerShadow, Name: "x", When: "in the inner scope with the second shadow", Value: x}) {
				return false
			}
		}

		return yield(Step{Kind: Restored, Name: "x", When: "after the inner scope", Value: x})
	}
}

func shadowSpaces(yield func(Step) bool) bool {
	spaces := "    "

	{
		spaces := len(spaces)

		return yield(Step{Kind: Retype, Name: "spaces", Value: spaces})
	}
}

func mutateSpaces(yield func(Step) bool) bool {
	// A string slot can't hold its own length; the count is mutated in a slot of its own.
	var count int

	spaces := "    "
	count = len(spaces)

	return yield(Step{Kind: Mutation, Name: "spaces", Value: count})
}
