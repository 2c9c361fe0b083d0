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

package a

import "fmt"

func variables() {
	x := 5
	fmt.Println("The value of x at the beginning is:", x)

	{
		x := x + 1 // want `declaration of "x" shadows declaration at line 22 \(bt:shadow\)`
		fmt.Println("The value of x after the first shadow is:", x)

		{
			x := x * 2 // want `declaration of "x" shadows declaration at line 26 \(bt:shadow\)`
			fmt.Println("The value of x in the inner scope with the second shadow is:", x)
		}

		fmt.Println("The value of x after the inner scope is:", x) // want `variable "x" used after previously shadowed`
	}

	spaces := "    "

	{
		spaces := len(spaces) // want `declaration of "spaces" shadows declaration at line 37 and changes its type from string to int`
		fmt.Println("spaces:", spaces)
	}
}

func mutation() {
	spaces := "    "

	var count int
	count = len(spaces)
	fmt.Println("spaces:", count)
}
