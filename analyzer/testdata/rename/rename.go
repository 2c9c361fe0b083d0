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

package rename

import "fmt"

func variables() {
	x := 5
	fmt.Println(x)

	{
		x := x + 1 // want `declaration of "x" shadows`

		{
			x := x * 2 // want `declaration of "x" shadows`
			fmt.Println(x)
		}

		fmt.Println(x) // want `variable "x" used after previously shadowed`
	}

	spaces := "    "

	{
		spaces := len(spaces) // want `declaration of "spaces" shadows`
		fmt.Println(spaces)
	}
}

func taken() {
	x, x_1 := 1, 2

	{
		x := x + x_1 // want `declaration of "x" shadows`
		fmt.Println(x)
	}
}
