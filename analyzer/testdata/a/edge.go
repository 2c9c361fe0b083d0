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

import (
	"errors"
	"fmt"
	"strconv"
)

var global = 1

func parameters(x int) int {
	y := global
	global := 2

	return x + y + global
}

func ifInit(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return err
	}

	if n, err := strconv.Atoi(s + "0"); err == nil { // want `declaration of "n" shadows` `declaration of "err" shadows`
		fmt.Println(n)
	}

	return err // want `variable "err" used after previously shadowed`
}

func reassigned() int {
	x := 1

	{
		x := 2 // want `declaration of "x" shadows`
		fmt.Println(x)
	}

	x = 3

	return x
}

func selfAssignment() int {
	x := 1

	{
		x := 2 // want `declaration of "x" shadows`
		fmt.Println(x)
	}

	x = x + 1 // want `variable "x" used after previously shadowed`

	return x
}

func loops(values []int) int {
	sum := 0

	for i := range values {
		for i := range i { // want `declaration of "i" shadows declaration at line \d+ \(bt:shadow\)`
			sum += i
		}
	}

	return sum
}

func closure() func() int {
	x := 1

	return func() int {
		x := x + 1

		return x
	}
}

func suppressed() {
	x := 1

	{
		x := 2 //nolint:bindtrace
		fmt.Println(x)
	}

	fmt.Println(x) //nolint:all
}

//nolint:bindtrace
func suppressedFunction() {
	err := errors.New("outer")

	{
		err := fmt.Errorf("inner: %w", err)
		fmt.Println(err)
	}

	fmt.Println(err)
}

type point struct{ x, y int }

func fields(p point) int {
	{
		p := point{x: p.y, y: p.x} // want `declaration of "p" shadows`
		_ = p
	}

	return p.x // want `variable "p" used after previously shadowed`
}

func typeSwitch(v any) string {
	switch v := v.(type) { // want `declaration of "v" shadows declaration at line \d+ and changes its type from \w+ to int \(bt:retype\)`
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}

	return fmt.Sprint(v) // want `variable "v" used after previously shadowed`
}
