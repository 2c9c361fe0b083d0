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

// Package analyzer implements the bindtrace static analysis pass.
//
// # Overview
//
// bindtrace reports where a function introduces a new binding for a name that is
// already visible, the situations shown by the [bindings] transcript:
//
//	func variables() {
//	    x := 5
//	    {
//	        x := x + 1      // bt:shadow
//	        {
//	            x := x * 2  // bt:shadow
//	            _ = x
//	        }
//	        fmt.Println(x)  // bt:uas, the value of the first shadow is visible again
//	    }
//	    spaces := "    "
//	    {
//	        spaces := len(spaces)  // bt:retype, string to int
//	        _ = spaces
//	    }
//	}
//
// # Checks
//
//   - bt:shadow: a declaration hides an outer variable of the same type.
//   - bt:retype: a declaration hides an outer variable of a different type.
//   - bt:uas: an outer variable is used after the block holding its shadow ended.
//
// Variables declared at the top level of a function never shadow, and outer
// variables are only searched within the same function. With -rename, shadowing
// declarations get a suggested fix giving them a distinct name, x_1, x_2, ...
//
// Diagnostics can be suppressed with a //nolint:bindtrace comment on the line,
// or on the doc comment of a function.
//
// [bindings]: https://pkg.go.dev/fillmore-labs.com/shadowing/bindings
package analyzer
