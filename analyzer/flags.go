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

package analyzer

import (
	"flag"

	"fillmore-labs.com/shadowing/internal/config"
	"fillmore-labs.com/shadowing/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(newCheckValue(&r.Checks, config.ShadowCheck), "shadow", "report shadowing declarations of the same type")
	flags.Var(newCheckValue(&r.Checks, config.RetypeCheck), "retype", "report shadowing declarations changing the type")
	flags.Var(newCheckValue(&r.Checks, config.UseAfterShadowCheck), "use-after-shadow", "report uses of variables after previously shadowed")
	flags.Var(newBehaviorValue(&r.Behavior, config.RenameVariables), "rename", "suggest renaming shadowing declarations")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
}
