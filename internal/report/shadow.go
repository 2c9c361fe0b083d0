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

package report

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/shadowing/internal/astutil"
	"fillmore-labs.com/shadowing/internal/config"
	"fillmore-labs.com/shadowing/internal/scope"
	"fillmore-labs.com/shadowing/internal/usage"
	"fillmore-labs.com/shadowing/internal/usage/check"
)

// reportShadows emits diagnostics for shadowing declarations, optionally with rename fixes.
func (r Reporter) reportShadows(currentFile astutil.CurrentFile, fdecl inspector.Cursor, shadows []usage.Shadow, renamer *Renamer) {
	qualifier := types.RelativeTo(r.Pass.Pkg)

	for _, s := range shadows {
		retyped := s.Retyped()

		switch {
		case retyped && !r.Checks.Enabled(config.RetypeCheck):
			continue

		case !retyped && !r.Checks.Enabled(config.ShadowCheck):
			continue
		}

		if currentFile.NoLintComment(s.Ident.Pos()) {
			continue
		}

		name, line := s.Inner.Name(), currentFile.Line(s.Outer.Pos())

		var message string
		if retyped {
			message = fmt.Sprintf("declaration of %q shadows declaration at line %d and changes its type from %s to %s (bt:retype)",
				name, line, types.TypeString(s.Outer.Type(), qualifier), types.TypeString(s.Inner.Type(), qualifier))
		} else {
			message = fmt.Sprintf("declaration of %q shadows declaration at line %d (bt:shadow)", name, line)
		}

		related := fmt.Sprintf("Shadowed declaration in %s scope", scope.Name(r.Scopes.Node(s.Outer.Parent())))

		r.Pass.Report(analysis.Diagnostic{
			Pos:            s.Ident.Pos(),
			End:            s.Ident.End(),
			Message:        message,
			Related:        []analysis.RelatedInformation{{Pos: s.Outer.Pos(), Message: related}},
			SuggestedFixes: renamer.Renames(r.Pass.TypesInfo, fdecl, s.Inner),
		})
	}
}

// reportUsedAfterShadow emits diagnostics for variables used after previously shadowed.
func (r Reporter) reportUsedAfterShadow(currentFile astutil.CurrentFile, uses []check.ShadowUse) {
	for _, use := range uses {
		if currentFile.NoLintComment(use.Use.Pos()) {
			continue
		}

		r.Pass.Report(analysis.Diagnostic{
			Pos:     use.Use.Pos(),
			End:     use.Use.End(),
			Message: fmt.Sprintf("variable %q used after previously shadowed (bt:uas)", use.Var.Name()),
			Related: []analysis.RelatedInformation{{Pos: use.ShadowPos, Message: "After this declaration"}},
		})
	}
}
