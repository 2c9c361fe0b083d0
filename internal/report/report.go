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

// Package report turns collected shadowing events into diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/shadowing/internal/astutil"
	"fillmore-labs.com/shadowing/internal/config"
	"fillmore-labs.com/shadowing/internal/scope"
	"fillmore-labs.com/shadowing/internal/usage"
)

// Reporter emits diagnostics for one package.
type Reporter struct {
	Pass     *analysis.Pass
	Scopes   scope.Index
	Checks   config.Checks
	Behavior config.Behavior
}

// ProcessDiagnostics reports the findings of the function declaration fdecl.
func (r Reporter) ProcessDiagnostics(ctx context.Context, currentFile astutil.CurrentFile, fdecl inspector.Cursor, result usage.Result) {
	defer trace.StartRegion(ctx, "Report").End()

	var renamer *Renamer
	if r.Behavior.Enabled(config.RenameVariables) && !currentFile.Generated() {
		renamer = NewRenamer()
	}

	r.reportShadows(currentFile, fdecl, result.Shadows, renamer)

	if r.Checks.Enabled(config.UseAfterShadowCheck) {
		r.reportUsedAfterShadow(currentFile, result.UsedAfterShadow)
	}
}
