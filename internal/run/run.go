// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package run wires the stages of the bindtrace analyzer.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/shadowing/internal/astutil"
	"fillmore-labs.com/shadowing/internal/config"
	"fillmore-labs.com/shadowing/internal/report"
	"fillmore-labs.com/shadowing/internal/scope"
	"fillmore-labs.com/shadowing/internal/usage"
)

// ErrResultMissing is returned when a required analyzer result is missing.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the bindtrace analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("bindtrace: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "BindTrace")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	scopes := scope.NewIndex(p.TypesInfo)

	collector := usage.New(p.TypesInfo, scopes, r.Checks)

	reporter := report.Reporter{
		Pass:     p,
		Scopes:   scopes,
		Checks:   r.Checks,
		Behavior: r.Behavior,
	}

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		if astutil.NoLintDoc(file.Doc) {
			continue
		}

		// Function declarations, and function literals outside of them
		funcs := []ast.Node{
			(*ast.FuncDecl)(nil),
			(*ast.FuncLit)(nil),
		}

		f.Inspect(funcs, func(c inspector.Cursor) bool {
			var body inspector.Cursor

			switch fun := c.Node().(type) {
			case *ast.FuncDecl:
				if fun.Body == nil || astutil.NoLintDoc(fun.Doc) {
					return false
				}

				body = c.ChildAt(edge.FuncDecl_Body, -1)

			case *ast.FuncLit:
				body = c.ChildAt(edge.FuncLit_Body, -1)

			default:
				astutil.InternalError(p, fun, "Unexpected node type: %T", fun)

				return false
			}

			// Stage 1: shadowing declarations and shadowed uses
			result := collector.Collect(ctx, body)

			// Stage 2: diagnostics, with rename fixes when enabled
			reporter.ProcessDiagnostics(ctx, currentFile, c, result)

			return false // nested function literals are part of the body
		})
	}

	return nil, nil
}
