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

package run

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/queryinloop/internal/astutil"
	"fillmore-labs.com/queryinloop/internal/loopscope"
	"fillmore-labs.com/queryinloop/internal/receiver"
	"fillmore-labs.com/queryinloop/internal/report"
)

// visitor walks the declarations of one file, tracking loop scopes and
// checking every call expression.
type visitor struct {
	info     *types.Info
	file     astutil.CurrentFile
	options  *Options
	emitter  report.Emitter
	isolated bool

	newTracker func() *loopscope.Tracker
	loops      *loopscope.Tracker
	err        error
}

// walkFile checks all declarations of the current file.
func (v *visitor) walkFile(ctx context.Context) error {
	defer trace.StartRegion(ctx, "WalkFile").End()

	for _, decl := range v.file.File().Decls {
		if fun, ok := decl.(*ast.FuncDecl); ok {
			if fun.Body == nil || astutil.DocHasNoLint(fun.Doc) {
				continue
			}
		}

		v.loops = v.newTracker()

		ast.Walk(v, decl)

		if err := v.balanced(); err != nil {
			return err
		}
	}

	return nil
}

// Visit implements [ast.Visitor].
func (v *visitor) Visit(n ast.Node) ast.Visitor {
	if v.err != nil {
		return nil
	}

	switch n := n.(type) {
	case *ast.ForStmt:
		// the init statement runs once
		v.walk(n.Init)
		v.loop(n.Cond, n.Post, n.Body)

		return nil

	case *ast.RangeStmt:
		// the range expression is evaluated once
		v.walk(n.X)
		v.loop(n.Key, n.Value, n.Body)

		return nil

	case *ast.FuncLit:
		if v.isolated {
			v.closure(n.Body)

			return nil
		}

	case *ast.CallExpr:
		v.checkCall(n)
	}

	return v
}

// walk visits the non-nil nodes.
func (v *visitor) walk(nodes ...ast.Node) {
	for _, n := range nodes {
		if n == nil || v.err != nil {
			continue
		}

		ast.Walk(v, n)
	}
}

// loop visits the nodes inside a new loop scope.
func (v *visitor) loop(nodes ...ast.Node) {
	v.loops.EnterLoop()

	v.walk(nodes...)

	if err := v.loops.ExitLoop(); err != nil && v.err == nil {
		v.err = err
	}
}

// closure visits a function literal body with a fresh loop scope.
func (v *visitor) closure(body *ast.BlockStmt) {
	outer := v.loops
	v.loops = v.newTracker()

	v.walk(body)

	if err := v.balanced(); err != nil && v.err == nil {
		v.err = err
	}

	v.loops = outer
}

// balanced checks that the walk left no loop scope open.
func (v *visitor) balanced() error {
	if v.err != nil {
		return v.err
	}

	if depth := v.loops.Depth(); depth != 0 {
		return fmt.Errorf("%d loop scopes left open: %w", depth, loopscope.ErrImbalancedScope)
	}

	return nil
}

// checkCall reports a query operation on a database receiver inside a loop.
// The checks are ordered by cost, type resolution comes last.
func (v *visitor) checkCall(call *ast.CallExpr) {
	if !v.loops.InsideLoop() {
		return
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	if !v.options.Operations.IsQuery(sel.Sel.Name) {
		return
	}

	descs, ok := receiver.Resolve(v.info, sel)
	if !ok || !v.options.Receivers.AnyDatabase(descs) {
		return
	}

	site := report.NewCallSite(call, sel)
	if v.file.NoLintComment(site.Pos, site.End) {
		return
	}

	v.emitter.Emit(site, report.Message(site.Operation), report.Hint)
}
