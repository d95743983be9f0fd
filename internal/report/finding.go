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
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Category is the diagnostic category of all findings.
const Category = "queryinloop"

// Hint is the remediation hint attached to query-in-loop findings.
const Hint = "consider batching queries using WHERE IN clauses or collecting IDs first"

// CallSite is one call expression under examination.
type CallSite struct {
	// Pos and End span the call expression.
	Pos, End token.Pos
	// Operation is the simple name of the called method.
	Operation string
	// Receiver is the expression the method is called on.
	Receiver ast.Expr
}

// NewCallSite creates a [CallSite] for a method call through sel.
func NewCallSite(call *ast.CallExpr, sel *ast.SelectorExpr) CallSite {
	return CallSite{
		Pos:       call.Pos(),
		End:       call.End(),
		Operation: sel.Sel.Name,
		Receiver:  sel.X,
	}
}

// Finding is a diagnostic produced for a [CallSite].
type Finding struct {
	Severity  Severity
	Pos, End  token.Pos
	Operation string
	Message   string
	// Hint is optional.
	Hint string
}

// Diagnostic converts the [Finding] into an [analysis.Diagnostic].
func (f Finding) Diagnostic() analysis.Diagnostic {
	msg := f.Message
	if f.Hint != "" {
		msg += "; " + f.Hint
	}

	return analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: Category,
		Message:  msg,
	}
}

// Message returns the finding message for a query operation called inside a loop.
func Message(operation string) string {
	return "database query operation '" + operation + "' called inside a loop"
}
