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

// Package report builds findings and hands them to the analysis driver.
package report

import "golang.org/x/tools/go/analysis"

// Emitter constructs findings and submits them to a reporting callback,
// usually [analysis.Pass.Report].
type Emitter struct {
	report func(analysis.Diagnostic)
}

// NewEmitter creates an [Emitter] submitting to report. A nil report only constructs findings.
func NewEmitter(report func(analysis.Diagnostic)) Emitter {
	return Emitter{report: report}
}

// Emit builds a warning [Finding] for the call site and submits it.
// No filtering happens here, suppression is the caller's responsibility.
func (e Emitter) Emit(call CallSite, message, hint string) Finding {
	f := Finding{
		Severity:  Warning,
		Pos:       call.Pos,
		End:       call.End,
		Operation: call.Operation,
		Message:   message,
		Hint:      hint,
	}

	if e.report != nil {
		e.report(f.Diagnostic())
	}

	return f
}
