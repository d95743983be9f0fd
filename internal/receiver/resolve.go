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

package receiver

import (
	"go/ast"
	"go/types"
)

// Describe renders a type with fully qualified package paths, e.g. "*database/sql.DB".
func Describe(t types.Type) Descriptor {
	return Descriptor(types.TypeString(t, nil))
}

// Resolve returns the type descriptors for the receiver of the method selected by sel.
//
// The first descriptor is the type of the receiver expression. For methods
// promoted from embedded fields the type of the declaring receiver follows.
// Resolve reports false when sel does not select a method with known receiver
// type, i.e. for package-qualified functions, function-typed fields or missing
// type information.
func Resolve(info *types.Info, sel *ast.SelectorExpr) ([]Descriptor, bool) {
	if info == nil {
		return nil, false
	}

	selection, ok := info.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return nil, false
	}

	recv := selection.Recv()
	if recv == nil || recv == types.Typ[types.Invalid] {
		return nil, false
	}

	descs := []Descriptor{Describe(recv)}

	if len(selection.Index()) <= 1 {
		return descs, true
	}

	// promoted through embedding
	if fn, ok := selection.Obj().(*types.Func); ok {
		if r := fn.Signature().Recv(); r != nil {
			descs = append(descs, Describe(r.Type()))
		}
	}

	return descs, true
}
