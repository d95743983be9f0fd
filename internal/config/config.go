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

package config

// Flags represents behavioral options of the analyzer.
type Flags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flags = 1 << iota

	// IsolateClosures walks function literal bodies with a fresh loop scope,
	// so a closure declared inside a loop is not considered part of it.
	IsolateClosures
)

// Behavior is the set of enabled [Flags].
type Behavior = BitMask[Flags]

// DefaultBehavior returns the default [Behavior]: generated files are skipped
// and closures inherit the enclosing loop scope.
func DefaultBehavior() Behavior {
	return NewBitMask[Flags]()
}
