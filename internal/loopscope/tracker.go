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

// Package loopscope tracks whether a syntax tree traversal is currently inside a loop.
//
// The traversal calls [Tracker.EnterLoop] before it descends into the repeatedly
// executed parts of a loop construct and [Tracker.ExitLoop] after it leaves them.
// Loop kinds are not distinguished: nested loops simply nest frames.
//
// A [Tracker] is not safe for concurrent use. Traversals running in parallel
// need their own instance.
package loopscope

import (
	"errors"
	"fmt"
)

// ErrImbalancedScope is returned when a loop scope is exited that was never entered.
// This indicates a bug in the traversal, not in the analyzed code.
var ErrImbalancedScope = errors.New("imbalanced loop scope")

// frame marks one entered loop.
type frame struct{}

// Tracker maintains the stack of entered loop scopes.
type Tracker struct {
	frames []frame
}

// New creates an empty [Tracker].
func New() *Tracker {
	return &Tracker{}
}

// EnterLoop pushes a new loop frame.
func (t *Tracker) EnterLoop() {
	t.frames = append(t.frames, frame{})
}

// ExitLoop pops exactly one loop frame.
func (t *Tracker) ExitLoop() error {
	n := len(t.frames)
	if n == 0 {
		return fmt.Errorf("exit without matching enter: %w", ErrImbalancedScope)
	}

	t.frames = t.frames[:n-1]

	return nil
}

// InsideLoop reports whether at least one loop frame is active.
func (t *Tracker) InsideLoop() bool {
	return len(t.frames) > 0
}

// Depth returns the number of active loop frames.
func (t *Tracker) Depth() int {
	return len(t.frames)
}
