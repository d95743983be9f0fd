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
	"fillmore-labs.com/queryinloop/internal/config"
	"fillmore-labs.com/queryinloop/internal/loopscope"
	"fillmore-labs.com/queryinloop/internal/operation"
	"fillmore-labs.com/queryinloop/internal/receiver"
)

// Options represent the configuration of a queryinloop analyzer run.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Operations classifies called method names as query operations.
	Operations operation.Classifier

	// Receivers classifies receiver types as database-related.
	Receivers receiver.Matcher

	// newTracker creates the loop scope tracker for each declaration, nil means [loopscope.New].
	newTracker func() *loopscope.Tracker
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:   config.DefaultBehavior(),
		Operations: operation.Default(),
		Receivers:  receiver.Default(),
	}
}

func (r *Options) trackerFactory() func() *loopscope.Tracker {
	if r.newTracker != nil {
		return r.newTracker
	}

	return loopscope.New
}
