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

package analyzer

import (
	"flag"

	"fillmore-labs.com/queryinloop/internal/config"
	"fillmore-labs.com/queryinloop/internal/run"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&r.Behavior, config.IsolateClosures), "isolate-closures", "check function literals with a fresh loop scope")

	flags.Var(listValue{set: func(v []string) { WithQueryMethods(v...).apply(r) }, get: func() []string { return r.Operations.Names() }},
		"methods", "comma-separated list of query method names, replaces the defaults")
	flags.Var(listValue{set: func(v []string) { WithExtraQueryMethods(v...).apply(r) }},
		"extra-methods", "comma-separated list of additional query method names")
	flags.Var(listValue{set: func(v []string) { WithDatabaseMarkers(v...).apply(r) }, get: func() []string { return r.Receivers.Markers() }},
		"markers", "comma-separated list of database type markers, replaces the defaults")
	flags.Var(listValue{set: func(v []string) { WithExtraDatabaseMarkers(v...).apply(r) }},
		"extra-markers", "comma-separated list of additional database type markers")

	flags.Func("config", "read configuration from a YAML file", func(path string) error {
		f, err := config.Load(path)
		if err != nil {
			return err
		}

		FileOptions(f).apply(r)

		return nil
	})
}
