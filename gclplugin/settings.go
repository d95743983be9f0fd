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

package gclplugin

import queryinloop "fillmore-labs.com/queryinloop/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// IsolateClosures checks function literals with a fresh loop scope.
	IsolateClosures *bool `json:"isolate-closures,omitzero"`
	// QueryMethods replaces the query method names.
	QueryMethods []string `json:"query-methods,omitzero"`
	// ExtraQueryMethods extends the query method names.
	ExtraQueryMethods []string `json:"extra-query-methods,omitzero"`
	// DatabaseMarkers replaces the database type markers.
	DatabaseMarkers []string `json:"database-markers,omitzero"`
	// ExtraDatabaseMarkers extends the database type markers.
	ExtraDatabaseMarkers []string `json:"extra-database-markers,omitzero"`
}

// Options converts [Settings] into a list of [queryinloop.Option] for the queryinloop analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []queryinloop.Option {
	var opts []queryinloop.Option

	opts = appendOption(opts, s.IsolateClosures, queryinloop.WithIsolateClosures)
	opts = appendList(opts, s.QueryMethods, queryinloop.WithQueryMethods)
	opts = appendList(opts, s.ExtraQueryMethods, queryinloop.WithExtraQueryMethods)
	opts = appendList(opts, s.DatabaseMarkers, queryinloop.WithDatabaseMarkers)
	opts = appendList(opts, s.ExtraDatabaseMarkers, queryinloop.WithExtraDatabaseMarkers)

	return opts
}

// appendOption appends a non-nil setting to a [queryinloop.Option] list.
func appendOption[T any](opts []queryinloop.Option, value *T, constructor func(T) queryinloop.Option) []queryinloop.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendList appends a non-nil list setting to a [queryinloop.Option] list.
func appendList[T any](opts []queryinloop.Option, values []T, constructor func(...T) queryinloop.Option) []queryinloop.Option {
	if values == nil {
		return opts
	}

	return append(opts, constructor(values...))
}
