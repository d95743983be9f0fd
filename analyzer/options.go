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
	"log/slog"

	"fillmore-labs.com/queryinloop/internal/config"
	"fillmore-labs.com/queryinloop/internal/operation"
	"fillmore-labs.com/queryinloop/internal/receiver"
	"fillmore-labs.com/queryinloop/internal/run"
)

// Option configures specific behavior of a [New] queryinloop analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// FileOptions converts a configuration file into [Options].
// Only fields set in the file are included.
func FileOptions(f config.File) Options {
	var opts Options

	if f.Generated != nil {
		opts = append(opts, WithGenerated(*f.Generated))
	}

	if f.IsolateClosures != nil {
		opts = append(opts, WithIsolateClosures(*f.IsolateClosures))
	}

	if f.QueryMethods != nil {
		opts = append(opts, WithQueryMethods(f.QueryMethods...))
	}

	if len(f.ExtraQueryMethods) > 0 {
		opts = append(opts, WithExtraQueryMethods(f.ExtraQueryMethods...))
	}

	if f.DatabaseMarkers != nil {
		opts = append(opts, WithDatabaseMarkers(f.DatabaseMarkers...))
	}

	if len(f.ExtraDatabaseMarkers) > 0 {
		opts = append(opts, WithExtraDatabaseMarkers(f.ExtraDatabaseMarkers...))
	}

	return opts
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithIsolateClosures is an [Option] to check function literals with a fresh loop scope,
// so closures declared inside a loop are not considered part of it.
func WithIsolateClosures(isolate bool) Option { return isolateClosuresOption{isolate: isolate} }

type isolateClosuresOption struct{ isolate bool }

func (o isolateClosuresOption) apply(r *run.Options) {
	r.Behavior.Set(config.IsolateClosures, o.isolate)
}

func (o isolateClosuresOption) LogAttr() slog.Attr {
	return slog.Bool("isolate-closures", o.isolate)
}

// WithQueryMethods is an [Option] replacing the method names considered query operations.
func WithQueryMethods(names ...string) Option { return queryMethodsOption{names: names} }

type queryMethodsOption struct{ names []string }

func (o queryMethodsOption) apply(r *run.Options) {
	r.Operations = operation.New(o.names...)
}

func (o queryMethodsOption) LogAttr() slog.Attr {
	return slog.Any("query-methods", o.names)
}

// WithExtraQueryMethods is an [Option] adding method names considered query operations.
func WithExtraQueryMethods(names ...string) Option { return extraQueryMethodsOption{names: names} }

type extraQueryMethodsOption struct{ names []string }

func (o extraQueryMethodsOption) apply(r *run.Options) {
	r.Operations = r.Operations.With(o.names...)
}

func (o extraQueryMethodsOption) LogAttr() slog.Attr {
	return slog.Any("extra-query-methods", o.names)
}

// WithDatabaseMarkers is an [Option] replacing the type name markers of database-related receivers.
func WithDatabaseMarkers(markers ...string) Option { return databaseMarkersOption{markers: markers} }

type databaseMarkersOption struct{ markers []string }

func (o databaseMarkersOption) apply(r *run.Options) {
	r.Receivers = receiver.New(o.markers...)
}

func (o databaseMarkersOption) LogAttr() slog.Attr {
	return slog.Any("database-markers", o.markers)
}

// WithExtraDatabaseMarkers is an [Option] adding type name markers of database-related receivers.
func WithExtraDatabaseMarkers(markers ...string) Option {
	return extraDatabaseMarkersOption{markers: markers}
}

type extraDatabaseMarkersOption struct{ markers []string }

func (o extraDatabaseMarkersOption) apply(r *run.Options) {
	r.Receivers = r.Receivers.With(o.markers...)
}

func (o extraDatabaseMarkersOption) LogAttr() slog.Attr {
	return slog.Any("extra-database-markers", o.markers)
}
