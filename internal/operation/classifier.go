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

// Package operation classifies called method names as database query operations.
package operation

import (
	"maps"
	"slices"
)

// DefaultNames are the method names that run a query, fetch rows, execute a
// mutation or prepare a statement in common Go database client libraries.
//
// Row iteration methods like Next, Scan and Close are intentionally absent,
// they are expected inside result loops. This leaves bun's Scan(ctx) unreported.
var DefaultNames = []string{
	// database/sql, pgx
	"Query", "QueryContext",
	"QueryRow", "QueryRowContext",
	"Exec", "ExecContext",
	"Prepare", "PrepareContext",

	// generic repository and driver wrappers
	"Execute", "GetOne", "Insert",

	// sqlx
	"Queryx", "QueryxContext",
	"QueryRowx", "QueryRowxContext",
	"Get", "GetContext",
	"Select", "SelectContext",
	"NamedExec", "NamedExecContext",
	"NamedQuery", "NamedQueryContext",
	"Preparex", "PreparexContext",

	// GORM
	"Find", "First", "Take", "Last",
	"Create", "Save", "Update", "Updates", "Delete",
	"Count", "Pluck",

	// MongoDB
	"FindOne", "FindOneAndUpdate", "FindOneAndDelete",
	"InsertOne", "InsertMany",
	"UpdateOne", "UpdateMany",
	"DeleteOne", "DeleteMany",
	"ReplaceOne", "Aggregate", "CountDocuments",
}

// Classifier decides whether a method name denotes a data-fetch or execute action.
// The zero value matches nothing.
type Classifier struct {
	names map[string]struct{}
}

// New creates a [Classifier] for exactly the given names.
func New(names ...string) Classifier {
	return Classifier{}.With(names...)
}

// Default returns a [Classifier] for [DefaultNames].
func Default() Classifier {
	return New(DefaultNames...)
}

// With returns a copy of the [Classifier] extended by names.
func (c Classifier) With(names ...string) Classifier {
	n := make(map[string]struct{}, len(c.names)+len(names))
	maps.Copy(n, c.names)

	for _, name := range names {
		if name == "" {
			continue
		}

		n[name] = struct{}{}
	}

	return Classifier{names: n}
}

// IsQuery reports whether name is a configured query operation.
// Matching is exact and case-sensitive, independent of the receiver.
func (c Classifier) IsQuery(name string) bool {
	_, ok := c.names[name]

	return ok
}

// Names returns the configured names in sorted order.
func (c Classifier) Names() []string {
	return slices.Sorted(maps.Keys(c.names))
}
