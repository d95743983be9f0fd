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

// Package receiver decides whether a call receiver is a database-related value.
//
// Matching works on the rendered type name: a type is database-related when its
// text contains one of the configured markers. This is a permissive heuristic,
// a network connection pool will match "Pool" as well.
package receiver

import (
	"slices"
	"strings"
)

// DefaultMarkers are package path prefixes of database client libraries and
// generic role names of database handles.
var DefaultMarkers = []string{
	"database/sql.",
	"github.com/jmoiron/sqlx.",
	"github.com/jackc/pgx",
	"github.com/lib/pq.",
	"github.com/go-sql-driver/mysql.",
	"github.com/mattn/go-sqlite3.",
	"zombiezen.com/go/sqlite",
	"gorm.io/gorm.",
	"github.com/uptrace/bun",
	"go.mongodb.org/mongo-driver",
	"github.com/Masterminds/squirrel.",
	"github.com/doug-martin/goqu",
	"Pool",
	"Connection",
	"Transaction",
}

// Descriptor is the rendered text of a resolved type.
type Descriptor string

// Matcher tests [Descriptor] values against a set of markers.
// The zero value matches nothing.
type Matcher struct {
	markers []string
}

// New creates a [Matcher] for exactly the given markers. Empty markers are ignored.
func New(markers ...string) Matcher {
	return Matcher{}.With(markers...)
}

// Default returns a [Matcher] for [DefaultMarkers].
func Default() Matcher {
	return New(DefaultMarkers...)
}

// With returns a copy of the [Matcher] extended by markers.
func (m Matcher) With(markers ...string) Matcher {
	n := slices.Clip(slices.Clone(m.markers))

	for _, marker := range markers {
		if marker == "" || slices.Contains(n, marker) {
			continue
		}

		n = append(n, marker)
	}

	return Matcher{markers: n}
}

// IsDatabase reports whether the descriptor contains any marker.
// Matching is case-sensitive.
func (m Matcher) IsDatabase(d Descriptor) bool {
	for _, marker := range m.markers {
		if strings.Contains(string(d), marker) {
			return true
		}
	}

	return false
}

// AnyDatabase reports whether any of the descriptors is database-related.
func (m Matcher) AnyDatabase(ds []Descriptor) bool {
	return slices.ContainsFunc(ds, m.IsDatabase)
}

// Markers returns the configured markers in configuration order.
func (m Matcher) Markers() []string {
	return slices.Clone(m.markers)
}
