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

// Package analyzer implements the queryinloop static analysis pass.
//
// # Overview
//
// QueryInLoop detects database query operations executed inside loop bodies,
// a common source of N+1 query performance problems.
//
// # Example
//
// Before:
//
//	for _, id := range ids {
//	    row := db.QueryRowContext(ctx, "SELECT name FROM users WHERE id = $1", id)
//	    // ...
//	}
//
// After batching:
//
//	rows, err := db.QueryContext(ctx, "SELECT id, name FROM users WHERE id = ANY($1)", ids)
//
// # Detection
//
// A call is reported when all of the following hold:
//
//   - it is lexically inside the condition, post statement or body of a for
//     statement, or inside the body of a range statement,
//   - the called method name is a configured query operation (Query, Exec, Get, First, ...),
//   - the receiver type contains a configured database marker, like a driver
//     package path ("database/sql.", "gorm.io/gorm.") or a role name ("Pool").
//
// Type matching is substring based and permissive, a connection pool unrelated
// to databases is reported as well. Use //nolint:queryinloop to suppress single
// lines, functions or files.
package analyzer
