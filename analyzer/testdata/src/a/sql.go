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

package a

import (
	"context"
	"database/sql"
)

func queryInRange(ctx context.Context, db *sql.DB, ids []int) {
	for _, id := range ids {
		rows, err := db.QueryContext(ctx, "SELECT name FROM users WHERE id = $1", id) // want "database query operation 'QueryContext' called inside a loop"
		if err != nil {
			return
		}

		for rows.Next() {
			var name string
			_ = rows.Scan(&name)
		}

		_ = rows.Close()
	}
}

func batched(ctx context.Context, db *sql.DB, ids []any) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM users WHERE id = ANY($1)", ids...)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		_ = rows.Scan(&name)
	}
}

func transaction(ctx context.Context, db *sql.DB, names []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := 0; i < len(names); i++ {
		if _, err := tx.ExecContext(ctx, "INSERT INTO users (name) VALUES ($1)", names[i]); err != nil { // want "database query operation 'ExecContext' called inside a loop"
			return err
		}
	}

	return tx.Commit()
}

func nested(db *sql.DB, groups [][]int) {
	for _, group := range groups {
		for _, id := range group {
			_ = db.QueryRow("SELECT 1 WHERE $1 > 0", id).Scan(new(int)) // want "database query operation 'QueryRow' called inside a loop"
		}
	}
}

func loopHeader(db *sql.DB) {
	var n int
	for row := db.QueryRow("SELECT 1"); n < 3 && db.QueryRow("SELECT 2").Scan(&n) == nil; n++ { // want "database query operation 'QueryRow' called inside a loop"
		_ = row
	}

	for range mustRows(db.Query("SELECT 3")) {
	}
}

func mustRows(rows *sql.Rows, err error) []int {
	if err != nil {
		panic(err)
	}

	return nil
}

type Store struct{ *sql.DB }

func embedded(s Store, names []string) {
	for _, name := range names {
		_, _ = s.Exec("INSERT INTO users (name) VALUES ($1)", name) // want "database query operation 'Exec' called inside a loop"
	}
}

func closure(db *sql.DB, names []string) {
	for _, name := range names {
		func() {
			_, _ = db.Exec("DELETE FROM users WHERE name = $1", name) // want "database query operation 'Exec' called inside a loop"
		}()
	}
}

func suppressed(db *sql.DB, names []string) {
	for _, name := range names {
		_, _ = db.Exec("DELETE FROM users WHERE name = $1", name) //nolint:queryinloop
		_, _ = db.Exec( /* by name */ "DELETE FROM users WHERE name = $1", name) //nolint:queryinloop
		_, _ = db.Exec(
			"DELETE FROM users WHERE name = $1", name,
		) //nolint:queryinloop
	}
}

//nolint:queryinloop
func suppressedFunc(db *sql.DB, names []string) {
	for _, name := range names {
		_, _ = db.Exec("DELETE FROM users WHERE name = $1", name)
	}
}

func outside(db *sql.DB) {
	_, _ = db.Exec("DELETE FROM users")
}
