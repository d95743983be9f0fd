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

package isolate

import "database/sql"

func callbacks(db *sql.DB, ids []int) []func() {
	fs := make([]func(), 0, len(ids))

	for _, id := range ids {
		fs = append(fs, func() {
			_, _ = db.Exec("DELETE FROM users WHERE id = $1", id)

			for i := 0; i < 3; i++ {
				_, _ = db.Exec("DELETE FROM users WHERE id = $1", id) // want "database query operation 'Exec' called inside a loop"
			}
		})

		_, _ = db.Exec("UPDATE users SET seen = true WHERE id = $1", id) // want "database query operation 'Exec' called inside a loop"
	}

	return fs
}
