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
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type User struct {
	ID   int
	Name string
}

func sqlxLoop(db *sqlx.DB, ids []int) []User {
	users := make([]User, 0, len(ids))

	for _, id := range ids {
		var u User
		if err := db.Get(&u, db.Rebind("SELECT * FROM users WHERE id = ?"), id); err != nil { // want "database query operation 'Get' called inside a loop"
			continue
		}

		_ = sqlx.Get(db, &u, "SELECT * FROM users WHERE id = ?", id)

		users = append(users, u)
	}

	return users
}

func sqlxBatched(db *sqlx.DB, ids []int) []User {
	query, args, err := sqlx.In("SELECT * FROM users WHERE id IN (?)", ids)
	if err != nil {
		return nil
	}

	var users []User
	_ = db.Select(&users, db.Rebind(query), args...)

	return users
}

func gormLoop(db *gorm.DB, ids []int) {
	for _, id := range ids {
		var u User
		db.Session(nil).Where("id = ?", id).First(&u) // want "database query operation 'First' called inside a loop"
	}

	var users []User
	db.Where("id IN ?", ids).Find(&users)

	for i := range users {
		users[i].Name = "renamed"
		db.Save(&users[i]) // want "database query operation 'Save' called inside a loop"
	}
}

type MyLocalCache struct{ m map[int]User }

func (c MyLocalCache) Get(id int) User { return c.m[id] }

func cacheLoop(c MyLocalCache, ids []int) {
	for _, id := range ids {
		_ = c.Get(id)
	}
}
