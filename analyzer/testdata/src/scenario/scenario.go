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

package scenario

type Postgres struct{}

type Pool[DB any] struct{}

func (*Pool[DB]) fetch_all(query string) []string { return nil }

func (*Pool[DB]) validate() error { return nil }

type MyLocalCache struct{}

func (MyLocalCache) fetch_all(query string) []string { return nil }

func inLoop(pool *Pool[Postgres], ids []int) {
	for range ids {
		_ = pool.fetch_all("SELECT * FROM orders WHERE user_id = ?") // want `^database query operation 'fetch_all' called inside a loop; consider batching queries using WHERE IN clauses or collecting IDs first$`
	}
}

func outsideLoop(conn *Pool[Postgres]) {
	_ = conn.fetch_all("SELECT * FROM orders")
}

func localCache(cache MyLocalCache, ids []int) {
	for range ids {
		_ = cache.fetch_all("SELECT * FROM orders WHERE user_id = ?")
	}
}

func notAQuery(pool *Pool[Postgres], ids []int) {
	for range ids {
		_ = pool.validate()
	}
}
