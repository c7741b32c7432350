// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage provides key-value stores with expiring
// items shared by the session, round and oracle caches.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("item not found")

// KVStore is a key-value store with per-item TTL.
// Implementations must be safe for concurrent use.
type KVStore interface {

	// Get returns stored value or ErrNotFound for missing
	// and expired items
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero ttl means the item does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Expire sets a new TTL for an existing item. For a missing
	// item, nothing happens.
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
