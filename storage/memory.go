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

package storage

import (
	"context"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

type memItem struct {
	value   []byte
	expires time.Time
}

func (item memItem) isExpired(t time.Time) bool {
	return !item.expires.IsZero() && t.After(item.expires)
}

func expiration(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}

// MemoryStore is a process-local KVStore. Expired items
// are removed lazily on access and by RemoveExpired.
type MemoryStore struct {
	data *collections.ConcurrentMap[string, memItem]
}

func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	item, ok := ms.data.GetWithTest(key)
	if !ok {
		return nil, ErrNotFound
	}
	if item.isExpired(time.Now()) {
		ms.data.Delete(key)
		return nil, ErrNotFound
	}
	return item.value, nil
}

func (ms *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	ms.data.Set(key, memItem{value: stored, expires: expiration(ttl)})
	return nil
}

func (ms *MemoryStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	item, ok := ms.data.GetWithTest(key)
	if !ok || item.isExpired(time.Now()) {
		return nil
	}
	item.expires = expiration(ttl)
	ms.data.Set(key, item)
	return nil
}

func (ms *MemoryStore) Len() int {
	return ms.data.Len()
}

// RemoveExpired deletes all expired items and returns their number
func (ms *MemoryStore) RemoveExpired() int {
	now := time.Now()
	expired := make([]string, 0, 10)
	ms.data.ForEach(func(k string, item memItem, ok bool) {
		if item.isExpired(now) {
			expired = append(expired, k)
		}
	})
	for _, k := range expired {
		ms.data.Delete(k)
	}
	return len(expired)
}

// RunCleanup periodically removes expired items until
// the context is cancelled.
func (ms *MemoryStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping memory store cleanup")
			return
		case <-ticker.C:
			if n := ms.RemoveExpired(); n > 0 {
				log.Debug().
					Int("removed", n).
					Int("remaining", ms.Len()).
					Msg("removed expired memory store items")
			}
		}
	}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: collections.NewConcurrentMap[string, memItem](),
	}
}
