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

// Package session handles per-client state (currently just
// the user interface language).
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/czcorpus/rudrill/storage"
)

const keyPrefix = "rudrill:session:"

// Store keeps string values per session. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, sid ID, key string) (string, bool, error)
	Set(ctx context.Context, sid ID, key, value string) error
}

// KVStore is a Store backed by a key-value storage (Redis or memory).
// Each access extends the lifetime of the item (sliding TTL).
type KVStore struct {
	store storage.KVStore
	ttl   time.Duration
}

func createKey(sid ID, key string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, sid, key)
}

func (s *KVStore) Get(ctx context.Context, sid ID, key string) (string, bool, error) {
	if sid.IsZero() {
		return "", false, nil
	}
	k := createKey(sid, key)
	v, err := s.store.Get(ctx, k)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil

	} else if err != nil {
		return "", false, fmt.Errorf("failed to get session value %s: %w", key, err)
	}
	if err := s.store.Expire(ctx, k, s.ttl); err != nil {
		return "", false, fmt.Errorf("failed to get session value %s: %w", key, err)
	}
	return string(v), true, nil
}

func (s *KVStore) Set(ctx context.Context, sid ID, key, value string) error {
	if sid.IsZero() {
		return fmt.Errorf("failed to set session value %s: no session", key)
	}
	if err := s.store.Set(ctx, createKey(sid, key), []byte(value), s.ttl); err != nil {
		return fmt.Errorf("failed to set session value %s: %w", key, err)
	}
	return nil
}

func NewKVStore(store storage.KVStore, conf *Conf) *KVStore {
	return &KVStore{
		store: store,
		ttl:   conf.TTL(),
	}
}
