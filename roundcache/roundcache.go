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

// Package roundcache stores generated drill questions on the server
// side so clients never get to see the expected answers.
package roundcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/storage"
	"github.com/google/uuid"
)

const (
	keyPrefix   = "rudrill:round:"
	DfltTTLSecs = 3600
)

var ErrRoundNotFound = errors.New("round not found")

type Conf struct {
	TTLSecs int `json:"ttlSecs"`
}

func (c *Conf) Validate(context string) error {
	if c.TTLSecs < 0 {
		return fmt.Errorf("%s.ttlSecs cannot be negative", context)
	}
	return nil
}

func (c *Conf) TTL() time.Duration {
	if c.TTLSecs == 0 {
		return time.Duration(DfltTTLSecs) * time.Second
	}
	return time.Duration(c.TTLSecs) * time.Second
}

type Cache struct {
	store storage.KVStore
	ttl   time.Duration
}

func createKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Put stores a question and returns a new round ID
func (c *Cache) Put(ctx context.Context, q drill.Question) (string, error) {
	if err := q.Validate(); err != nil {
		return "", fmt.Errorf("failed to store round: %w", err)
	}
	data, err := sonic.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("failed to store round: %w", err)
	}
	id := uuid.New()
	if err := c.store.Set(ctx, createKey(id), data, c.ttl); err != nil {
		return "", fmt.Errorf("failed to store round: %w", err)
	}
	return id.String(), nil
}

// Get returns a question of an active round. For malformed,
// unknown or expired round IDs, ErrRoundNotFound is returned.
func (c *Cache) Get(ctx context.Context, roundID string) (drill.Question, error) {
	id, err := uuid.Parse(roundID)
	if err != nil {
		return drill.Question{}, ErrRoundNotFound
	}
	data, err := c.store.Get(ctx, createKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return drill.Question{}, ErrRoundNotFound

	} else if err != nil {
		return drill.Question{}, fmt.Errorf("failed to get round %s: %w", roundID, err)
	}
	var ans drill.Question
	if err := sonic.Unmarshal(data, &ans); err != nil {
		return drill.Question{}, fmt.Errorf("failed to decode round %s: %w", roundID, err)
	}
	if err := ans.Validate(); err != nil {
		return drill.Question{}, fmt.Errorf("invalid round %s: %w", roundID, err)
	}
	return ans, nil
}

func NewCache(store storage.KVStore, conf *Conf) *Cache {
	return &Cache{
		store: store,
		ttl:   conf.TTL(),
	}
}
