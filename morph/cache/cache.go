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

// Package cache provides a caching decorator for morphological
// sources. Results (including empty ones) are stored in a shared
// key-value store, source errors are never cached.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/rudrill/morph"
	"github.com/czcorpus/rudrill/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	keyPrefix   = "rudrill:morph:"
	DfltTTLSecs = 86400
)

type Conf struct {
	TTLSecs int `json:"ttlSecs"`
}

func (c *Conf) TTL() time.Duration {
	if c.TTLSecs <= 0 {
		return time.Duration(DfltTTLSecs) * time.Second
	}
	return time.Duration(c.TTLSecs) * time.Second
}

// CachedSource wraps a source with a cache. Concurrent misses
// for the same word result in a single source lookup. A caller
// whose context is cancelled stops waiting but the lookup
// continues for the others.
type CachedSource struct {
	src   morph.Source
	store storage.KVStore
	ttl   time.Duration
	group singleflight.Group
}

func createKey(word string) string {
	return keyPrefix + morph.NormalizeQuery(word)
}

func (cs *CachedSource) fromCache(ctx context.Context, key string) ([]*morph.Paradigm, error) {
	data, err := cs.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var ans []*morph.Paradigm
	if err := sonic.Unmarshal(data, &ans); err != nil {
		return nil, fmt.Errorf("failed to decode cached paradigms: %w", err)
	}
	return ans, nil
}

func (cs *CachedSource) Lookup(ctx context.Context, word string) ([]*morph.Paradigm, error) {
	key := createKey(word)
	ans, err := cs.fromCache(ctx, key)
	if err == nil {
		return ans, nil

	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Warn().Err(err).Str("word", word).Msg("morphology cache failed, using source directly")
	}

	// the shared lookup must survive cancellation of the request
	// which started it (sources apply their own timeouts)
	lookupCtx := context.WithoutCancel(ctx)
	ch := cs.group.DoChan(key, func() (any, error) {
		if cached, err := cs.fromCache(lookupCtx, key); err == nil {
			return cached, nil
		}
		items, err := cs.src.Lookup(lookupCtx, word)
		if err != nil {
			return nil, err
		}
		data, err := sonic.Marshal(items)
		if err != nil {
			log.Error().Err(err).Str("word", word).Msg("failed to encode paradigms for cache")
			return items, nil
		}
		if err := cs.store.Set(lookupCtx, key, data, cs.ttl); err != nil {
			log.Warn().Err(err).Str("word", word).Msg("failed to store paradigms in cache")
		}
		return items, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return []*morph.Paradigm{}, ctx.Err()
	}
	if res.Err != nil {
		return []*morph.Paradigm{}, res.Err
	}
	v := res.Val
	items := v.([]*morph.Paradigm)
	ans = make([]*morph.Paradigm, 0, len(items))
	for _, item := range items {
		cp := *item
		ans = append(ans, &cp)
	}
	return ans, nil
}

func NewCachedSource(src morph.Source, store storage.KVStore, conf *Conf) *CachedSource {
	return &CachedSource{
		src:   src,
		store: store,
		ttl:   conf.TTL(),
	}
}
