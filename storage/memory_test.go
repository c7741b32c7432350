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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	assert.NoError(t, ms.Set(ctx, "k1", []byte("v1"), time.Minute))
	v, err := ms.Get(ctx, "k1")
	assert.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	_, err = ms.Get(ctx, "k2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	ms.Set(ctx, "k1", []byte("v1"), time.Millisecond)
	ms.Set(ctx, "k2", []byte("v2"), 0)
	time.Sleep(5 * time.Millisecond)
	_, err := ms.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ms.Get(ctx, "k2")
	assert.NoError(t, err)
}

func TestMemoryStoreExpireExtends(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	ms.Set(ctx, "k1", []byte("v1"), 20*time.Millisecond)
	assert.NoError(t, ms.Expire(ctx, "k1", time.Hour))
	time.Sleep(30 * time.Millisecond)
	_, err := ms.Get(ctx, "k1")
	assert.NoError(t, err)
	assert.NoError(t, ms.Expire(ctx, "missing", time.Hour))
	_, err = ms.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRemoveExpired(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()
	ms.Set(ctx, "a", []byte("1"), time.Millisecond)
	ms.Set(ctx, "b", []byte("2"), time.Millisecond)
	ms.Set(ctx, "c", []byte("3"), time.Hour)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, ms.RemoveExpired())
	assert.Equal(t, 1, ms.Len())
}

func TestConf(t *testing.T) {
	var c *Conf
	assert.False(t, c.IsConfigured())
	c = &Conf{Addr: "localhost:6379", DB: -1}
	assert.True(t, c.IsConfigured())
	assert.Error(t, c.Validate("redis"))
}
