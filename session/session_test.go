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

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type brokenStore struct{}

func (bs brokenStore) Get(ctx context.Context, sid ID, key string) (string, bool, error) {
	return "", false, errors.New("storage down")
}

func (bs brokenStore) Set(ctx context.Context, sid ID, key, value string) error {
	return errors.New("storage down")
}

func newTestConf() *Conf {
	conf := &Conf{}
	conf.ApplyDefaults()
	return conf
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore(storage.NewMemoryStore(), newTestConf())
	sid := NewID()
	_, ok, err := s.Get(ctx, sid, "lang")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Set(ctx, sid, "lang", "ru"))
	v, ok, err := s.Get(ctx, sid, "lang")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ru", v)

	_, ok, _ = s.Get(ctx, NewID(), "lang")
	assert.False(t, ok)

	assert.Error(t, s.Set(ctx, ID{}, "lang", "ru"))
}

func TestPreferencesDefault(t *testing.T) {
	p := NewPreferences(NewKVStore(storage.NewMemoryStore(), newTestConf()), i18n.English)
	assert.Equal(t, i18n.English, p.Language(context.Background(), NewID()))
}

func TestSetLanguage(t *testing.T) {
	ctx := context.Background()
	p := NewPreferences(NewKVStore(storage.NewMemoryStore(), newTestConf()), i18n.English)
	sid := NewID()
	changed, err := p.SetLanguage(ctx, sid, "ru")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, i18n.Russian, p.Language(ctx, sid))

	changed, err = p.SetLanguage(ctx, sid, "de")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, i18n.Russian, p.Language(ctx, sid))
}

func TestPreferencesBrokenStore(t *testing.T) {
	ctx := context.Background()
	p := NewPreferences(brokenStore{}, i18n.Russian)
	assert.Equal(t, i18n.Russian, p.Language(ctx, NewID()))
	_, err := p.SetLanguage(ctx, NewID(), "en")
	assert.Error(t, err)
}

func TestInvalidDefaultLanguage(t *testing.T) {
	p := NewPreferences(brokenStore{}, i18n.Language("xx"))
	assert.Equal(t, i18n.DefaultLanguage, p.Language(context.Background(), NewID()))
}

func TestIDUpdatedFrom(t *testing.T) {
	var sid ID
	assert.True(t, sid.IsZero())
	assert.Equal(t, "", sid.String())
	assert.True(t, sid.UpdatedFrom("not-a-uuid").IsZero())
	v := uuid.New().String()
	assert.Equal(t, v, sid.UpdatedFrom(v).String())
}

func newTestEngine(conf *Conf, sids *[]ID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Middleware(conf))
	engine.GET("/", func(ctx *gin.Context) {
		*sids = append(*sids, FromContext(ctx))
		ctx.Status(http.StatusNoContent)
	})
	return engine
}

func TestMiddlewareIssuesCookie(t *testing.T) {
	conf := newTestConf()
	sids := make([]ID, 0, 1)
	engine := newTestEngine(conf, &sids)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, DfltCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		_, err := uuid.Parse(cookies[0].Value)
		assert.NoError(t, err)
		if assert.Len(t, sids, 1) {
			assert.Equal(t, cookies[0].Value, sids[0].String())
		}
	}
}

func TestMiddlewareKeepsValidCookie(t *testing.T) {
	conf := newTestConf()
	sids := make([]ID, 0, 1)
	engine := newTestEngine(conf, &sids)
	existing := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DfltCookieName, Value: existing})
	engine.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	if assert.Len(t, sids, 1) {
		assert.Equal(t, existing, sids[0].String())
	}
}

func TestMiddlewareReplacesMalformedCookie(t *testing.T) {
	conf := newTestConf()
	sids := make([]ID, 0, 1)
	engine := newTestEngine(conf, &sids)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: DfltCookieName, Value: "forged"})
	engine.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.NotEqual(t, "forged", cookies[0].Value)
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.True(t, FromContext(ctx).IsZero())
}
