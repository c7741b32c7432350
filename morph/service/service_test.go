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

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/czcorpus/rudrill/grammar"
	"github.com/stretchr/testify/assert"
)

const responseSlovo = `{
	"parses": [
		{
			"normalForm": "слово",
			"forms": {
				"nomn": {"sing": "слово", "plur": "слова"},
				"gent": {"sing": "слова", "plur": "слов"}
			}
		},
		{"normalForm": "пусто", "forms": {}}
	]
}`

func newTestClient(url string) *Client {
	conf := &Conf{BaseURL: url + "/", ClientUserAgent: "rudrill-test"}
	conf.ApplyDefaults()
	return NewClient(conf)
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parse", r.URL.Path)
		assert.Equal(t, "слова", r.URL.Query().Get("word"))
		assert.Equal(t, "rudrill-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseSlovo))
	}))
	defer srv.Close()

	ans, err := newTestClient(srv.URL).Lookup(context.Background(), "слова")
	assert.NoError(t, err)
	if assert.Len(t, ans, 1) {
		assert.Equal(t, "слово", ans[0].NormalForm())
		v, ok := ans[0].Inflect(grammar.Genitive, grammar.Plural)
		assert.True(t, ok)
		assert.Equal(t, "слов", v)
	}
}

func TestLookupUnknownWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"parses": []}`))
	}))
	defer srv.Close()
	ans, err := newTestClient(srv.URL).Lookup(context.Background(), "ыыы")
	assert.NoError(t, err)
	assert.Empty(t, ans)
}

func TestLookupBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	_, err := newTestClient(srv.URL).Lookup(context.Background(), "слово")
	assert.Error(t, err)
}

func TestLookupServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"parses": [], "error": "analyzer not ready"}`))
	}))
	defer srv.Close()
	_, err := newTestClient(srv.URL).Lookup(context.Background(), "слово")
	assert.ErrorContains(t, err, "analyzer not ready")
}

func TestConfValidate(t *testing.T) {
	conf := &Conf{}
	assert.Error(t, conf.Validate("morph.service"))
	conf.BaseURL = "http://localhost:8090"
	assert.NoError(t, conf.Validate("morph.service"))
	conf.ApplyDefaults()
	assert.Equal(t, dfltTimeoutSecs, conf.TimeoutSecs)
}
