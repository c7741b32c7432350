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

package dict

import (
	"context"
	"testing"

	"github.com/czcorpus/rudrill/grammar"
	"github.com/stretchr/testify/assert"
)

func TestLoadStripsStressAndIndexesForms(t *testing.T) {
	d := Load("testdata/small.json")
	assert.Equal(t, 2, d.Size())

	ans, err := d.Lookup(context.Background(), "СЛОВАМИ")
	assert.NoError(t, err)
	if assert.Len(t, ans, 1) {
		assert.Equal(t, "слово", ans[0].NormalForm())
		v, ok := ans[0].Inflect(grammar.Dative, grammar.Plural)
		assert.True(t, ok)
		assert.Equal(t, "словам", v)
	}
}

func TestLemmaMatchComesFirst(t *testing.T) {
	d := Load("testdata/small.json")
	ans, err := d.Lookup(context.Background(), "слова")
	assert.NoError(t, err)
	if assert.Len(t, ans, 2) {
		assert.Equal(t, "слова", ans[0].NormalForm())
		assert.Equal(t, "слово", ans[1].NormalForm())
	}
}

func TestUnknownWord(t *testing.T) {
	d := Builtin()
	ans, err := d.Lookup(context.Background(), "абракадабра")
	assert.NoError(t, err)
	assert.Empty(t, ans)
	assert.False(t, d.Has("абракадабра"))
}

func TestFallbackToBuiltin(t *testing.T) {
	builtin := Builtin()
	assert.Equal(t, builtin.Size(), Load("testdata/broken.json").Size())
	assert.Equal(t, builtin.Size(), Load("testdata/nonexistent.json").Size())
	assert.Equal(t, builtin.Size(), Load("").Size())
}

func TestBuiltinCoversLexicon(t *testing.T) {
	d := Builtin()
	for _, w := range []string{"слово", "человек", "время", "дело", "жизнь", "день", "рука", "работа", "место", "право"} {
		ans, err := d.Lookup(context.Background(), w)
		assert.NoError(t, err)
		if assert.NotEmpty(t, ans, w) {
			assert.Equal(t, w, ans[0].NormalForm())
			for _, c := range grammar.AllCases {
				for _, n := range grammar.AllNumbers {
					_, ok := ans[0].Inflect(c, n)
					assert.True(t, ok, "%s %s %s", w, c, n)
				}
			}
		}
	}
}

func TestBuiltinFindsLemmaOfInflected(t *testing.T) {
	d := Builtin()
	ans, err := d.Lookup(context.Background(), "людьми")
	assert.NoError(t, err)
	if assert.NotEmpty(t, ans) {
		assert.Equal(t, "человек", ans[0].NormalForm())
	}
}
