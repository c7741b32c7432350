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

package morph

import (
	"context"
	"errors"
	"testing"

	"github.com/czcorpus/rudrill/grammar"
	"github.com/stretchr/testify/assert"
)

type staticSource struct {
	items []*Paradigm
	err   error
	calls int
}

func (s *staticSource) Lookup(ctx context.Context, word string) ([]*Paradigm, error) {
	s.calls++
	return s.items, s.err
}

func slovoParadigm() *Paradigm {
	p := &Paradigm{Lemma: "слово"}
	p.Forms.Set(grammar.Nominative, grammar.Singular, "слово")
	p.Forms.Set(grammar.Genitive, grammar.Singular, "слова")
	p.Forms.Set(grammar.Genitive, grammar.Plural, "слов")
	return p
}

func TestParadigmInflect(t *testing.T) {
	p := slovoParadigm()
	v, ok := p.Inflect(grammar.Genitive, grammar.Plural)
	assert.True(t, ok)
	assert.Equal(t, "слов", v)
	_, ok = p.Inflect(grammar.Dative, grammar.Plural)
	assert.False(t, ok)
}

func TestParadigmNormalFormFallback(t *testing.T) {
	p := &Paradigm{}
	p.Forms.Set(grammar.Nominative, grammar.Plural, "ножницы")
	assert.Equal(t, "ножницы", p.NormalForm())
	p.Forms.Set(grammar.Nominative, grammar.Singular, "x")
	assert.Equal(t, "x", p.NormalForm())
	p.Lemma = "y"
	assert.Equal(t, "y", p.NormalForm())
}

func TestAnalyzerFallsThroughEmptySource(t *testing.T) {
	empty := &staticSource{}
	full := &staticSource{items: []*Paradigm{slovoParadigm()}}
	a := NewAnalyzer()
	a.AddSource("empty", empty)
	a.AddSource("full", full)
	ans, err := a.Parse(context.Background(), "слово")
	assert.NoError(t, err)
	assert.Len(t, ans, 1)
	assert.Equal(t, "слово", ans[0].NormalForm())
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, full.calls)
}

func TestAnalyzerSkipsFailingSource(t *testing.T) {
	a := NewAnalyzer()
	a.AddSource("broken", &staticSource{err: errors.New("boom")})
	a.AddSource("full", &staticSource{items: []*Paradigm{slovoParadigm()}})
	ans, err := a.Parse(context.Background(), "слово")
	assert.NoError(t, err)
	assert.Len(t, ans, 1)
}

func TestAnalyzerAllFailing(t *testing.T) {
	a := NewAnalyzer()
	a.AddSource("b1", &staticSource{err: errors.New("first")})
	a.AddSource("b2", &staticSource{err: errors.New("second")})
	ans, err := a.Parse(context.Background(), "слово")
	assert.EqualError(t, err, "second")
	assert.Empty(t, ans)
}

func TestAnalyzerUnknownWordIsNotError(t *testing.T) {
	a := NewAnalyzer()
	a.AddSource("b1", &staticSource{err: errors.New("first")})
	a.AddSource("empty", &staticSource{})
	ans, err := a.Parse(context.Background(), "ыыы")
	assert.NoError(t, err)
	assert.Empty(t, ans)
}

func TestAnalyzerNoSources(t *testing.T) {
	_, err := NewAnalyzer().Parse(context.Background(), "слово")
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestInflectHelpers(t *testing.T) {
	a := NewAnalyzer()
	a.AddSource("full", &staticSource{items: []*Paradigm{slovoParadigm()}})
	v, ok := Inflect(context.Background(), a, "слово", grammar.Genitive, grammar.Singular)
	assert.True(t, ok)
	assert.Equal(t, "слова", v)
	assert.Equal(t, "слово", NormalForm(context.Background(), a, "слова"))

	b := NewAnalyzer()
	b.AddSource("broken", &staticSource{err: errors.New("boom")})
	_, ok = Inflect(context.Background(), b, "слово", grammar.Genitive, grammar.Singular)
	assert.False(t, ok)
	assert.Equal(t, "", NormalForm(context.Background(), b, "слово"))
}

func TestStripStress(t *testing.T) {
	assert.Equal(t, "слова", StripStress("слова\u0301"))
	assert.Equal(t, "днём", StripStress("днём"))
	assert.Equal(t, "йод", StripStress("йод"))
	assert.Equal(t, "рука", StripStress("ру\u0300ка"))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "слово", NormalizeQuery("  Сло\u0301во "))
}
