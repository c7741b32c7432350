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

// Package morph defines the morphological oracle used to inflect
// nouns and to obtain their dictionary forms.
package morph

import (
	"context"
	"errors"

	"github.com/czcorpus/rudrill/grammar"
	"github.com/rs/zerolog/log"
)

var ErrNoSource = errors.New("no morphological source configured")

// Inflectable is anything able to produce a form of a word
// for a case and a number.
type Inflectable interface {
	Inflect(c grammar.Case, n grammar.Number) (string, bool)
}

// Parse is a single interpretation of a word
type Parse interface {
	Inflectable
	NormalForm() string
}

// Oracle provides parses of a word with the most probable
// parse first.
type Oracle interface {
	Parse(ctx context.Context, word string) ([]Parse, error)
}

// Source is a backend providing full paradigms of a word.
// Implementations must be safe for concurrent use.
type Source interface {
	Lookup(ctx context.Context, word string) ([]*Paradigm, error)
}

// -------------------------

// Paradigm is a lemma along with its complete declension table
type Paradigm struct {
	Lemma string             `json:"lemma"`
	Forms grammar.Declension `json:"forms"`
}

func (p *Paradigm) Inflect(c grammar.Case, n grammar.Number) (string, bool) {
	v := p.Forms.Get(c, n)
	return v, v != ""
}

func (p *Paradigm) NormalForm() string {
	if p.Lemma != "" {
		return p.Lemma
	}
	if v := p.Forms.Get(grammar.Nominative, grammar.Singular); v != "" {
		return v
	}
	return p.Forms.Get(grammar.Nominative, grammar.Plural)
}

// -------------------------

// Analyzer is an Oracle backed by an ordered list of sources.
// The first source returning a non-empty result wins.
type Analyzer struct {
	sources []Source
	names   []string
}

// AddSource appends a source to the end of the chain.
// Sources must not be added once the analyzer is in use.
func (a *Analyzer) AddSource(name string, src Source) {
	a.sources = append(a.sources, src)
	a.names = append(a.names, name)
}

func (a *Analyzer) NumSources() int {
	return len(a.sources)
}

func (a *Analyzer) Parse(ctx context.Context, word string) ([]Parse, error) {
	if len(a.sources) == 0 {
		return []Parse{}, ErrNoSource
	}
	var lastErr error
	numFailed := 0
	for i, src := range a.sources {
		items, err := src.Lookup(ctx, word)
		if err != nil {
			log.Warn().
				Err(err).
				Str("source", a.names[i]).
				Str("word", word).
				Msg("morphological source failed, trying next one")
			lastErr = err
			numFailed++
			continue
		}
		if len(items) > 0 {
			ans := make([]Parse, len(items))
			for j, item := range items {
				ans[j] = item
			}
			return ans, nil
		}
	}
	if numFailed == len(a.sources) {
		return []Parse{}, lastErr
	}
	return []Parse{}, nil
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		sources: make([]Source, 0, 4),
		names:   make([]string, 0, 4),
	}
}

// -------------------------

// Inflect inflects the word using the first parse provided
// by the oracle. Oracle errors are reported the same way as
// a missing form.
func Inflect(ctx context.Context, o Oracle, word string, c grammar.Case, n grammar.Number) (string, bool) {
	parses, err := o.Parse(ctx, word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to parse word")
		return "", false
	}
	if len(parses) == 0 {
		return "", false
	}
	return parses[0].Inflect(c, n)
}

// NormalForm returns the dictionary form of the word according
// to its first parse. An empty string is returned if the oracle
// does not know the word.
func NormalForm(ctx context.Context, o Oracle, word string) string {
	parses, err := o.Parse(ctx, word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to parse word")
		return ""
	}
	if len(parses) == 0 {
		return ""
	}
	return parses[0].NormalForm()
}
