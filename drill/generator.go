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

// Package drill generates drill questions and verifies answers.
package drill

import (
	"context"
	"strings"

	"github.com/czcorpus/rudrill/common"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/lexicon"
	"github.com/czcorpus/rudrill/morph"
	"github.com/rs/zerolog/log"
)

var (
	DefaultCases   = []grammar.Case{grammar.Genitive}
	DefaultNumbers = []grammar.Number{grammar.Singular}
)

type Generator struct {
	oracle morph.Oracle
	lex    *lexicon.Store
	rnd    common.Randomizer
}

func (g *Generator) inflect(ctx context.Context, noun string, c grammar.Case, n grammar.Number) string {
	v, ok := morph.Inflect(ctx, g.oracle, noun, c, n)
	if !ok {
		log.Debug().
			Str("noun", noun).
			Str("case", c.String()).
			Str("number", n.String()).
			Msg("inflection not available")
		return ErrorAnswer
	}
	return v
}

// Forward creates a question asking for an inflected form
// of a random noun. Empty cases or numbers are replaced
// by the defaults (genitive, singular).
func (g *Generator) Forward(ctx context.Context, cases []grammar.Case, numbers []grammar.Number) Question {
	if len(cases) == 0 {
		cases = DefaultCases
	}
	if len(numbers) == 0 {
		numbers = DefaultNumbers
	}
	noun := g.lex.RandomNoun()
	c := cases[g.rnd.Intn(len(cases))]
	n := numbers[g.rnd.Intn(len(numbers))]
	return Question{
		Kind: KindForward,
		Forward: &ForwardQuestion{
			Noun:     noun,
			Case:     c,
			Number:   n,
			Expected: g.inflect(ctx, noun, c, n),
		},
	}
}

// Backward creates a question showing an inflected form of a random
// noun in a random case and number.
func (g *Generator) Backward(ctx context.Context) Question {
	noun := g.lex.RandomNoun()
	c := grammar.AllCases[g.rnd.Intn(len(grammar.AllCases))]
	n := grammar.AllNumbers[g.rnd.Intn(len(grammar.AllNumbers))]
	return Question{
		Kind: KindBackward,
		Backward: &BackwardQuestion{
			Word:   g.inflect(ctx, noun, c, n),
			Case:   c,
			Number: n,
		},
	}
}

// Insert creates a fill-in-the-blank question. In case there
// are no sentences available, false is returned.
func (g *Generator) Insert(ctx context.Context) (Question, bool) {
	c, fs, ok := g.lex.RandomSentence()
	if !ok {
		return Question{}, false
	}
	display, expected := BlankSentence(fs)
	var normalForm string
	if expected != "" {
		normalForm = morph.NormalForm(ctx, g.oracle, expected)
	}
	return Question{
		Kind: KindInsert,
		Insert: &InsertQuestion{
			Sentence:   display,
			Expected:   expected,
			NormalForm: normalForm,
			Case:       c,
		},
	}, true
}

// BlankSentence replaces the word at the sentence's 1-based index
// with BlankMarker and returns the resulting sentence along with
// the replaced word stripped of trailing punctuation. For an index
// out of range, the word is empty and the sentence stays unchanged
// (just with normalized whitespace).
func BlankSentence(fs lexicon.FillSentence) (string, string) {
	words := strings.Fields(fs.Sentence)
	if fs.WordIndex < 1 || fs.WordIndex > len(words) {
		return strings.Join(words, " "), ""
	}
	target := words[fs.WordIndex-1]
	words[fs.WordIndex-1] = BlankMarker
	return strings.Join(words, " "), strings.TrimRight(target, ".,!?")
}

func NewGenerator(oracle morph.Oracle, lex *lexicon.Store, rnd common.Randomizer) *Generator {
	if rnd == nil {
		rnd = common.DefaultRandomizer
	}
	return &Generator{
		oracle: oracle,
		lex:    lex,
		rnd:    rnd,
	}
}
