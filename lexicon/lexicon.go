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

// Package lexicon provides read-only drill data: a list
// of nouns and a bank of sentences for the insert drill.
package lexicon

import (
	"github.com/czcorpus/rudrill/common"
	"github.com/czcorpus/rudrill/grammar"
)

// FillSentence is a sentence with a word (specified by its 1-based
// position among whitespace separated tokens) to be blanked.
type FillSentence struct {
	Sentence  string `json:"sentence"`
	WordIndex int    `json:"word_index"`
}

// Store is immutable after creation and safe for concurrent reads
// (provided the randomizer is).
type Store struct {
	nouns     []string
	sentences map[grammar.Case][]FillSentence
	caseKeys  []grammar.Case
	rnd       common.Randomizer
}

// RandomNoun returns a uniformly chosen noun. For an empty
// noun list, an empty string is returned.
func (s *Store) RandomNoun() string {
	if len(s.nouns) == 0 {
		return ""
	}
	return s.nouns[s.rnd.Intn(len(s.nouns))]
}

// RandomSentence chooses a case uniformly from the available ones
// and then a sentence uniformly from the case's list. With an empty
// bank, false is returned.
func (s *Store) RandomSentence() (grammar.Case, FillSentence, bool) {
	if len(s.caseKeys) == 0 {
		return "", FillSentence{}, false
	}
	c := s.caseKeys[s.rnd.Intn(len(s.caseKeys))]
	items := s.sentences[c]
	return c, items[s.rnd.Intn(len(items))], true
}

func (s *Store) Nouns() []string {
	ans := make([]string, len(s.nouns))
	copy(ans, s.nouns)
	return ans
}

func (s *Store) NumSentences() int {
	var ans int
	for _, v := range s.sentences {
		ans += len(v)
	}
	return ans
}

// SentenceCases returns cases with at least one sentence
func (s *Store) SentenceCases() []grammar.Case {
	ans := make([]grammar.Case, len(s.caseKeys))
	copy(ans, s.caseKeys)
	return ans
}

// NewStore creates a store from provided data. Cases with
// no sentences are ignored.
func NewStore(nouns []string, sentences map[grammar.Case][]FillSentence, rnd common.Randomizer) *Store {
	if rnd == nil {
		rnd = common.DefaultRandomizer
	}
	ans := &Store{
		nouns:     make([]string, len(nouns)),
		sentences: make(map[grammar.Case][]FillSentence),
		caseKeys:  make([]grammar.Case, 0, len(grammar.AllCases)),
		rnd:       rnd,
	}
	copy(ans.nouns, nouns)
	for _, c := range grammar.AllCases {
		items := sentences[c]
		if len(items) == 0 {
			continue
		}
		cp := make([]FillSentence, len(items))
		copy(cp, items)
		ans.sentences[c] = cp
		ans.caseKeys = append(ans.caseKeys, c)
	}
	return ans
}
