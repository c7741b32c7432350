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

package lexicon

import "github.com/czcorpus/rudrill/grammar"

// BuiltinNouns is used whenever the noun file cannot be loaded
var BuiltinNouns = []string{
	"слово", "человек", "время", "дело", "жизнь",
	"день", "рука", "работа", "место", "право",
}

// BuiltinSentences is used whenever the sentence file cannot be loaded
var BuiltinSentences = map[grammar.Case][]FillSentence{
	grammar.Nominative:    {{Sentence: "Мой брат живёт в Москве.", WordIndex: 2}},
	grammar.Genitive:      {{Sentence: "У меня нет времени.", WordIndex: 4}},
	grammar.Dative:        {{Sentence: "Я написал письмо другу.", WordIndex: 4}},
	grammar.Accusative:    {{Sentence: "Она читает книгу каждый вечер.", WordIndex: 3}},
	grammar.Instrumental:  {{Sentence: "Он пишет ручкой.", WordIndex: 3}},
	grammar.Prepositional: {{Sentence: "Мы говорили о работе.", WordIndex: 4}},
}
