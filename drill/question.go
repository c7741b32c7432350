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

package drill

import (
	"fmt"

	"github.com/czcorpus/rudrill/grammar"
)

type Kind string

const (
	KindForward  Kind = "forward"
	KindBackward Kind = "backward"
	KindInsert   Kind = "insert"

	// ErrorAnswer is used as the expected answer (or the displayed
	// word) in case the oracle cannot inflect a noun
	ErrorAnswer = "Error"

	// BlankMarker replaces the missing word in insert drill sentences
	BlankMarker = "_____"
)

func (k Kind) Validate() error {
	if k != KindForward && k != KindBackward && k != KindInsert {
		return fmt.Errorf("invalid drill kind `%s`", k)
	}
	return nil
}

type ForwardQuestion struct {
	Noun     string         `json:"noun"`
	Case     grammar.Case   `json:"case"`
	Number   grammar.Number `json:"number"`
	Expected string         `json:"expected"`
}

// BackwardQuestion shows an inflected word, the user is expected
// to identify its case and number.
type BackwardQuestion struct {
	Word   string         `json:"word"`
	Case   grammar.Case   `json:"case"`
	Number grammar.Number `json:"number"`
}

type InsertQuestion struct {
	Sentence   string       `json:"sentence"`
	Expected   string       `json:"expected"`
	NormalForm string       `json:"normalForm"`
	Case       grammar.Case `json:"case"`
}

// Question is a tagged variant of all the drill questions.
// Exactly one of the pointers matching Kind is set.
type Question struct {
	Kind     Kind              `json:"kind"`
	Forward  *ForwardQuestion  `json:"forward,omitempty"`
	Backward *BackwardQuestion `json:"backward,omitempty"`
	Insert   *InsertQuestion   `json:"insert,omitempty"`
}

func (q *Question) Validate() error {
	if err := q.Kind.Validate(); err != nil {
		return err
	}
	var numSet int
	if q.Forward != nil {
		numSet++
	}
	if q.Backward != nil {
		numSet++
	}
	if q.Insert != nil {
		numSet++
	}
	if numSet != 1 {
		return fmt.Errorf("question must contain exactly one variant, found %d", numSet)
	}
	switch q.Kind {
	case KindForward:
		if q.Forward == nil {
			return fmt.Errorf("missing forward question data")
		}
	case KindBackward:
		if q.Backward == nil {
			return fmt.Errorf("missing backward question data")
		}
	case KindInsert:
		if q.Insert == nil {
			return fmt.Errorf("missing insert question data")
		}
	}
	return nil
}

// Expected returns the expected textual answer. For a backward
// question, the expected answer is not a text and an empty string
// is returned.
func (q *Question) Expected() string {
	switch q.Kind {
	case KindForward:
		return q.Forward.Expected
	case KindInsert:
		return q.Insert.Expected
	}
	return ""
}
