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
	"strings"

	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Feedback struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`

	// Submitted is a localized label of the user's choice
	// (backward drill only, filled in only for a wrong answer)
	Submitted string `json:"submitted,omitempty"`
}

func normalizeAnswer(s string) string {
	// a Caser is stateful, so it cannot be shared
	return cases.Lower(language.Russian).String(strings.TrimSpace(s))
}

// Verify compares a submitted answer with the expected one
// ignoring surrounding whitespace and letter case.
func Verify(submitted, expected string, lang i18n.Language) Feedback {
	t := i18n.Get(lang)
	if normalizeAnswer(submitted) == normalizeAnswer(expected) {
		return Feedback{Correct: true, Message: t.CorrectMessage()}
	}
	return Feedback{Correct: false, Message: t.IncorrectMessage(expected)}
}

// VerifySubmission is like Verify but it also handles
// a missing answer which is always incorrect.
func VerifySubmission(submitted *string, expected string, lang i18n.Language) Feedback {
	if submitted == nil {
		return Feedback{Correct: false, Message: i18n.Get(lang).IncorrectMessage(expected)}
	}
	return Verify(*submitted, expected, lang)
}

// GrammarLabel creates a localized "case / number" label
func GrammarLabel(c grammar.Case, n grammar.Number, lang i18n.Language) string {
	t := i18n.Get(lang)
	return fmt.Sprintf("%s / %s", t.CaseName(c), t.NumberName(n))
}

// VerifyGrammar verifies a backward drill answer.
func VerifyGrammar(
	userCase grammar.Case,
	userNumber grammar.Number,
	expCase grammar.Case,
	expNumber grammar.Number,
	lang i18n.Language,
) Feedback {
	t := i18n.Get(lang)
	if userCase == expCase && userNumber == expNumber {
		return Feedback{Correct: true, Message: t.CorrectMessage()}
	}
	return Feedback{
		Correct:   false,
		Message:   t.IncorrectMessage(GrammarLabel(expCase, expNumber, lang)),
		Submitted: GrammarLabel(userCase, userNumber, lang),
	}
}
