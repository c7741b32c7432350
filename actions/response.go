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

package actions

import (
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/i18n"
)

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func caseOptions(t i18n.Translations) []option {
	ans := make([]option, len(grammar.AllCases))
	for i, c := range grammar.AllCases {
		ans[i] = option{Value: string(c), Label: t.CaseName(c)}
	}
	return ans
}

func numberOptions(t i18n.Translations) []option {
	ans := make([]option, len(grammar.AllNumbers))
	for i, n := range grammar.AllNumbers {
		ans[i] = option{Value: string(n), Label: t.NumberName(n)}
	}
	return ans
}

type uiResponse struct {
	Lang      i18n.Language     `json:"lang"`
	Languages []i18n.Language   `json:"languages"`
	UI        map[string]string `json:"ui"`
	Cases     []option          `json:"cases"`
	Numbers   []option          `json:"numbers"`
}

type languageResponse struct {
	Lang    i18n.Language `json:"lang"`
	Changed bool          `json:"changed"`
}

// forwardRound is a public view of a forward question
// (i.e. without the expected answer)
type forwardRound struct {
	RoundID         string           `json:"roundId"`
	Lang            i18n.Language    `json:"lang"`
	Noun            string           `json:"noun"`
	Case            grammar.Case     `json:"case"`
	CaseName        string           `json:"caseName"`
	Number          grammar.Number   `json:"number"`
	NumberName      string           `json:"numberName"`
	SelectedCases   []grammar.Case   `json:"selectedCases"`
	SelectedNumbers []grammar.Number `json:"selectedNumbers"`
	CaseOptions     []option         `json:"caseOptions"`
	NumberOptions   []option         `json:"numberOptions"`
}

type backwardRound struct {
	RoundID       string        `json:"roundId"`
	Lang          i18n.Language `json:"lang"`
	Word          string        `json:"word"`
	CaseOptions   []option      `json:"caseOptions"`
	NumberOptions []option      `json:"numberOptions"`
}

type insertRound struct {
	RoundID    string        `json:"roundId,omitempty"`
	Lang       i18n.Language `json:"lang"`
	Sentence   string        `json:"sentence"`
	NormalForm string        `json:"normalForm"`
	NoData     bool          `json:"noData,omitempty"`
}

type verificationResponse struct {
	Feedback drill.Feedback `json:"feedback"`
	Answer   string         `json:"answer"`
	Next     any            `json:"next"`
}

// ---------------

type forwardAnswer struct {
	RoundID string   `json:"roundId"`
	Answer  *string  `json:"answer"`
	Cases   []string `json:"cases"`
	Numbers []string `json:"numbers"`
}

type backwardAnswer struct {
	RoundID string `json:"roundId"`
	Case    string `json:"case"`
	Number  string `json:"number"`
}

type insertAnswer struct {
	RoundID string  `json:"roundId"`
	Answer  *string `json:"answer"`
}
