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

// Package i18n contains the (read-only) translation table
// of the user interface.
package i18n

import (
	"fmt"

	"github.com/czcorpus/rudrill/grammar"
)

type Language string

const (
	English Language = "en"
	Russian Language = "ru"

	DefaultLanguage = English
)

var SupportedLanguages = []Language{English, Russian}

// ParseLanguage returns a supported language matching the code.
// For an unsupported code, false is returned.
func ParseLanguage(code string) (Language, bool) {
	for _, v := range SupportedLanguages {
		if string(v) == code {
			return v, true
		}
	}
	return "", false
}

// Translations is a complete set of localized
// strings for a single language.
type Translations struct {
	Lang    Language                  `json:"lang"`
	UI      map[string]string         `json:"ui"`
	Cases   map[grammar.Case]string   `json:"cases"`
	Numbers map[grammar.Number]string `json:"numbers"`

	correct      string
	incorrectFmt string
	noSentences  string
}

// CorrectMessage is a feedback for a correct answer
func (t Translations) CorrectMessage() string {
	return t.correct
}

// IncorrectMessage is a feedback for a wrong answer revealing
// the correct one.
func (t Translations) IncorrectMessage(expected string) string {
	return fmt.Sprintf(t.incorrectFmt, expected)
}

// NoSentencesMessage is shown when the insert drill has no data
func (t Translations) NoSentencesMessage() string {
	return t.noSentences
}

// CaseName returns a localized name of a case. For an unknown
// case, the raw tag is returned.
func (t Translations) CaseName(c grammar.Case) string {
	if v, ok := t.Cases[c]; ok {
		return v
	}
	return string(c)
}

// NumberName returns a localized name of a number. For an unknown
// number, the raw tag is returned.
func (t Translations) NumberName(n grammar.Number) string {
	if v, ok := t.Numbers[n]; ok {
		return v
	}
	return string(n)
}

// Get returns translations for a language. Unsupported
// languages get the default (English) ones.
func Get(lang Language) Translations {
	if lang == Russian {
		return ruTranslations
	}
	return enTranslations
}

var enTranslations = Translations{
	Lang: English,
	UI: map[string]string{
		"welcome":                "Welcome to the Russian Noun Cases Drill",
		"forward_drill":          "Forward Drill",
		"backward_drill":         "Backward Drill",
		"select_cases":           "Select Cases:",
		"select_number":          "Select Number:",
		"select_case_and_number": "Select Case and Number:",
		"convert":                "Convert the noun",
		"into":                   "into its",
		"form":                   "form",
		"your_answer":            "Your Answer",
		"submit":                 "Submit",
		"next":                   "Next",
		"back_home":              "Back to Home",
		"intro_text":             "Practice Russian noun declensions interactively!",
		"insert_drill":           "Insert Word Drill: Fill in the gap",
		"insert_instruction":     "Fill in the missing word in the sentence below:",
		"insert_hint":            "(Hint: The normal form of the missing word is",
	},
	Cases: map[grammar.Case]string{
		grammar.Nominative:    "Nominative",
		grammar.Genitive:      "Genitive",
		grammar.Dative:        "Dative",
		grammar.Accusative:    "Accusative",
		grammar.Instrumental:  "Instrumental",
		grammar.Prepositional: "Prepositional",
	},
	Numbers: map[grammar.Number]string{
		grammar.Singular: "Singular",
		grammar.Plural:   "Plural",
	},
	correct:      "Correct!",
	incorrectFmt: "Incorrect. The correct answer is %s.",
	noSentences:  "No sentences available.",
}

var ruTranslations = Translations{
	Lang: Russian,
	UI: map[string]string{
		"welcome":                "Добро пожаловать в тренировку склонения русских существительных",
		"forward_drill":          "Тренировка: Склонение существительных",
		"backward_drill":         "Тренировка: определение падежа и числа",
		"select_cases":           "Выберите падежи:",
		"select_number":          "Выберите число:",
		"select_case_and_number": "Выберите падеж и число:",
		"convert":                "Склоните существительное",
		"into":                   "в",
		"form":                   "форму",
		"your_answer":            "Ваш ответ",
		"submit":                 "Отправить",
		"next":                   "Следующий",
		"back_home":              "Назад на главную",
		"intro_text":             "Практикуйтесь в склонении существительных на русском языке!",
		"insert_drill":           "Вставьте слово в пропуск",
		"insert_instruction":     "Вставьте недостающее слово в предложение ниже:",
		"insert_hint":            "(Подсказка: начальная форма недостающего слова —",
	},
	Cases: map[grammar.Case]string{
		grammar.Nominative:    "Именительный",
		grammar.Genitive:      "Родительный",
		grammar.Dative:        "Дательный",
		grammar.Accusative:    "Винительный",
		grammar.Instrumental:  "Творительный",
		grammar.Prepositional: "Предложный",
	},
	Numbers: map[grammar.Number]string{
		grammar.Singular: "Единственное число",
		grammar.Plural:   "Множественное число",
	},
	correct:      "Правильно!",
	incorrectFmt: "Неверно. Правильный ответ: %s.",
	noSentences:  "Нет доступных предложений.",
}
