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

package grammar

import "fmt"

// Case is a grammatical case identified by its OpenCorpora tag
// (the tag set understood by Russian morphological analyzers).
type Case string

func (c Case) Validate() error {
	for _, v := range AllCases {
		if c == v {
			return nil
		}
	}
	return fmt.Errorf("invalid grammatical case: `%s`", c)
}

func (c Case) String() string {
	return string(c)
}

const (
	Nominative    Case = "nomn"
	Genitive      Case = "gent"
	Dative        Case = "datv"
	Accusative    Case = "accs"
	Instrumental  Case = "ablt"
	Prepositional Case = "loct"
)

// AllCases lists the supported cases in the traditional order
// used by Russian grammars.
var AllCases = []Case{
	Nominative,
	Genitive,
	Dative,
	Accusative,
	Instrumental,
	Prepositional,
}

// Number is a grammatical number identified by its OpenCorpora tag.
type Number string

func (n Number) Validate() error {
	if n != Singular && n != Plural {
		return fmt.Errorf("invalid grammatical number: `%s`", n)
	}
	return nil
}

func (n Number) String() string {
	return string(n)
}

const (
	Singular Number = "sing"
	Plural   Number = "plur"
)

var AllNumbers = []Number{Singular, Plural}

// ParseCases converts raw tags into cases, silently dropping
// values which are not valid case tags.
func ParseCases(values []string) []Case {
	ans := make([]Case, 0, len(values))
	for _, v := range values {
		c := Case(v)
		if c.Validate() == nil {
			ans = append(ans, c)
		}
	}
	return ans
}

// ParseNumbers converts raw tags into numbers, silently dropping
// values which are not valid number tags.
func ParseNumbers(values []string) []Number {
	ans := make([]Number, 0, len(values))
	for _, v := range values {
		n := Number(v)
		if n.Validate() == nil {
			ans = append(ans, n)
		}
	}
	return ans
}
