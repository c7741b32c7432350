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

type GrammarNumber struct {
	Singular string `json:"sing"`
	Plural   string `json:"plur"`
}

func (gn *GrammarNumber) get(n Number) string {
	switch n {
	case Singular:
		return gn.Singular
	case Plural:
		return gn.Plural
	}
	return ""
}

func (gn *GrammarNumber) set(n Number, value string) {
	switch n {
	case Singular:
		gn.Singular = value
	case Plural:
		gn.Plural = value
	}
}

// Declension is a full noun declension table. An empty
// cell means the form does not exist (e.g. singular
// of a plurale tantum).
type Declension struct {
	Nominative    GrammarNumber `json:"nomn"`
	Genitive      GrammarNumber `json:"gent"`
	Dative        GrammarNumber `json:"datv"`
	Accusative    GrammarNumber `json:"accs"`
	Instrumental  GrammarNumber `json:"ablt"`
	Prepositional GrammarNumber `json:"loct"`
}

func (d *Declension) row(c Case) *GrammarNumber {
	switch c {
	case Nominative:
		return &d.Nominative
	case Genitive:
		return &d.Genitive
	case Dative:
		return &d.Dative
	case Accusative:
		return &d.Accusative
	case Instrumental:
		return &d.Instrumental
	case Prepositional:
		return &d.Prepositional
	}
	return nil
}

// Get returns a form for the case and number. For invalid
// arguments, an empty string is returned.
func (d *Declension) Get(c Case, n Number) string {
	r := d.row(c)
	if r == nil {
		return ""
	}
	return r.get(n)
}

// Set stores a form. Invalid case or number is ignored.
func (d *Declension) Set(c Case, n Number, value string) {
	r := d.row(c)
	if r == nil {
		return
	}
	r.set(n, value)
}

// Forms returns all non-empty forms of the table (with possible duplicates).
func (d *Declension) Forms() []string {
	ans := make([]string, 0, len(AllCases)*len(AllNumbers))
	for _, c := range AllCases {
		for _, n := range AllNumbers {
			if v := d.Get(c, n); v != "" {
				ans = append(ans, v)
			}
		}
	}
	return ans
}

// IsEmpty tests whether there is no form in the table
func (d *Declension) IsEmpty() bool {
	return len(d.Forms()) == 0
}
