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

package wiktionary

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/morph"
)

const nbsp = "\u00a0"

func rowCase(header string) (grammar.Case, bool) {
	switch header {
	case "Им.":
		return grammar.Nominative, true
	case "Р.":
		return grammar.Genitive, true
	case "Д.":
		return grammar.Dative, true
	case "В.":
		return grammar.Accusative, true
	case "Тв.":
		return grammar.Instrumental, true
	case "Пр.":
		return grammar.Prepositional, true
	}
	return "", false
}

func columnNumber(header string) (grammar.Number, bool) {
	if strings.HasPrefix(header, "ед") {
		return grammar.Singular, true
	}
	if strings.HasPrefix(header, "мн") {
		return grammar.Plural, true
	}
	return "", false
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, nbsp, " "))
}

// cellValue returns the first variant of a (possibly multi-valued)
// table cell with stress marks removed. Missing forms are
// marked by a dash in the tables.
func cellValue(cell *goquery.Selection) string {
	cell.Find("br").ReplaceWithHtml("\n")
	for _, v := range strings.Split(cell.Text(), "\n") {
		v = cleanText(v)
		if v == "" {
			continue
		}
		if v == "—" || v == "-" || v == "–" {
			return ""
		}
		if i := strings.Index(v, "//"); i > 0 {
			v = cleanText(v[:i])
		}
		return morph.StripStress(v)
	}
	return ""
}

func parseTable(table *goquery.Selection) *morph.Paradigm {
	ans := &morph.Paradigm{}
	columns := []grammar.Number{grammar.Singular, grammar.Plural}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		headers := row.Find("th")
		cells := row.Find("td")
		if cells.Length() == 0 {
			numbers := make([]grammar.Number, 0, 2)
			headers.Each(func(j int, th *goquery.Selection) {
				if n, ok := columnNumber(cleanText(th.Text())); ok {
					numbers = append(numbers, n)
				}
			})
			if len(numbers) > 0 {
				columns = numbers
			}
			return
		}
		c, ok := rowCase(cleanText(headers.First().Text()))
		if !ok {
			return
		}
		cells.Each(func(j int, td *goquery.Selection) {
			if j >= len(columns) {
				return
			}
			ans.Forms.Set(c, columns[j], cellValue(td))
		})
	})
	ans.Lemma = ans.NormalForm()
	return ans
}

// parseDeclension extracts all noun declension tables of a page.
// A page without any table produces an empty result.
func parseDeclension(src io.Reader) ([]*morph.Paradigm, error) {
	doc, err := goquery.NewDocumentFromReader(src)
	if err != nil {
		return []*morph.Paradigm{}, err
	}
	ans := make([]*morph.Paradigm, 0, 2)
	doc.Find("table.morfotable").Each(func(i int, table *goquery.Selection) {
		p := parseTable(table)
		if !p.Forms.IsEmpty() {
			ans = append(ans, p)
		}
	})
	return ans, nil
}
