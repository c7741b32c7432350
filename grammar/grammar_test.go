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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseValidate(t *testing.T) {
	for _, c := range AllCases {
		assert.NoError(t, c.Validate())
	}
	assert.Error(t, Case("voct").Validate())
	assert.Error(t, Case("").Validate())
}

func TestNumberValidate(t *testing.T) {
	assert.NoError(t, Singular.Validate())
	assert.NoError(t, Plural.Validate())
	assert.Error(t, Number("dual").Validate())
}

func TestParseCasesDropsInvalid(t *testing.T) {
	ans := ParseCases([]string{"gent", "foo", "ablt", ""})
	assert.Equal(t, []Case{Genitive, Instrumental}, ans)
}

func TestParseNumbersEmpty(t *testing.T) {
	ans := ParseNumbers([]string{"x"})
	assert.Empty(t, ans)
}

func TestDeclensionGetSet(t *testing.T) {
	var d Declension
	assert.True(t, d.IsEmpty())
	d.Set(Genitive, Plural, "слов")
	d.Set(Instrumental, Singular, "словом")
	d.Set(Case("voct"), Singular, "x")
	assert.Equal(t, "слов", d.Get(Genitive, Plural))
	assert.Equal(t, "словом", d.Get(Instrumental, Singular))
	assert.Equal(t, "", d.Get(Genitive, Singular))
	assert.Equal(t, "", d.Get(Case("voct"), Singular))
	assert.ElementsMatch(t, []string{"слов", "словом"}, d.Forms())
	assert.False(t, d.IsEmpty())
}
