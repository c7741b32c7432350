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

package morph

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	combiningAcute = '\u0301'
	combiningGrave = '\u0300'
)

// StripStress removes stress marks used by dictionaries
// (combining acute and grave accents). Precomposed letters
// like 'ё' and 'й' survive the decomposition round trip.
func StripStress(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r == combiningAcute || r == combiningGrave {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// NormalizeQuery prepares a word for an index lookup
func NormalizeQuery(s string) string {
	return strings.ToLower(StripStress(strings.TrimSpace(s)))
}
