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

package common

import "math/rand"

// Randomizer provides uniform choice of an index in [0, n).
// Implementations used by HTTP handlers must be safe
// for concurrent use.
type Randomizer interface {
	Intn(n int) int
}

type globalRandomizer struct{}

func (gr globalRandomizer) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultRandomizer uses the process-wide math/rand source
// which is safe for concurrent use.
var DefaultRandomizer Randomizer = globalRandomizer{}

// ScriptedRandomizer returns predefined values (modulo n)
// in a loop. It is intended for tests.
type ScriptedRandomizer struct {
	Values []int
	pos    int
}

func (sr *ScriptedRandomizer) Intn(n int) int {
	if len(sr.Values) == 0 || n <= 0 {
		return 0
	}
	v := sr.Values[sr.pos%len(sr.Values)]
	sr.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
