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

package session

import (
	"github.com/google/uuid"
)

// ID identifies a client session. It is transferred
// via a cookie.
type ID struct {
	Value uuid.UUID
}

func (sid ID) String() string {
	if sid.IsZero() {
		return ""
	}
	return sid.Value.String()
}

func (sid ID) IsZero() bool {
	return sid.Value == uuid.Nil
}

// UpdatedFrom creates a new ID from a raw cookie value.
// For an invalid value, a zero ID is returned.
func (sid ID) UpdatedFrom(v string) ID {
	parsed, err := uuid.Parse(v)
	if err != nil {
		return ID{}
	}
	return ID{Value: parsed}
}

func NewID() ID {
	return ID{Value: uuid.New()}
}
