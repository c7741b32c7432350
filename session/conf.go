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
	"fmt"
	"time"
)

const (
	DfltCookieName = "rudrill_session"
	DfltTTLSecs    = 30 * 24 * 3600
)

type Conf struct {
	CookieName   string `json:"cookieName"`
	TTLSecs      int    `json:"ttlSecs"`
	SecureCookie bool   `json:"secureCookie"`
}

func (c *Conf) Validate(context string) error {
	if c.TTLSecs < 0 {
		return fmt.Errorf("%s.ttlSecs cannot be negative", context)
	}
	return nil
}

func (c *Conf) ApplyDefaults() {
	if c.CookieName == "" {
		c.CookieName = DfltCookieName
	}
	if c.TTLSecs == 0 {
		c.TTLSecs = DfltTTLSecs
	}
}

func (c *Conf) TTL() time.Duration {
	return time.Duration(c.TTLSecs) * time.Second
}
