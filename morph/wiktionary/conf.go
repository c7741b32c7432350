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
	"fmt"
)

const (
	DfltBaseURL     = "https://ru.wiktionary.org"
	dfltReqPerSec   = 1.0
	dfltTimeoutSecs = 10
)

type Conf struct {
	BaseURL         string  `json:"baseURL"`
	ClientUserAgent string  `json:"clientUserAgent"`
	ReqPerSec       float64 `json:"reqPerSec"`
	TimeoutSecs     int     `json:"timeoutSecs"`
}

func (c *Conf) Validate(context string) error {
	if c.ClientUserAgent == "" {
		return fmt.Errorf("%s.clientUserAgent is missing/empty", context)
	}
	if c.ReqPerSec < 0 {
		return fmt.Errorf("%s.reqPerSec cannot be negative", context)
	}
	return nil
}

func (c *Conf) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DfltBaseURL
	}
	if c.ReqPerSec == 0 {
		c.ReqPerSec = dfltReqPerSec
	}
	if c.TimeoutSecs == 0 {
		c.TimeoutSecs = dfltTimeoutSecs
	}
}
