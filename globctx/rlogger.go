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

package globctx

import (
	"net/http"
	"time"

	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/reporting"
	"github.com/rs/zerolog/log"
)

type RoundLogger struct {
	tDBWriter reporting.ReportingWriter
	tz        *time.Location
}

// Log logs an answered drill round using application logging (zerolog)
// and also by sending data to the reporting writer.
func (rl *RoundLogger) Log(
	req *http.Request,
	kind drill.Kind,
	lang i18n.Language,
	correct bool,
	procTime time.Duration,
) {
	report := &reporting.RoundReport{
		DateTime: time.Now().In(rl.tz),
		Drill:    kind,
		Lang:     lang,
		Correct:  correct,
		ProcTime: procTime.Seconds(),
	}
	rl.tDBWriter.Write(report)
	log.Info().
		Str("drill", string(kind)).
		Str("lang", string(lang)).
		Bool("correct", correct).
		Float64("procTime", report.ProcTime).
		Str("clientIP", req.RemoteAddr).
		Msg("drill round answered")
}

func NewRoundLogger(tDBWriter reporting.ReportingWriter, tz *time.Location) *RoundLogger {
	if tz == nil {
		tz = time.Local
	}
	return &RoundLogger{
		tDBWriter: tDBWriter,
		tz:        tz,
	}
}
