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

package reporting

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/hltscl"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/i18n"
)

const RoundsTable = "rudrill_rounds"

// RoundReport describes a single answered drill round
type RoundReport struct {
	DateTime time.Time
	Drill    drill.Kind
	Lang     i18n.Language
	Correct  bool

	// ProcTime is a verification processing time in seconds
	ProcTime float64
}

func (report *RoundReport) ToTimescaleDB(tableWriter *hltscl.TableWriter) *hltscl.Entry {
	var correct int
	if report.Correct {
		correct = 1
	}
	return tableWriter.NewEntry(report.DateTime).
		Str("drill", string(report.Drill)).
		Str("lang", string(report.Lang)).
		Int("correct", correct).
		Float("proc_time", report.ProcTime)
}

func (report *RoundReport) GetTime() time.Time {
	return report.DateTime
}

func (report *RoundReport) GetTableName() string {
	return RoundsTable
}

func (report *RoundReport) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		DateTime time.Time `json:"dateTime"`
		Drill    string    `json:"drill"`
		Lang     string    `json:"lang"`
		Correct  bool      `json:"correct"`
		ProcTime float64   `json:"procTime"`
	}{
		DateTime: report.DateTime,
		Drill:    string(report.Drill),
		Lang:     string(report.Lang),
		Correct:  report.Correct,
		ProcTime: report.ProcTime,
	})
}
