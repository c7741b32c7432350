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
	"context"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const writeTimeout = 10 * time.Second

type table struct {
	writer    *hltscl.TableWriter
	opsDataCh chan<- hltscl.Entry
	errCh     <-chan hltscl.WriteError
}

// TimescaleDBWriter writes records asynchronously to TimescaleDB
// tables. All the tables must be added before the writer is used.
type TimescaleDBWriter struct {
	ctx    context.Context
	tz     *time.Location
	conn   *pgxpool.Pool
	tables map[string]*table
}

func (sw *TimescaleDBWriter) LogErrors() {
	for name, tbl := range sw.tables {
		go func(name string, tbl *table) {
			for {
				select {
				case <-sw.ctx.Done():
					log.Info().Str("table", name).Msg("closing TimescaleDB table writer")
					return
				case err, ok := <-tbl.errCh:
					if !ok {
						return
					}
					log.Error().
						Err(err.Err).
						Str("table", name).
						Str("entry", err.Entry.String()).
						Msg("error writing data to TimescaleDB")
				}
			}
		}(name, tbl)
	}
}

func (sw *TimescaleDBWriter) Write(item Timescalable) {
	tbl, ok := sw.tables[item.GetTableName()]
	if !ok {
		log.Warn().Str("table", item.GetTableName()).Msg("undefined table name in writer")
		return
	}
	select {
	case tbl.opsDataCh <- *item.ToTimescaleDB(tbl.writer):
	case <-sw.ctx.Done():
		log.Warn().Str("table", item.GetTableName()).Msg("writer closed, record dropped")
	}
}

func (sw *TimescaleDBWriter) AddTableWriter(tableName string) {
	twriter := hltscl.NewTableWriter(sw.conn, tableName, "time", sw.tz)
	opsDataCh, errCh := twriter.Activate(sw.ctx, hltscl.WithTimeout(writeTimeout))
	sw.tables[tableName] = &table{
		writer:    twriter,
		opsDataCh: opsDataCh,
		errCh:     errCh,
	}
}

func NewReportingWriter(ctx context.Context, conn *pgxpool.Pool, tz *time.Location) *TimescaleDBWriter {
	return &TimescaleDBWriter{
		ctx:    ctx,
		tz:     tz,
		conn:   conn,
		tables: make(map[string]*table),
	}
}

// NewWriter creates a TimescaleDB writer for a configured database
// or a NullWriter otherwise. The rounds table is added
// in both cases.
func NewWriter(ctx context.Context, conf *Conf, tz *time.Location) (ReportingWriter, error) {
	var ans ReportingWriter
	if conf != nil {
		conn, err := hltscl.CreatePool(conf.DB)
		if err != nil {
			return nil, err
		}
		ans = NewReportingWriter(ctx, conn, tz)

	} else {
		ans = &NullWriter{}
	}
	ans.AddTableWriter(RoundsTable)
	ans.LogErrors()
	return ans, nil
}
