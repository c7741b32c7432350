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

package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/rudrill/config"
	"github.com/czcorpus/rudrill/morph"
	"github.com/czcorpus/rudrill/morph/dict"
	"github.com/czcorpus/rudrill/reporting"
	"github.com/czcorpus/rudrill/storage"
	"github.com/stretchr/testify/assert"
)

func TestRoundTTLOption(t *testing.T) {
	opts := CmdOptions{}
	v, err := opts.RoundTTL()
	assert.NoError(t, err)
	assert.Zero(t, v)

	opts.RoundTTLStr = "2h"
	v, err = opts.RoundTTL()
	assert.NoError(t, err)
	assert.Equal(t, 7200.0, v.Seconds())

	opts.RoundTTLStr = "foo"
	_, err = opts.RoundTTL()
	assert.Error(t, err)
}

func TestOverrideConfWithCmd(t *testing.T) {
	conf := &config.Configuration{ServerPort: 9000}
	err := overrideConfWithCmd(conf, &CmdOptions{Host: "0.0.0.0", RoundTTLStr: "90s"})
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", conf.ServerHost)
	assert.Equal(t, 9000, conf.ServerPort)
	assert.Equal(t, config.DfltServerReadTimeoutSecs, conf.ServerReadTimeoutSecs)
	assert.Equal(t, config.DfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, 90, conf.Rounds.TTLSecs)
}

func TestApplyLoggingOptions(t *testing.T) {
	conf := &config.Configuration{}
	applyLoggingOptions(conf, &CmdOptions{})
	assert.Equal(t, logging.LogLevel(config.DfltLogLevel), conf.Logging.Level)
	assert.Empty(t, conf.Logging.Path)

	conf = &config.Configuration{Logging: logging.LoggingConf{Level: "warn", Path: "/var/log/rudrill.log"}}
	applyLoggingOptions(conf, &CmdOptions{})
	assert.Equal(t, logging.LogLevel("warn"), conf.Logging.Level)
	assert.Equal(t, "/var/log/rudrill.log", conf.Logging.Path)

	applyLoggingOptions(conf, &CmdOptions{LogLevel: "debug", LogPath: "/tmp/rudrill.log"})
	assert.Equal(t, logging.LogLevel("debug"), conf.Logging.Level)
	assert.Equal(t, "/tmp/rudrill.log", conf.Logging.Path)
}

func TestOverrideConfWithCmdInvalidTTL(t *testing.T) {
	conf := &config.Configuration{}
	assert.Error(t, overrideConfWithCmd(conf, &CmdOptions{RoundTTLStr: "x"}))
}

func TestCreateOracleDictionaryOnly(t *testing.T) {
	conf := &config.Configuration{}
	oracle := createOracle(conf, storage.NewMemoryStore())
	assert.Equal(t, 1, oracle.NumSources())
	v, ok := morph.Inflect(context.Background(), oracle, "слово", "gent", "plur")
	assert.True(t, ok)
	assert.Equal(t, "слов", v)
}

func TestUncoveredNouns(t *testing.T) {
	oracle := morph.NewAnalyzer()
	oracle.AddSource("dictionary", dict.Builtin())
	ans := uncoveredNouns(context.Background(), oracle, []string{"слово", "абракадабра"})
	assert.NotContains(t, ans, "слово")
	assert.Len(t, ans["абракадабра"], 12)
	assert.Contains(t, ans["абракадабра"], "gent/plur")
}

func TestCheckReportUsesGlobalCtx(t *testing.T) {
	conf := &config.Configuration{
		Lexicon: config.LexiconSection{
			NounsPath:     "../data/nouns.json",
			SentencesPath: "../data/sentences.json",
		},
	}
	conf.ApplyDefaults()
	globalCtx := CreateGlobalCtx(
		context.Background(), conf, storage.NewMemoryStore(), &reporting.NullWriter{})
	assert.Equal(t, 1, globalCtx.Oracle.NumSources())

	var buf bytes.Buffer
	writeCheckReport(&buf, globalCtx)
	assert.Contains(t, buf.String(), "Oracle sources: 1")
	assert.Contains(t, buf.String(), "Nouns: ")
	assert.Contains(t, buf.String(), "(cases: ")
}

func TestCreateKVStoreWithoutRedis(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conf := &config.Configuration{MemCleanupIntervalSecs: 60}
	store, err := createKVStore(ctx, conf)
	assert.NoError(t, err)
	_, ok := store.(memStoreCloser)
	assert.True(t, ok)
	assert.NoError(t, store.Close())
}
