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

package config

import (
	"testing"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/morph/wiktionary"
	"github.com/czcorpus/rudrill/session"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig("testdata/conf.json")
	assert.NoError(t, err)
	conf.ApplyDefaults()
	assert.NoError(t, conf.Validate())
	assert.Equal(t, 8090, conf.ServerPort)
	assert.Equal(t, logging.LogLevel("debug"), conf.Logging.Level)
	assert.Empty(t, conf.Logging.Path)
	assert.Equal(t, i18n.Russian, conf.DefaultLang())
	assert.True(t, conf.Redis.IsConfigured())
	assert.Equal(t, 3, conf.Redis.DB)
	assert.Equal(t, "drill_sid", conf.Session.CookieName)
	assert.Equal(t, session.DfltTTLSecs, conf.Session.TTLSecs)
	assert.Equal(t, 600, conf.Rounds.TTLSecs)
	assert.Equal(t, "/var/opt/rudrill/nouns.json", conf.Lexicon.NounsPath)
	assert.Equal(t, DfltSentencesPath, conf.Lexicon.SentencesPath)
	assert.Nil(t, conf.Morph.Service)
	if assert.NotNil(t, conf.Morph.Wiktionary) {
		assert.Equal(t, wiktionary.DfltBaseURL, conf.Morph.Wiktionary.BaseURL)
	}
	assert.Nil(t, conf.Reporting)
}

func TestMinimalConfig(t *testing.T) {
	conf, err := LoadConfig("testdata/minimal.json")
	assert.NoError(t, err)
	conf.ApplyDefaults()
	assert.NoError(t, conf.Validate())
	assert.Nil(t, conf.Redis)
	assert.Equal(t, i18n.English, conf.DefaultLang())
	assert.Equal(t, session.DfltCookieName, conf.Session.CookieName)
	assert.Equal(t, DfltTimeZone, conf.TimeZone)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
	_, err = LoadConfig("testdata/nonexistent.json")
	assert.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	conf := &Configuration{}
	conf.ApplyDefaults()
	conf.DefaultLanguage = "de"
	assert.Error(t, conf.Validate())

	conf = &Configuration{}
	conf.ApplyDefaults()
	conf.TimeZone = "Mars/Olympus_Mons"
	assert.Error(t, conf.Validate())

	conf = &Configuration{}
	conf.ApplyDefaults()
	conf.Morph.Wiktionary = &wiktionary.Conf{}
	assert.Error(t, conf.Validate())
}
