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
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/morph/cache"
	"github.com/czcorpus/rudrill/morph/service"
	"github.com/czcorpus/rudrill/morph/wiktionary"
	"github.com/czcorpus/rudrill/reporting"
	"github.com/czcorpus/rudrill/roundcache"
	"github.com/czcorpus/rudrill/session"
	"github.com/czcorpus/rudrill/storage"
	"github.com/rs/zerolog/log"
)

const (
	DfltServerReadTimeoutSecs  = 10
	DfltServerWriteTimeoutSecs = 30
	DftlServerPort             = 8080
	DfltServerHost             = "localhost"
	DfltTimeZone               = "Europe/Prague"
	DfltLogLevel               = "info"
	DfltMemCleanupIntervalSecs = 300
	DfltNounsPath              = "data/nouns.json"
	DfltSentencesPath          = "data/sentences.json"
)

type LexiconSection struct {
	NounsPath     string `json:"nounsPath"`
	SentencesPath string `json:"sentencesPath"`
}

// MorphSection configures sources of the morphological oracle.
// The dictionary is always used first, the service and
// Wiktionary (if configured) are used as fallbacks in this order.
type MorphSection struct {
	DictionaryPath string           `json:"dictionaryPath"`
	Cache          *cache.Conf      `json:"cache"`
	Service        *service.Conf    `json:"service"`
	Wiktionary     *wiktionary.Conf `json:"wiktionary"`
}

func (m *MorphSection) validate(context string) error {
	if m.Service != nil {
		if err := m.Service.Validate(context + ".service"); err != nil {
			return err
		}
		log.Info().Str("url", m.Service.BaseURL).Msg("morphology service enabled")
	}
	if m.Wiktionary != nil {
		if err := m.Wiktionary.Validate(context + ".wiktionary"); err != nil {
			return err
		}
		log.Info().Msg("Wiktionary source enabled")
	}
	return nil
}

type Configuration struct {
	ServerHost             string              `json:"serverHost"`
	ServerPort             int                 `json:"serverPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	TimeZone               string              `json:"timeZone"`
	Logging                logging.LoggingConf `json:"logging"`
	DefaultLanguage        string              `json:"defaultLanguage"`
	Redis                  *storage.Conf       `json:"redis"`
	MemCleanupIntervalSecs int                 `json:"memCleanupIntervalSecs"`
	Session                session.Conf        `json:"session"`
	Rounds                 roundcache.Conf     `json:"rounds"`
	Lexicon                LexiconSection      `json:"lexicon"`
	Morph                  MorphSection        `json:"morph"`
	Reporting              *reporting.Conf     `json:"reporting"`
}

func (c *Configuration) Validate() error {
	var err error
	if c.Redis != nil {
		if err = c.Redis.Validate("redis"); err != nil {
			return err
		}
	}
	if err = c.Session.Validate("session"); err != nil {
		return err
	}
	if err = c.Rounds.Validate("rounds"); err != nil {
		return err
	}
	if err = c.Morph.validate("morph"); err != nil {
		return err
	}
	if _, ok := i18n.ParseLanguage(c.DefaultLanguage); !ok {
		return fmt.Errorf("unsupported defaultLanguage `%s`", c.DefaultLanguage)
	}
	if c.MemCleanupIntervalSecs < 0 {
		return fmt.Errorf("memCleanupIntervalSecs cannot be negative")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return err
	}
	return nil
}

func (c *Configuration) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call c.Validate()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(c.TimeZone)
	return loc
}

func (c *Configuration) DefaultLang() i18n.Language {
	lang, ok := i18n.ParseLanguage(c.DefaultLanguage)
	if !ok {
		return i18n.DefaultLanguage
	}
	return lang
}

func (c *Configuration) MemCleanupInterval() time.Duration {
	return time.Duration(c.MemCleanupIntervalSecs) * time.Second
}

// ApplyDefaults sets default values for optional items
// not configurable via command line.
func (c *Configuration) ApplyDefaults() {
	if c.TimeZone == "" {
		c.TimeZone = DfltTimeZone
		log.Warn().Msgf("timeZone not specified, using default: %s", c.TimeZone)
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = string(i18n.DefaultLanguage)
	}
	if c.MemCleanupIntervalSecs == 0 {
		c.MemCleanupIntervalSecs = DfltMemCleanupIntervalSecs
	}
	if c.Lexicon.NounsPath == "" {
		c.Lexicon.NounsPath = DfltNounsPath
		log.Warn().Msgf("lexicon.nounsPath not specified, using default: %s", c.Lexicon.NounsPath)
	}
	if c.Lexicon.SentencesPath == "" {
		c.Lexicon.SentencesPath = DfltSentencesPath
		log.Warn().Msgf("lexicon.sentencesPath not specified, using default: %s", c.Lexicon.SentencesPath)
	}
	c.Session.ApplyDefaults()
	if c.Morph.Service != nil {
		c.Morph.Service.ApplyDefaults()
	}
	if c.Morph.Wiktionary != nil {
		c.Morph.Wiktionary.ApplyDefaults()
	}
}

func LoadConfig(path string) (*Configuration, error) {
	if path == "" {
		return nil, fmt.Errorf("cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	var conf Configuration
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	return &conf, nil
}
