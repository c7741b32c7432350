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
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/datetime"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/rudrill/config"
	"github.com/czcorpus/rudrill/roundcache"
	"github.com/rs/zerolog/log"
)

type CmdOptions struct {
	Host             string
	Port             int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	LogPath          string
	LogLevel         string
	RoundTTLStr      string
}

func (opts CmdOptions) RoundTTL() (time.Duration, error) {
	// we test for '0' as the parser below does not like
	// numbers without suffix ('d', 'h', 's', ...)
	if opts.RoundTTLStr == "" || opts.RoundTTLStr == "0" {
		return 0, nil
	}
	return datetime.ParseDuration(opts.RoundTTLStr)
}

// applyLoggingOptions merges logging settings from the command line
// into the configuration. It must be called before the logging is set up.
func applyLoggingOptions(conf *config.Configuration, cmdOpts *CmdOptions) {
	if cmdOpts.LogLevel != "" {
		conf.Logging.Level = logging.LogLevel(cmdOpts.LogLevel)

	} else if conf.Logging.Level == "" {
		conf.Logging.Level = config.DfltLogLevel
	}
	if cmdOpts.LogPath != "" {
		conf.Logging.Path = cmdOpts.LogPath
	}
}

func defaultSearchPaths() []string {
	_, srcFile, _, _ := runtime.Caller(0)
	return []string{
		path.Join(path.Dir(path.Dir(srcFile)), "conf.json"),
		"/usr/local/etc/rudrill/conf.json",
		"/usr/local/etc/rudrill.json",
	}
}

func loadConfig(path string) *config.Configuration {
	conf, err := config.LoadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	return conf
}

func FindAndLoadConfig(explicitPath string, cmdOpts *CmdOptions) *config.Configuration {
	var conf *config.Configuration
	if explicitPath != "" {
		conf = loadConfig(explicitPath)

	} else {
		srchPaths := defaultSearchPaths()
		for _, path := range srchPaths {
			isFile, err := fs.IsFile(path)
			if err != nil {
				log.Fatal().Msgf(
					"error when searching for a suitable configuration file (searched in: %s): %s",
					strings.Join(srchPaths, ", "),
					err,
				)
			}
			if isFile {
				conf = loadConfig(path)
				explicitPath = path
				break
			}
		}
		if conf == nil {
			log.Fatal().Msgf("cannot find any suitable configuration file (searched in: %s)", strings.Join(srchPaths, ", "))
		}
	}
	applyLoggingOptions(conf, cmdOpts)
	logging.SetupLogging(conf.Logging)
	log.Info().Msgf("loaded configuration from %s", explicitPath)
	log.Info().Msgf("using logging level '%s'", conf.Logging.Level)
	if conf.Logging.Path == "" {
		log.Warn().Msg("logging.path not specified, using stderr")
	}
	conf.ApplyDefaults()
	if err := overrideConfWithCmd(conf, cmdOpts); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize configuration")
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	return conf
}

func overrideConfWithCmd(origConf *config.Configuration, cmdConf *CmdOptions) error {
	if cmdConf.Host != "" {
		origConf.ServerHost = cmdConf.Host

	} else if origConf.ServerHost == "" {
		log.Warn().Msgf(
			"serverHost not specified, using default value %s",
			config.DfltServerHost,
		)
		origConf.ServerHost = config.DfltServerHost
	}
	if cmdConf.Port != 0 {
		origConf.ServerPort = cmdConf.Port

	} else if origConf.ServerPort == 0 {
		log.Warn().Msgf(
			"serverPort not specified, using default value %d",
			config.DftlServerPort,
		)
		origConf.ServerPort = config.DftlServerPort
	}
	if cmdConf.ReadTimeoutSecs != 0 {
		origConf.ServerReadTimeoutSecs = cmdConf.ReadTimeoutSecs

	} else if origConf.ServerReadTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default value %d",
			config.DfltServerReadTimeoutSecs,
		)
		origConf.ServerReadTimeoutSecs = config.DfltServerReadTimeoutSecs
	}
	if cmdConf.WriteTimeoutSecs != 0 {
		origConf.ServerWriteTimeoutSecs = cmdConf.WriteTimeoutSecs

	} else if origConf.ServerWriteTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default value %d",
			config.DfltServerWriteTimeoutSecs,
		)
		origConf.ServerWriteTimeoutSecs = config.DfltServerWriteTimeoutSecs
	}
	roundTTL, err := cmdConf.RoundTTL()
	if err != nil {
		return err
	}
	if roundTTL > 0 {
		origConf.Rounds.TTLSecs = int(roundTTL.Seconds())

	} else if origConf.Rounds.TTLSecs == 0 {
		log.Warn().Msgf(
			"rounds.ttlSecs not specified, using default value %d",
			roundcache.DfltTTLSecs,
		)
	}
	return nil
}
