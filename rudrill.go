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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/rudrill/server"
	"github.com/rs/zerolog/log"
)

var (
	defaultConfigPath string
	version           string
	buildDate         string
	gitCommit         string
)

// determineConfigPath returns a config path passed as an argument
// or the one set at build time. An empty value means the standard
// locations are searched.
func determineConfigPath(args []string, argPos int) string {
	if argPos < len(args) && args[argPos] != "" {
		return args[argPos]
	}
	if defaultConfigPath != "" {
		fmt.Fprintf(os.Stderr, "using default config in %s\n", defaultConfigPath)
	}
	return defaultConfigPath
}

func main() {
	cmdOpts := new(server.CmdOptions)
	flag.StringVar(&cmdOpts.Host, "host", "", "Host to listen on")
	flag.IntVar(&cmdOpts.Port, "port", 0, "Port to listen on")
	flag.IntVar(&cmdOpts.ReadTimeoutSecs, "read-timeout", 0, "Server read timeout in seconds")
	flag.IntVar(&cmdOpts.WriteTimeoutSecs, "write-timeout", 0, "Server write timeout in seconds")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")
	flag.StringVar(&cmdOpts.RoundTTLStr, "round-ttl", "0", "How long an unanswered drill round stays valid (e.g. 90s, 2h, 1d)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"rudrill - Russian noun declension drills"+
				"\n\nUsage:"+
				"\n\t%s [options] start [conf.json]"+
				"\n\t%s [options] check [conf.json]"+
				"\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	action := flag.Arg(0)

	switch action {
	case "version":
		fmt.Printf("RuDrill %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
		return
	case "start":
		conf := server.FindAndLoadConfig(determineConfigPath(flag.Args(), 1), cmdOpts)
		log.Info().
			Str("version", version).
			Str("buildDate", buildDate).
			Str("last commit", gitCommit).
			Msg("Starting RuDrill")
		server.RunService(conf)
	case "check":
		conf := server.FindAndLoadConfig(determineConfigPath(flag.Args(), 1), cmdOpts)
		server.RunCheck(conf)
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}
}
