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
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/rudrill/actions"
	"github.com/czcorpus/rudrill/common"
	"github.com/czcorpus/rudrill/config"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/globctx"
	"github.com/czcorpus/rudrill/lexicon"
	"github.com/czcorpus/rudrill/morph"
	"github.com/czcorpus/rudrill/morph/cache"
	"github.com/czcorpus/rudrill/morph/dict"
	"github.com/czcorpus/rudrill/morph/service"
	"github.com/czcorpus/rudrill/morph/wiktionary"
	"github.com/czcorpus/rudrill/reporting"
	"github.com/czcorpus/rudrill/roundcache"
	"github.com/czcorpus/rudrill/session"
	"github.com/czcorpus/rudrill/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const redisPingTimeout = 5 * time.Second

type kvStore interface {
	storage.KVStore
	Close() error
}

type memStoreCloser struct {
	*storage.MemoryStore
}

func (ms memStoreCloser) Close() error {
	return nil
}

// createKVStore opens a Redis store if configured. Otherwise,
// an in-memory store with periodic cleanup is used.
func createKVStore(ctx context.Context, conf *config.Configuration) (kvStore, error) {
	if conf.Redis.IsConfigured() {
		store := storage.NewRedisStore(conf.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", conf.Redis.Addr, err)
		}
		log.Info().Msgf("using Redis storage (addr: %s, db: %d)", conf.Redis.Addr, conf.Redis.DB)
		return store, nil
	}
	store := storage.NewMemoryStore()
	go store.RunCleanup(ctx, conf.MemCleanupInterval())
	log.Warn().Msg("Redis not configured, using in-memory storage")
	return memStoreCloser{store}, nil
}

func wrapWithCache(src morph.Source, store storage.KVStore, conf *config.Configuration) morph.Source {
	if conf.Morph.Cache == nil {
		return src
	}
	return cache.NewCachedSource(src, store, conf.Morph.Cache)
}

// createOracle creates the morphological analyzer. The dictionary
// is always the first source, remote sources follow.
func createOracle(conf *config.Configuration, store storage.KVStore) *morph.Analyzer {
	ans := morph.NewAnalyzer()
	dictionary := dict.Load(conf.Morph.DictionaryPath)
	ans.AddSource("dictionary", dictionary)
	log.Info().Int("paradigms", dictionary.Size()).Msg("loaded paradigm dictionary")
	if conf.Morph.Service != nil {
		ans.AddSource(
			"service",
			wrapWithCache(service.NewClient(conf.Morph.Service), store, conf),
		)
	}
	if conf.Morph.Wiktionary != nil {
		ans.AddSource(
			"wiktionary",
			wrapWithCache(wiktionary.NewClient(conf.Morph.Wiktionary), store, conf),
		)
	}
	return ans
}

func CreateReportingWriter(ctx context.Context, conf *config.Configuration) reporting.ReportingWriter {
	ans, err := reporting.NewWriter(ctx, conf.Reporting, conf.TimezoneLocation())
	if err != nil {
		log.Error().Err(err).Msg("failed to create reporting writer, falling back to NullWriter")
		ans = &reporting.NullWriter{}
		ans.AddTableWriter(reporting.RoundsTable)
	}
	return ans
}

func CreateGlobalCtx(
	ctx context.Context,
	conf *config.Configuration,
	store storage.KVStore,
	tDBWriter reporting.ReportingWriter,
) *globctx.Context {
	ans := globctx.NewGlobalContext(ctx)
	ans.RoundLogger = globctx.NewRoundLogger(tDBWriter, conf.TimezoneLocation())
	ans.Lexicon = lexicon.Load(
		conf.Lexicon.NounsPath, conf.Lexicon.SentencesPath, common.DefaultRandomizer)
	ans.Oracle = createOracle(conf, store)
	ans.Generator = drill.NewGenerator(ans.Oracle, ans.Lexicon, common.DefaultRandomizer)
	ans.Rounds = roundcache.NewCache(store, &conf.Rounds)
	ans.Preferences = session.NewPreferences(
		session.NewKVStore(store, &conf.Session),
		conf.DefaultLang(),
	)
	return ans
}

func initEngine(conf *config.Configuration, globalCtx *globctx.Context) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(session.Middleware(&conf.Session))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	drillActions := actions.NewActions(globalCtx)
	routes := engine.Group("/")
	routes.Use(uniresp.AlwaysJSONContentType())

	routes.GET("/ping", drillActions.Ping)
	routes.GET("/ui", drillActions.UI)
	routes.GET("/language/:lang", drillActions.SetLanguage)

	routes.GET("/drill/forward", drillActions.ForwardRound)
	routes.POST("/drill/forward", drillActions.ForwardAnswer)
	routes.GET("/drill/backward", drillActions.BackwardRound)
	routes.POST("/drill/backward", drillActions.BackwardAnswer)
	routes.GET("/drill/insert", drillActions.InsertRound)
	routes.POST("/drill/insert", drillActions.InsertAnswer)
	return engine
}

func RunService(conf *config.Configuration) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := createKVStore(ctx, conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %s", err)
		os.Exit(1)
	}
	tDBWriter := CreateReportingWriter(ctx, conf)
	globalCtx := CreateGlobalCtx(ctx, conf, store, tDBWriter)
	engine := initEngine(conf, globalCtx)

	log.Info().Msgf("starting to listen at %s:%d", conf.ServerHost, conf.ServerPort)
	srv := &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", conf.ServerHost, conf.ServerPort),
		WriteTimeout: time.Duration(conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ServerReadTimeoutSecs) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-globalCtx.Done()
	log.Warn().Msg("received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("storage shutdown error")
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
