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
	"context"
	"time"

	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/lexicon"
	"github.com/czcorpus/rudrill/morph"
	"github.com/czcorpus/rudrill/roundcache"
	"github.com/czcorpus/rudrill/session"
)

// Context provides access to shared resources and information needed by different
// part of the application. All the resources are created once on start.
// It also fulfills context.Context interface so it can be used along with some existing
// context.
type Context struct {
	RoundLogger *RoundLogger
	Lexicon     *lexicon.Store
	Oracle      *morph.Analyzer
	Generator   *drill.Generator
	Rounds      *roundcache.Cache
	Preferences *session.Preferences
	wCtx        context.Context
}

func (gc *Context) Deadline() (deadline time.Time, ok bool) {
	return gc.wCtx.Deadline()
}

func (gc *Context) Done() <-chan struct{} {
	return gc.wCtx.Done()
}

func (gc *Context) Err() error {
	return gc.wCtx.Err()
}

func (gc *Context) Value(key any) any {
	return gc.wCtx.Value(key)
}

func NewGlobalContext(ctx context.Context) *Context {
	return &Context{wCtx: ctx}
}
