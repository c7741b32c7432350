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

// Package actions contains HTTP handlers of the drill API
package actions

import (
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/globctx"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/roundcache"
	"github.com/czcorpus/rudrill/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Actions struct {
	globalCtx *globctx.Context
}

func (a *Actions) language(ctx *gin.Context) i18n.Language {
	return a.globalCtx.Preferences.Language(ctx.Request.Context(), session.FromContext(ctx))
}

func (a *Actions) storeRound(ctx *gin.Context, q drill.Question) (string, bool) {
	roundID, err := a.globalCtx.Rounds.Put(ctx.Request.Context(), q)
	if err != nil {
		log.Error().Err(err).Str("drill", string(q.Kind)).Msg("failed to store drill round")
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to create drill round"),
			http.StatusInternalServerError,
		)
		return "", false
	}
	return roundID, true
}

// loadRound finds an active round of the required kind. In case
// of a failure, an error response is written and false is returned.
// A round of a different kind is treated as unknown.
func (a *Actions) loadRound(ctx *gin.Context, roundID string, kind drill.Kind) (drill.Question, bool) {
	q, err := a.globalCtx.Rounds.Get(ctx.Request.Context(), roundID)
	if errors.Is(err, roundcache.ErrRoundNotFound) || (err == nil && q.Kind != kind) {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("drill round not found or expired"),
			http.StatusNotFound,
		)
		return drill.Question{}, false

	} else if err != nil {
		log.Error().Err(err).Str("roundId", roundID).Msg("failed to load drill round")
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("failed to load drill round"),
			http.StatusInternalServerError,
		)
		return drill.Question{}, false
	}
	return q, true
}

func (a *Actions) bindAnswer(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			http.StatusBadRequest,
		)
		return false
	}
	return true
}

func NewActions(globalCtx *globctx.Context) *Actions {
	return &Actions{globalCtx: globalCtx}
}
