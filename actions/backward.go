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

package actions

import (
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/gin-gonic/gin"
)

func (a *Actions) newBackwardRound(ctx *gin.Context, lang i18n.Language) (backwardRound, bool) {
	q := a.globalCtx.Generator.Backward(ctx.Request.Context())
	roundID, ok := a.storeRound(ctx, q)
	if !ok {
		return backwardRound{}, false
	}
	t := i18n.Get(lang)
	return backwardRound{
		RoundID:       roundID,
		Lang:          lang,
		Word:          q.Backward.Word,
		CaseOptions:   caseOptions(t),
		NumberOptions: numberOptions(t),
	}, true
}

func (a *Actions) BackwardRound(ctx *gin.Context) {
	ans, ok := a.newBackwardRound(ctx, a.language(ctx))
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// BackwardAnswer verifies user's identification of case and number
// and starts a new round.
func (a *Actions) BackwardAnswer(ctx *gin.Context) {
	t0 := time.Now()
	var args backwardAnswer
	if !a.bindAnswer(ctx, &args) {
		return
	}
	q, ok := a.loadRound(ctx, args.RoundID, drill.KindBackward)
	if !ok {
		return
	}
	lang := a.language(ctx)
	feedback := drill.VerifyGrammar(
		grammar.Case(args.Case),
		grammar.Number(args.Number),
		q.Backward.Case,
		q.Backward.Number,
		lang,
	)
	a.globalCtx.RoundLogger.Log(ctx.Request, drill.KindBackward, lang, feedback.Correct, time.Since(t0))

	next, ok := a.newBackwardRound(ctx, lang)
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		verificationResponse{
			Feedback: feedback,
			Answer:   drill.GrammarLabel(grammar.Case(args.Case), grammar.Number(args.Number), lang),
			Next:     next,
		},
	)
}
