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
	"github.com/czcorpus/rudrill/i18n"
	"github.com/gin-gonic/gin"
)

func (a *Actions) newInsertRound(ctx *gin.Context, lang i18n.Language) (insertRound, bool) {
	q, ok := a.globalCtx.Generator.Insert(ctx.Request.Context())
	if !ok {
		return insertRound{
			Lang:     lang,
			Sentence: i18n.Get(lang).NoSentencesMessage(),
			NoData:   true,
		}, true
	}
	roundID, ok := a.storeRound(ctx, q)
	if !ok {
		return insertRound{}, false
	}
	return insertRound{
		RoundID:    roundID,
		Lang:       lang,
		Sentence:   q.Insert.Sentence,
		NormalForm: q.Insert.NormalForm,
	}, true
}

func (a *Actions) InsertRound(ctx *gin.Context) {
	ans, ok := a.newInsertRound(ctx, a.language(ctx))
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) InsertAnswer(ctx *gin.Context) {
	t0 := time.Now()
	var args insertAnswer
	if !a.bindAnswer(ctx, &args) {
		return
	}
	q, ok := a.loadRound(ctx, args.RoundID, drill.KindInsert)
	if !ok {
		return
	}
	lang := a.language(ctx)
	feedback := drill.VerifySubmission(args.Answer, q.Insert.Expected, lang)
	a.globalCtx.RoundLogger.Log(ctx.Request, drill.KindInsert, lang, feedback.Correct, time.Since(t0))

	next, ok := a.newInsertRound(ctx, lang)
	if !ok {
		return
	}
	var answer string
	if args.Answer != nil {
		answer = *args.Answer
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		verificationResponse{
			Feedback: feedback,
			Answer:   answer,
			Next:     next,
		},
	)
}
