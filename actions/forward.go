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
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/rudrill/drill"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/gin-gonic/gin"
)

func (a *Actions) newForwardRound(ctx *gin.Context, lang i18n.Language, rawCases, rawNumbers []string) (forwardRound, bool) {
	cases := grammar.ParseCases(rawCases)
	if len(cases) == 0 {
		cases = drill.DefaultCases
	}
	numbers := grammar.ParseNumbers(rawNumbers)
	if len(numbers) == 0 {
		numbers = drill.DefaultNumbers
	}
	q := a.globalCtx.Generator.Forward(ctx.Request.Context(), cases, numbers)
	roundID, ok := a.storeRound(ctx, q)
	if !ok {
		return forwardRound{}, false
	}
	t := i18n.Get(lang)
	return forwardRound{
		RoundID:         roundID,
		Lang:            lang,
		Noun:            q.Forward.Noun,
		Case:            q.Forward.Case,
		CaseName:        t.CaseName(q.Forward.Case),
		Number:          q.Forward.Number,
		NumberName:      t.NumberName(q.Forward.Number),
		SelectedCases:   cases,
		SelectedNumbers: numbers,
		CaseOptions:     caseOptions(t),
		NumberOptions:   numberOptions(t),
	}, true
}

// ForwardRound starts a new forward drill round. Cases and numbers
// to choose from can be specified via repeated `case` and `number`
// URL arguments.
func (a *Actions) ForwardRound(ctx *gin.Context) {
	if err := unireq.CheckSuperfluousURLArgs(ctx.Request, []string{"case", "number"}); err != nil {
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusBadRequest)
		return
	}
	lang := a.language(ctx)
	ans, ok := a.newForwardRound(ctx, lang, ctx.QueryArray("case"), ctx.QueryArray("number"))
	if !ok {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// ForwardAnswer verifies an answer of a forward drill round
// and starts a new round.
func (a *Actions) ForwardAnswer(ctx *gin.Context) {
	t0 := time.Now()
	var args forwardAnswer
	if !a.bindAnswer(ctx, &args) {
		return
	}
	q, ok := a.loadRound(ctx, args.RoundID, drill.KindForward)
	if !ok {
		return
	}
	lang := a.language(ctx)
	feedback := drill.VerifySubmission(args.Answer, q.Forward.Expected, lang)
	a.globalCtx.RoundLogger.Log(ctx.Request, drill.KindForward, lang, feedback.Correct, time.Since(t0))

	next, ok := a.newForwardRound(ctx, lang, args.Cases, args.Numbers)
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
