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
	"net/url"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/czcorpus/rudrill/i18n"
	"github.com/czcorpus/rudrill/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (a *Actions) Ping(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"ok": true})
}

// UI provides all the localized strings needed to render
// the application's home page and drill forms.
func (a *Actions) UI(ctx *gin.Context) {
	lang := a.language(ctx)
	t := i18n.Get(lang)
	uniresp.WriteJSONResponse(
		ctx.Writer,
		uiResponse{
			Lang:      lang,
			Languages: i18n.SupportedLanguages,
			UI:        t.UI,
			Cases:     caseOptions(t),
			Numbers:   numberOptions(t),
		},
	)
}

// sameHostReferer returns the request's Referer in case it points
// to the host the request was sent to
func sameHostReferer(req *http.Request) (string, bool) {
	referer := req.Referer()
	if referer == "" {
		return "", false
	}
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" || u.Host != req.Host {
		return "", false
	}
	return referer, true
}

// SetLanguage changes the session language. Unsupported languages
// are ignored. If the request has a referrer on the same host,
// the client is redirected back there.
func (a *Actions) SetLanguage(ctx *gin.Context) {
	sid := session.FromContext(ctx)
	changed, err := a.globalCtx.Preferences.SetLanguage(
		ctx.Request.Context(), sid, ctx.Param("lang"))
	if err != nil {
		log.Error().Err(err).Str("session", sid.String()).Msg("failed to store language preference")
	}
	if referer, ok := sameHostReferer(ctx.Request); ok {
		ctx.Redirect(http.StatusFound, referer)
		return
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		languageResponse{
			Lang:    a.language(ctx),
			Changed: changed,
		},
	)
}
