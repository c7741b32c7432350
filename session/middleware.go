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

package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ctxKey = "rudrillSessionID"

// Middleware makes sure each request has a session ID. A missing
// or malformed cookie is replaced by a new one.
func Middleware(conf *Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var sid ID
		if cookie, err := ctx.Request.Cookie(conf.CookieName); err == nil {
			sid = sid.UpdatedFrom(cookie.Value)
		}
		if sid.IsZero() {
			sid = NewID()
			http.SetCookie(ctx.Writer, &http.Cookie{
				Name:     conf.CookieName,
				Value:    sid.String(),
				Path:     "/",
				MaxAge:   conf.TTLSecs,
				HttpOnly: true,
				Secure:   conf.SecureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx.Set(ctxKey, sid)
		ctx.Next()
	}
}

// FromContext returns a session ID stored by Middleware.
// Without the middleware, a zero ID is returned.
func FromContext(ctx *gin.Context) ID {
	v, ok := ctx.Get(ctxKey)
	if !ok {
		return ID{}
	}
	sid, ok := v.(ID)
	if !ok {
		return ID{}
	}
	return sid
}
