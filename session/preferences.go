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
	"context"

	"github.com/czcorpus/rudrill/i18n"
	"github.com/rs/zerolog/log"
)

const languageKey = "lang"

// Preferences provides typed access to user's settings
type Preferences struct {
	store       Store
	defaultLang i18n.Language
}

// Language returns the active language of the session.
// In case nothing is stored (or the storage fails), the default
// language is returned.
func (p *Preferences) Language(ctx context.Context, sid ID) i18n.Language {
	v, ok, err := p.store.Get(ctx, sid, languageKey)
	if err != nil {
		log.Error().Err(err).Str("session", sid.String()).Msg("failed to read language preference")
		return p.defaultLang
	}
	if !ok {
		return p.defaultLang
	}
	lang, ok := i18n.ParseLanguage(v)
	if !ok {
		return p.defaultLang
	}
	return lang
}

// SetLanguage stores a new language. An unsupported language code
// is ignored and the previous value stays unchanged. The returned
// value tells whether the preference has been changed.
func (p *Preferences) SetLanguage(ctx context.Context, sid ID, code string) (bool, error) {
	lang, ok := i18n.ParseLanguage(code)
	if !ok {
		return false, nil
	}
	if err := p.store.Set(ctx, sid, languageKey, string(lang)); err != nil {
		return false, err
	}
	return true, nil
}

func NewPreferences(store Store, defaultLang i18n.Language) *Preferences {
	if _, ok := i18n.ParseLanguage(string(defaultLang)); !ok {
		defaultLang = i18n.DefaultLanguage
	}
	return &Preferences{
		store:       store,
		defaultLang: defaultLang,
	}
}
