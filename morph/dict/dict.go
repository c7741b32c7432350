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

package dict

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/morph"
	"github.com/rs/zerolog/log"
)

//go:embed builtin.json
var builtinData []byte

// Dictionary is a read-only in-memory morphological source
// built from a list of full paradigms. Every form is indexed
// so also an inflected word can be found.
type Dictionary struct {
	paradigms []*morph.Paradigm
	index     map[string][]*morph.Paradigm
}

func (d *Dictionary) Lookup(ctx context.Context, word string) ([]*morph.Paradigm, error) {
	items := d.index[morph.NormalizeQuery(word)]
	ans := make([]*morph.Paradigm, len(items))
	copy(ans, items)
	return ans, nil
}

// Has tests whether the lemma (or any form) is present
func (d *Dictionary) Has(word string) bool {
	_, ok := d.index[morph.NormalizeQuery(word)]
	return ok
}

func (d *Dictionary) Size() int {
	return len(d.paradigms)
}

func (d *Dictionary) add(p *morph.Paradigm) {
	p.Lemma = morph.StripStress(p.Lemma)
	for _, c := range grammar.AllCases {
		for _, n := range grammar.AllNumbers {
			p.Forms.Set(c, n, morph.StripStress(p.Forms.Get(c, n)))
		}
	}
	seen := make(map[string]bool)
	keys := make([]string, 0, 13)
	if p.Lemma != "" {
		keys = append(keys, morph.NormalizeQuery(p.Lemma))
	}
	for _, f := range p.Forms.Forms() {
		keys = append(keys, morph.NormalizeQuery(f))
	}
	lemmaKey := morph.NormalizeQuery(p.NormalForm())
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if k == lemmaKey {
			d.index[k] = append([]*morph.Paradigm{p}, d.index[k]...)

		} else {
			d.index[k] = append(d.index[k], p)
		}
	}
	d.paradigms = append(d.paradigms, p)
}

func newDictionary(items []*morph.Paradigm) *Dictionary {
	ans := &Dictionary{
		paradigms: make([]*morph.Paradigm, 0, len(items)),
		index:     make(map[string][]*morph.Paradigm),
	}
	for _, item := range items {
		if item == nil || item.Forms.IsEmpty() {
			continue
		}
		ans.add(item)
	}
	return ans
}

// Parse creates a dictionary from JSON-encoded paradigms
func Parse(data []byte) (*Dictionary, error) {
	var items []*morph.Paradigm
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary data: %w", err)
	}
	return newDictionary(items), nil
}

// Builtin returns a dictionary covering the built-in noun list
func Builtin() *Dictionary {
	ans, err := Parse(builtinData)
	if err != nil {
		panic(fmt.Sprintf("invalid builtin dictionary: %s", err))
	}
	return ans
}

// Load loads a dictionary file. In case the file is not configured,
// missing or invalid, the builtin dictionary is returned.
func Load(path string) *Dictionary {
	if path == "" {
		log.Info().Msg("no dictionary file configured, using builtin dictionary")
		return Builtin()
	}
	isFile, err := fs.IsFile(path)
	if err != nil || !isFile {
		log.Warn().Err(err).Str("path", path).Msg("dictionary file not found, using builtin dictionary")
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to read dictionary, using builtin dictionary")
		return Builtin()
	}
	ans, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using builtin dictionary")
		return Builtin()
	}
	if ans.Size() == 0 {
		log.Warn().Str("path", path).Msg("empty dictionary file, using builtin dictionary")
		return Builtin()
	}
	log.Info().Str("path", path).Int("paradigms", ans.Size()).Msg("loaded morphological dictionary")
	return ans
}
