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

package lexicon

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/rudrill/common"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/rs/zerolog/log"
)

type nounsFile struct {
	TopNouns []string `json:"top_nouns"`
}

type sentencesFile struct {
	InsertSentences map[string][]FillSentence `json:"insert_sentences"`
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("path not configured")
	}
	isFile, err := fs.IsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to test file %s: %w", path, err)
	}
	if !isFile {
		return nil, fmt.Errorf("file %s not found", path)
	}
	return os.ReadFile(path)
}

func loadNouns(path string) ([]string, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var parsed nounsFile
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse noun file %s: %w", path, err)
	}
	ans := make([]string, 0, len(parsed.TopNouns))
	for _, v := range parsed.TopNouns {
		if v != "" {
			ans = append(ans, v)
		}
	}
	if len(ans) == 0 {
		return nil, fmt.Errorf("noun file %s contains no nouns", path)
	}
	return ans, nil
}

func loadSentences(path string) (map[grammar.Case][]FillSentence, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var parsed sentencesFile
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sentence file %s: %w", path, err)
	}
	ans := make(map[grammar.Case][]FillSentence)
	for k, items := range parsed.InsertSentences {
		c := grammar.Case(k)
		if err := c.Validate(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping sentences with unknown case")
			continue
		}
		ans[c] = items
	}
	return ans, nil
}

// Load loads nouns and sentences from JSON files. Any failure
// is logged and the respective builtin data are used instead.
func Load(nounsPath, sentencesPath string, rnd common.Randomizer) *Store {
	nouns, err := loadNouns(nounsPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load nouns, using builtin list")
		nouns = BuiltinNouns
	}
	sentences, err := loadSentences(sentencesPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load sentences, using builtin sentences")
		sentences = BuiltinSentences
	}
	ans := NewStore(nouns, sentences, rnd)
	log.Info().
		Int("nouns", len(ans.nouns)).
		Int("sentences", ans.NumSentences()).
		Msg("lexicon loaded")
	return ans
}
