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

package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/czcorpus/rudrill/config"
	"github.com/czcorpus/rudrill/globctx"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/morph"
	"github.com/czcorpus/rudrill/reporting"
	"github.com/czcorpus/rudrill/storage"
)

// uncoveredNouns returns nouns for which the oracle is not able
// to provide all the case/number forms. The values are the missing
// forms written as `case/number`.
func uncoveredNouns(ctx context.Context, oracle morph.Oracle, nouns []string) map[string][]string {
	ans := make(map[string][]string)
	for _, noun := range nouns {
		for _, c := range grammar.AllCases {
			for _, n := range grammar.AllNumbers {
				if _, ok := morph.Inflect(ctx, oracle, noun, c, n); !ok {
					ans[noun] = append(ans[noun], fmt.Sprintf("%s/%s", c, n))
				}
			}
		}
	}
	return ans
}

// writeCheckReport prints the numbers of loaded nouns and sentences
// along with nouns the oracle cannot fully inflect.
func writeCheckReport(w io.Writer, globalCtx *globctx.Context) {
	lex := globalCtx.Lexicon
	caseNames := make([]string, 0, len(grammar.AllCases))
	for _, c := range lex.SentenceCases() {
		caseNames = append(caseNames, c.String())
	}
	uncovered := uncoveredNouns(globalCtx, globalCtx.Oracle, lex.Nouns())
	fmt.Fprintf(
		w,
		"\nNouns: %d"+
			"\nSentences: %d (cases: %s)"+
			"\nOracle sources: %d"+
			"\nNouns without full paradigm: %d"+
			"\n",
		len(lex.Nouns()), lex.NumSentences(), strings.Join(caseNames, ", "),
		globalCtx.Oracle.NumSources(), len(uncovered),
	)
	nouns := make([]string, 0, len(uncovered))
	for noun := range uncovered {
		nouns = append(nouns, noun)
	}
	sort.Strings(nouns)
	for _, noun := range nouns {
		fmt.Fprintf(w, "  %s: %s\n", noun, strings.Join(uncovered[noun], ", "))
	}
}

// RunCheck loads all the drill data the same way the server does
// and prints a coverage report.
func RunCheck(conf *config.Configuration) {
	globalCtx := CreateGlobalCtx(
		context.Background(), conf, storage.NewMemoryStore(), &reporting.NullWriter{})
	writeCheckReport(os.Stdout, globalCtx)
}
