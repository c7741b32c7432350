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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineConfigPath(t *testing.T) {
	assert.Equal(t, "/tmp/conf.json", determineConfigPath([]string{"start", "/tmp/conf.json"}, 1))
	assert.Equal(t, "", determineConfigPath([]string{"start"}, 1))
	assert.Equal(t, "", determineConfigPath([]string{"check", ""}, 1))
}

func TestDetermineConfigPathBuildDefault(t *testing.T) {
	orig := defaultConfigPath
	defaultConfigPath = "/etc/rudrill.json"
	defer func() { defaultConfigPath = orig }()
	assert.Equal(t, "/etc/rudrill.json", determineConfigPath([]string{"start"}, 1))
	assert.Equal(t, "/tmp/conf.json", determineConfigPath([]string{"start", "/tmp/conf.json"}, 1))
}
