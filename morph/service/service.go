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

// Package service provides a morphological source backed
// by a remote JSON API (typically a thin HTTP wrapper around
// a morphological analyzer).
package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/czcorpus/rudrill/grammar"
	"github.com/czcorpus/rudrill/morph"
	"golang.org/x/time/rate"
)

type parseItem struct {
	NormalForm string             `json:"normalForm"`
	Forms      grammar.Declension `json:"forms"`
}

type parseResponse struct {
	Parses []parseItem `json:"parses"`
	Error  string      `json:"error,omitempty"`
}

type Client struct {
	conf    *Conf
	client  *http.Client
	limiter *rate.Limiter
}

func (c *Client) createURL(word string) string {
	return fmt.Sprintf(
		"%s/parse?word=%s", strings.TrimRight(c.conf.BaseURL, "/"), url.QueryEscape(word))
}

func (c *Client) Lookup(ctx context.Context, word string) ([]*morph.Paradigm, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query morphology service: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.conf.TimeoutSecs)*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.createURL(word), nil)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query morphology service: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.conf.ClientUserAgent != "" {
		req.Header.Set("User-Agent", c.conf.ClientUserAgent)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query morphology service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return []*morph.Paradigm{}, fmt.Errorf(
			"failed to query morphology service: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to read morphology service response: %w", err)
	}
	var data parseResponse
	if err := sonic.Unmarshal(body, &data); err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to decode morphology service response: %w", err)
	}
	if data.Error != "" {
		return []*morph.Paradigm{}, fmt.Errorf("morphology service error: %s", data.Error)
	}
	ans := make([]*morph.Paradigm, 0, len(data.Parses))
	for _, item := range data.Parses {
		if item.Forms.IsEmpty() {
			continue
		}
		ans = append(ans, &morph.Paradigm{Lemma: item.NormalForm, Forms: item.Forms})
	}
	return ans, nil
}

func NewClient(conf *Conf) *Client {
	return &Client{
		conf: conf,
		client: httpclient.New(
			httpclient.WithFollowRedirects(),
			httpclient.WithInsecureSkipVerify(),
			httpclient.WithIdleConnTimeout(time.Duration(60)*time.Second),
		),
		limiter: rate.NewLimiter(rate.Limit(conf.ReqPerSec), int(conf.ReqPerSec)+1),
	}
}
