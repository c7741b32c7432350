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

// Package wiktionary provides a morphological source scraping
// noun declension tables from the Russian Wiktionary.
package wiktionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/czcorpus/rudrill/morph"
	"golang.org/x/time/rate"
)

type Client struct {
	conf    *Conf
	client  *http.Client
	limiter *rate.Limiter
}

func (c *Client) createURL(word string) string {
	return fmt.Sprintf(
		"%s/wiki/%s", strings.TrimRight(c.conf.BaseURL, "/"), url.PathEscape(word))
}

func (c *Client) Lookup(ctx context.Context, word string) ([]*morph.Paradigm, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return []*morph.Paradigm{}, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query Wiktionary: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.conf.TimeoutSecs)*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.createURL(word), nil)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query Wiktionary: %w", err)
	}
	req.Header.Set("User-Agent", c.conf.ClientUserAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query Wiktionary: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return []*morph.Paradigm{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return []*morph.Paradigm{}, fmt.Errorf("failed to query Wiktionary: unexpected status %d", resp.StatusCode)
	}
	ans, err := parseDeclension(resp.Body)
	if err != nil {
		return []*morph.Paradigm{}, fmt.Errorf("failed to parse Wiktionary page: %w", err)
	}
	return ans, nil
}

func NewClient(conf *Conf) *Client {
	return &Client{
		conf: conf,
		client: httpclient.New(
			httpclient.WithFollowRedirects(),
			httpclient.WithIdleConnTimeout(time.Duration(60)*time.Second),
		),
		limiter: rate.NewLimiter(rate.Limit(conf.ReqPerSec), 1),
	}
}
