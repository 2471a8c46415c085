// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsh/internal/log"
)

// Quote is a single immutable record.
type Quote struct {
	Content string `yaml:"content" json:"content"`
	Author  string `yaml:"author" json:"author"`
	Length  int    `yaml:"length" json:"length"`
}

// Picker selects one quote from a list.
type Picker func([]Quote) (Quote, error)

// ErrEmpty is returned by RandomPicker when there is nothing to choose from.
var ErrEmpty = errors.New("no quotes to choose from")

// RandomPicker chooses uniformly at random.
func RandomPicker(quotes []Quote) (Quote, error) {
	if len(quotes) == 0 {
		return Quote{}, ErrEmpty
	}
	return quotes[rand.IntN(len(quotes))], nil
}

// Provider hands out quotes as status/result pairs, mimicking a call to an
// external quotes API.
type Provider struct {
	quotes []Quote
	pick   Picker
}

// Option customizes a Provider.
type Option func(*Provider)

// WithQuotes replaces the built-in list.
func WithQuotes(quotes []Quote) Option {
	return func(p *Provider) { p.quotes = quotes }
}

// WithPicker replaces RandomPicker.
func WithPicker(pick Picker) Option {
	return func(p *Provider) { p.pick = pick }
}

// NewProvider returns a Provider over the built-in list unless overridden.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{quotes: Builtin(), pick: RandomPicker}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns 200 and a map holding exactly content, author and length of
// the chosen quote. Any failure in selection, a panic included, returns 500
// and a map holding only status_message.
func (p *Provider) Get() (status int, body map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("quote picker panic: %v", r)
			status, body = failure(fmt.Errorf("%v", r))
		}
	}()

	q, err := p.pick(p.quotes)
	if err != nil {
		log.Debugf("quote pick err: err=%v", err)
		return failure(err)
	}

	return http.StatusOK, map[string]any{
		"content": q.Content,
		"author":  q.Author,
		"length":  q.Length,
	}
}

func failure(err error) (int, map[string]any) {
	return http.StatusInternalServerError, map[string]any{
		"status_message": fmt.Sprintf("Unexpected error: %v", err),
	}
}

// Load reads a YAML list of quotes from path. A zero length is filled in with
// the content's rune count.
func Load(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var quotes []Quote
	if err := yaml.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to parse quotes file %s: %w", path, err)
	}

	for i := range quotes {
		if quotes[i].Length == 0 {
			quotes[i].Length = utf8.RuneCountInString(quotes[i].Content)
		}
	}
	log.Debugf("quotes loaded: path=%s, count=%d", path, len(quotes))

	return quotes, nil
}
