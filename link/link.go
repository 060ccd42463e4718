// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package link cross-links glossary definitions.
//
// Each word of a definition that exactly matches a known term is replaced
// with a hyperlink to that term's page. Separators and all other words are
// copied through unchanged.
package link

import (
	"strings"

	"github.com/ianlewis/go-glossary/internal/index"
	"github.com/ianlewis/go-glossary/span"
)

// Options are options for a Linker.
type Options struct {
	// Separators are the runes that delimit words in a definition.
	Separators span.Separators

	// Href returns the link target for a term.
	Href func(term string) string
}

// DefaultOptions is the default options for a Linker.
var DefaultOptions = &Options{
	Separators: span.NewSeparators(span.DefaultSeparators),
	Href:       PageHref,
}

// PageHref returns the page file name for term.
func PageHref(term string) string {
	return term + ".html"
}

// Linker replaces known terms in text with hyperlinks.
type Linker struct {
	terms *index.Index[string]
	seps  span.Separators
	href  func(string) string
}

// New returns a new Linker for the given terms. Matching is exact and case
// sensitive.
func New(terms []string, opts *Options) *Linker {
	if opts == nil {
		opts = DefaultOptions
	}

	l := &Linker{
		terms: index.New(terms, func(t string) string { return t }, strings.Compare),
		seps:  DefaultOptions.Separators,
		href:  DefaultOptions.Href,
	}
	if opts.Separators != nil {
		l.seps = opts.Separators
	}
	if opts.Href != nil {
		l.href = opts.Href
	}
	return l
}

// Link returns definition with every word that matches a known term wrapped
// in a hyperlink. The word is used as the link text.
func (l *Linker) Link(definition string) string {
	var b strings.Builder
	b.Grow(len(definition))
	for s := range span.All(definition, l.seps) {
		term, ok := l.lookup(s)
		if !ok {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(`<a href="`)
		b.WriteString(l.href(term))
		b.WriteString(`">`)
		b.WriteString(s.Text)
		b.WriteString(`</a>`)
	}
	return b.String()
}

// Links returns the distinct terms referenced by definition in order of
// first occurrence.
func (l *Linker) Links(definition string) []string {
	var terms []string
	seen := map[string]bool{}
	for s := range span.All(definition, l.seps) {
		term, ok := l.lookup(s)
		if !ok || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

func (l *Linker) lookup(s span.Span) (string, bool) {
	if s.Separator {
		return "", false
	}
	return l.terms.First(s.Text)
}
