// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glossary

import (
	"fmt"
	"io"
	"slices"

	"github.com/ianlewis/go-glossary/link"
	"github.com/ianlewis/go-glossary/rank"
	"github.com/ianlewis/go-glossary/span"
	"github.com/ianlewis/go-glossary/store"
)

// Options are options for building a Glossary.
type Options struct {
	// Separators are the runes that delimit words in definitions. Defaults
	// to span.DefaultSeparators.
	Separators string

	// Rank are options for ordering terms.
	Rank *rank.Options
}

// DefaultOptions is the default options for a Glossary.
var DefaultOptions = &Options{
	Separators: span.DefaultSeparators,
	Rank:       rank.DefaultOptions,
}

// Glossary is a set of terms and their cross-linked definitions.
type Glossary struct {
	store  *store.Store
	terms  []string
	seps   span.Separators
	linker *link.Linker
}

// Open opens the glossary file at path.
func Open(path string, opts *Options) (*Glossary, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return FromStore(st, opts)
}

// New reads a glossary from r.
func New(r io.Reader, opts *Options) (*Glossary, error) {
	st, err := store.New(r)
	if err != nil {
		return nil, err
	}
	return FromStore(st, opts)
}

// FromStore returns a Glossary for the terms in st.
func FromStore(st *store.Store, opts *Options) (*Glossary, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	chars := opts.Separators
	if chars == "" {
		chars = DefaultOptions.Separators
	}
	seps := span.NewSeparators(chars)

	terms, err := rank.Terms(st.Terms(), opts.Rank)
	if err != nil {
		return nil, fmt.Errorf("ranking terms: %w", err)
	}

	return &Glossary{
		store: st,
		terms: terms,
		seps:  seps,
		linker: link.New(terms, &link.Options{
			Separators: seps,
		}),
	}, nil
}

// Terms returns the glossary's terms in alphabetical order.
func (g *Glossary) Terms() []string {
	return slices.Clone(g.terms)
}

// Separators returns the runes that delimit words in definitions.
func (g *Glossary) Separators() span.Separators {
	return g.seps
}

// Len returns the number of terms in the glossary.
func (g *Glossary) Len() int {
	return len(g.terms)
}

// Entry returns the entry for term.
func (g *Glossary) Entry(term string) (*Entry, bool) {
	def, ok := g.store.Definition(term)
	if !ok {
		return nil, false
	}
	return &Entry{
		term:       term,
		definition: def,
		linker:     g.linker,
	}, true
}

// Entries returns all entries in alphabetical order.
func (g *Glossary) Entries() []*Entry {
	entries := make([]*Entry, 0, len(g.terms))
	for _, t := range g.terms {
		e, _ := g.Entry(t)
		entries = append(entries, e)
	}
	return entries
}
