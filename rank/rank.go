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

// Package rank orders glossary terms alphabetically.
//
// Terms are compared rune by rune with case folded, so that ordering ignores
// case but not spacing or punctuation. Terms whose keys are equal, such as "a" and "A", keep the order in which
// they were given.
package rank

import (
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/internal/folding"
)

// Options are options for ranking terms.
type Options struct {
	// Folder returns a [transform.Transformer] that builds the sort key for
	// a term.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for ranking. Keys are case folded
// rune by rune. Use [folding.Loose] to also fold whitespace.
var DefaultOptions = &Options{
	Folder: folding.New,
}

type keyed struct {
	key  string
	term string
}

// Terms returns the terms in ascending order of their sort keys. The terms
// slice is not modified.
func Terms(terms []string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	folder := DefaultOptions.Folder
	if opts.Folder != nil {
		folder = opts.Folder
	}

	ks := make([]keyed, 0, len(terms))
	for _, t := range terms {
		k, err := folding.Key(folder, t)
		if err != nil {
			return nil, err
		}
		ks = append(ks, keyed{key: k, term: t})
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	ordered := make([]string, len(ks))
	for i, k := range ks {
		ordered[i] = k.term
	}
	return ordered, nil
}
