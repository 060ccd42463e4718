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

// Package index implements a sorted array index with binary search lookup.
package index

import (
	"slices"
	"sort"
)

// Index is a generic sorted array index keyed by a string.
type Index[V any] struct {
	// entries are sorted by key. Entries with equal keys keep the order they
	// were given in.
	entries []V

	key func(V) string
	cmp func(string, string) int
}

// New creates an index over a copy of entries. key returns the lookup key of
// an entry. cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b.
func New[V any](entries []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(key(a), key(b))
	})

	return &Index[V]{
		entries: sorted,
		key:     key,
		cmp:     cmp,
	}
}

// Search returns all entries whose key matches query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(query, idx.key(idx.entries[i]))
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.entries) && idx.cmp(query, idx.key(idx.entries[j])) == 0 {
		j++
	}
	return idx.entries[i:j]
}

// First returns the first entry whose key matches query.
func (idx *Index[V]) First(query string) (V, bool) {
	if m := idx.Search(query); len(m) > 0 {
		return m[0], true
	}
	var zero V
	return zero, false
}
