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

package store

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Store maps glossary terms to their definitions.
type Store struct {
	// terms is in order of first appearance.
	terms []string
	defs  map[string]string
}

// New returns a new Store by reading all records from r. When a term appears
// more than once, the last definition wins and the term keeps the position
// of its first appearance.
func New(r io.Reader) (*Store, error) {
	st := &Store{
		defs: map[string]string{},
	}

	s := NewScanner(r)
	for s.Scan() {
		rec := s.Record()
		if _, ok := st.defs[rec.Term]; !ok {
			st.terms = append(st.terms, rec.Term)
		}
		st.defs[rec.Term] = rec.Definition
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning glossary: %w", err)
	}

	return st, nil
}

// Open reads a Store from the file at path. Files ending in .gz or .dz are
// decompressed.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening glossary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".dz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader for %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	st, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return st, nil
}

// Terms returns the terms in order of first appearance.
func (st *Store) Terms() []string {
	return slices.Clone(st.terms)
}

// Definition returns the definition for term.
func (st *Store) Definition(term string) (string, bool) {
	def, ok := st.defs[term]
	return def, ok
}

// Len returns the number of terms.
func (st *Store) Len() int {
	return len(st.terms)
}
