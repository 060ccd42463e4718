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

package rank_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-glossary/internal/folding"
	"github.com/ianlewis/go-glossary/rank"
)

// TestTerms tests Terms.
func TestTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		terms    []string
		opts     *rank.Options
		expected []string
	}{
		{
			name:     "empty",
			terms:    nil,
			expected: []string{},
		},
		{
			name:     "case insensitive",
			terms:    []string{"Banana", "apple", "cherry"},
			expected: []string{"apple", "Banana", "cherry"},
		},
		{
			name:     "case only difference keeps input order",
			terms:    []string{"a", "A"},
			expected: []string{"a", "A"},
		},
		{
			name:     "case only difference reversed",
			terms:    []string{"A", "a"},
			expected: []string{"A", "a"},
		},
		{
			name:     "empty term first",
			terms:    []string{"b", "", "a"},
			expected: []string{"", "a", "b"},
		},
		{
			name:     "prefix first",
			terms:    []string{"cats", "Cat", "catalog"},
			expected: []string{"Cat", "catalog", "cats"},
		},
		{
			name:     "whitespace compared as written",
			terms:    []string{"ice cap", "ice  cream", " ice age"},
			expected: []string{" ice age", "ice  cream", "ice cap"},
		},
		{
			name:     "leading space before punctuation",
			terms:    []string{"!bang", " zebra"},
			expected: []string{" zebra", "!bang"},
		},
		{
			name:     "sharp s not expanded",
			terms:    []string{"ßa", "st"},
			expected: []string{"st", "ßa"},
		},
		{
			name:  "loose folder folds whitespace",
			terms: []string{"ice  cream", "ice cap", " ice age"},
			opts: &rank.Options{
				Folder: folding.Loose,
			},
			expected: []string{" ice age", "ice cap", "ice  cream"},
		},
		{
			name:  "nop folder is case sensitive",
			terms: []string{"Banana", "apple", "cherry"},
			opts: &rank.Options{
				Folder: func() transform.Transformer { return transform.Nop },
			},
			expected: []string{"Banana", "apple", "cherry"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := rank.Terms(test.terms, test.opts)
			if err != nil {
				t.Fatalf("Terms: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Terms (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTerms_input checks that the input slice is left untouched.
func TestTerms_input(t *testing.T) {
	t.Parallel()

	terms := []string{"cherry", "Banana", "apple"}
	if _, err := rank.Terms(terms, nil); err != nil {
		t.Fatalf("Terms: %v", err)
	}
	if diff := cmp.Diff([]string{"cherry", "Banana", "apple"}, terms); diff != "" {
		t.Fatalf("input (-want, +got):\n%s", diff)
	}
}
