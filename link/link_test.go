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

package link_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary/link"
	"github.com/ianlewis/go-glossary/span"
)

// TestLinker_Link tests Linker.Link.
func TestLinker_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		terms      []string
		opts       *link.Options
		definition string

		expected string
	}{
		{
			name:       "empty definition",
			terms:      []string{"cat"},
			definition: "",
			expected:   "",
		},
		{
			name:       "no match",
			terms:      []string{"cat", "dog"},
			definition: "a bird, and  a fish",
			expected:   "a bird, and  a fish",
		},
		{
			name:       "two matches",
			terms:      []string{"cat", "dog"},
			definition: "a cat and a dog",
			expected:   `a <a href="cat.html">cat</a> and a <a href="dog.html">dog</a>`,
		},
		{
			name:       "separators kept",
			terms:      []string{"cat", "dog"},
			definition: " cat,  dog , ",
			expected:   ` <a href="cat.html">cat</a>,  <a href="dog.html">dog</a> , `,
		},
		{
			name:       "case sensitive",
			terms:      []string{"cat"},
			definition: "Cat CAT cat",
			expected:   `Cat CAT <a href="cat.html">cat</a>`,
		},
		{
			name:       "whole word only",
			terms:      []string{"cat"},
			definition: "cats concatenate cat. cat",
			expected:   `cats concatenate cat. <a href="cat.html">cat</a>`,
		},
		{
			name:       "duplicate terms link once",
			terms:      []string{"cat", "cat"},
			definition: "cat",
			expected:   `<a href="cat.html">cat</a>`,
		},
		{
			name:       "multi-word term never matches",
			terms:      []string{"ice cream"},
			definition: "ice cream",
			expected:   "ice cream",
		},
		{
			name:  "custom options",
			terms: []string{"cat"},
			opts: &link.Options{
				Separators: span.NewSeparators(";"),
				Href:       func(t string) string { return "#" + t },
			},
			definition: "cat;a cat",
			expected:   `<a href="#cat">cat</a>;a cat`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			l := link.New(test.terms, test.opts)
			if diff := cmp.Diff(test.expected, l.Link(test.definition)); diff != "" {
				t.Fatalf("Link (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestLinker_Link_count checks the number of links emitted.
func TestLinker_Link_count(t *testing.T) {
	t.Parallel()

	l := link.New([]string{"cat", "dog"}, nil)
	got := l.Link("a cat and a dog")

	if want, got := 2, strings.Count(got, "<a "); want != got {
		t.Fatalf("link count; want: %d, got: %d", want, got)
	}
	if want, got := 2, strings.Count(got, "</a>"); want != got {
		t.Fatalf("link close count; want: %d, got: %d", want, got)
	}
}

// TestLinker_Links tests Linker.Links.
func TestLinker_Links(t *testing.T) {
	t.Parallel()

	l := link.New([]string{"cat", "dog", "bird"}, nil)

	got := l.Links("a dog chases a cat, the cat chases a dog")
	if diff := cmp.Diff([]string{"dog", "cat"}, got); diff != "" {
		t.Fatalf("Links (-want, +got):\n%s", diff)
	}

	if got := l.Links("nothing here"); got != nil {
		t.Fatalf("Links; want: nil, got: %v", got)
	}
}
