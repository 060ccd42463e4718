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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-glossary/internal/testutil"
	"github.com/ianlewis/go-glossary/span"
)

const fruit = `cherry
a red fruit, smaller than an apple

Banana
a long yellow fruit

apple
a round fruit, not a cherry or a Banana

kiwi
`

func TestOpen(t *testing.T) {
	t.Parallel()

	path := testutil.WriteGlossary(t, fruit, &testutil.GlossaryOptions{
		Compression: testutil.DictZip,
	})

	g, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if diff := cmp.Diff([]string{"apple", "Banana", "cherry", "kiwi"}, g.Terms()); diff != "" {
		t.Fatalf("Terms (-want, +got):\n%s", diff)
	}
	if want, got := 4, g.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}

func TestGlossary_Entries(t *testing.T) {
	t.Parallel()

	g, err := New(strings.NewReader(fruit), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	type result struct {
		Title  string
		Linked string
		Links  []string
	}

	var got []result
	for _, e := range g.Entries() {
		got = append(got, result{
			Title:  e.Title(),
			Linked: e.Linked(),
			Links:  e.Links(),
		})
	}

	expected := []result{
		{
			Title:  "apple",
			Linked: `a round fruit, not a <a href="cherry.html">cherry</a> or a <a href="Banana.html">Banana</a>`,
			Links:  []string{"cherry", "Banana"},
		},
		{
			Title:  "Banana",
			Linked: "a long yellow fruit",
		},
		{
			Title:  "cherry",
			Linked: `a red fruit, smaller than an <a href="apple.html">apple</a>`,
			Links:  []string{"apple"},
		},
		{
			Title:  "kiwi",
			Linked: "",
		},
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
}

func TestGlossary_Entry(t *testing.T) {
	t.Parallel()

	g, err := New(strings.NewReader(fruit), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e, ok := g.Entry("cherry")
	if !ok {
		t.Fatal("Entry: cherry not found")
	}
	if diff := cmp.Diff("a red fruit, smaller than an apple", e.Definition()); diff != "" {
		t.Fatalf("Definition (-want, +got):\n%s", diff)
	}

	str := e.String()
	if !strings.HasPrefix(str, "cherry\n") {
		t.Errorf("String: missing title: %q", str)
	}
	if !strings.Contains(str, "smaller than an apple") {
		t.Errorf("String: missing definition: %q", str)
	}
	if strings.Contains(str, "<a") {
		t.Errorf("String: contains markup: %q", str)
	}

	if _, ok := g.Entry("Cherry"); ok {
		t.Fatal("Entry: unexpected match for Cherry")
	}
}

func TestGlossary_separators(t *testing.T) {
	t.Parallel()

	g, err := New(strings.NewReader("cat\na dog;a bird\n\ndog\nwoof\n"), &Options{
		Separators: " ;",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	e, _ := g.Entry("cat")
	if diff := cmp.Diff(`a <a href="dog.html">dog</a>;a bird`, e.Linked()); diff != "" {
		t.Fatalf("Linked (-want, +got):\n%s", diff)
	}
}

func TestGlossary_emptySeparators(t *testing.T) {
	t.Parallel()

	g, err := New(strings.NewReader("cat\nnot a dog\n\ndog\nwoof\n"), &Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seps := g.Separators()
	for _, r := range span.DefaultSeparators {
		if !seps.Contains(r) {
			t.Errorf("Separators: missing %q", r)
		}
	}
	e, _ := g.Entry("cat")
	if diff := cmp.Diff(`not a <a href="dog.html">dog</a>`, e.Linked()); diff != "" {
		t.Fatalf("Linked (-want, +got):\n%s", diff)
	}
}
