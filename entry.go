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
	"github.com/k3a/html2text"

	"github.com/ianlewis/go-glossary/link"
)

// Entry is a glossary entry.
type Entry struct {
	term       string
	definition string
	linker     *link.Linker
}

// Title returns the entry's term.
func (e *Entry) Title() string {
	return e.term
}

// Definition returns the entry's definition as it appears in the glossary
// file.
func (e *Entry) Definition() string {
	return e.definition
}

// Linked returns the entry's definition with known terms turned into
// hyperlinks.
func (e *Entry) Linked() string {
	return e.linker.Link(e.definition)
}

// Links returns the terms referenced by the entry's definition.
func (e *Entry) Links() []string {
	return e.linker.Links(e.definition)
}

// String returns a plain text representation of the Entry.
func (e *Entry) String() string {
	return e.term + "\n" + html2text.HTML2TextWithOptions(e.Linked(), html2text.WithLinksInnerText()) + "\n"
}
