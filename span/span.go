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

package span

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"
)

// ErrOutOfRange indicates that a position is outside of the text.
var ErrOutOfRange = errors.New("position out of range")

// DefaultSeparators are the runes that delimit words in a definition by
// default.
const DefaultSeparators = " ,"

// Separators is a set of separator runes.
type Separators map[rune]struct{}

// NewSeparators returns the set of runes in chars. Duplicate runes are
// ignored.
func NewSeparators(chars string) Separators {
	seps := Separators{}
	for _, r := range chars {
		seps[r] = struct{}{}
	}
	return seps
}

// Contains returns true if r is a separator.
func (s Separators) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// String returns the separators as a string in no particular order.
func (s Separators) String() string {
	b := make([]rune, 0, len(s))
	for r := range s {
		b = append(b, r)
	}
	return string(b)
}

// Span is a maximal run of text that is made up of either only separator
// runes or only non-separator runes.
type Span struct {
	// Text is the text of the span.
	Text string

	// Separator is true if Text is made up of separator runes.
	Separator bool
}

// Next returns the span in text starting at the byte offset pos. The span is
// the longest run of runes starting at pos that all have the same separator
// classification as the rune at pos.
//
// Next returns ErrOutOfRange if pos is negative or not less than len(text).
func Next(text string, pos int, seps Separators) (string, error) {
	if pos < 0 || pos >= len(text) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, pos, len(text))
	}

	r, size := utf8.DecodeRuneInString(text[pos:])
	isSep := seps.Contains(r)
	end := pos + size
	for end < len(text) {
		r, size = utf8.DecodeRuneInString(text[end:])
		if seps.Contains(r) != isSep {
			break
		}
		end += size
	}
	return text[pos:end], nil
}

// All returns an iterator over the spans in text. Spans are produced lazily
// and each iteration starts again from the beginning of text. Concatenating
// the text of all spans gives back text.
func All(text string, seps Separators) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for pos := 0; pos < len(text); {
			s, err := Next(text, pos, seps)
			if err != nil {
				// NOTE: pos is always within text here.
				panic(err)
			}
			r, _ := utf8.DecodeRuneInString(s)
			if !yield(Span{Text: s, Separator: seps.Contains(r)}) {
				return
			}
			pos += len(s)
		}
	}
}

// Split returns all spans in text.
func Split(text string, seps Separators) []Span {
	var spans []Span
	for s := range All(text, seps) {
		spans = append(spans, s)
	}
	return spans
}
