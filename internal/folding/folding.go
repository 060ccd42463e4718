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

// Package folding implements text folding used to build sort keys.
package folding

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// New returns a transformer that folds the case of each rune on its own.
// Every other rune, including whitespace, is kept as is.
func New() transform.Transformer {
	return runes.Map(foldRune)
}

// Loose returns a transformer that folds whitespace runs and applies full
// Unicode case folding, so that "  Ice   Cream" and "ice cream" compare
// equal and "ß" folds to "ss".
func Loose() transform.Transformer {
	return transform.Chain(&Whitespace{}, cases.Fold())
}

// foldRune maps r to the lower case of its upper case so that runes with
// more than one lower case form fold together.
func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

// Key returns s folded with the transformer returned by folder.
func Key(folder func() transform.Transformer, s string) (string, error) {
	key, _, err := transform.String(folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return key, nil
}

// Whitespace trims leading and trailing whitespace and collapses each
// internal whitespace run into a single ASCII space.
type Whitespace struct {
	// seenText is set once a non-space rune has been emitted.
	seenText bool

	// pending is set while skipping a whitespace run after text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			w.pending = w.seenText
			continue
		}

		// Encoding r rather than copying src keeps invalid bytes as
		// utf8.RuneError, which may be longer than size.
		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seenText = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}
