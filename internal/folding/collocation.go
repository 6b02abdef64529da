// Copyright 2026 Ian Lewis
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

// Package folding implements text transformers used to normalize queries
// before they are searched for in the database files.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// CollocationFolder folds a query into WordNet's lemma form. It removes
// whitespace from the beginning and end of the input and replaces every
// internal whitespace span with a single underscore, so that "hot  dog"
// becomes "hot_dog".
type CollocationFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// wsSpan is true if the transformer is currently handling a whitespace
	// span.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *CollocationFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) || c == '_' {
			nSrc += size
			if w.notStart {
				w.wsSpan = true
			}
			continue
		}

		if w.wsSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '_'
			nDst++
			w.wsSpan = false
		}
		w.notStart = true

		// NOTE: c may be utf8.RuneError in which case size is 1 but the
		// encoded length is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *CollocationFolder) Reset() {
	*w = CollocationFolder{}
}

// Lemma returns a transformer that lower-cases its input and folds
// collocations into WordNet's lemma form.
func Lemma() transform.Transformer {
	return transform.Chain(cases.Lower(language.Und), &CollocationFolder{})
}
