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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestCollocationFolder_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "leading whitespace",
			src:   []byte(" \t　foo"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "trailing whitespace",
			src:   []byte("foo \t　"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "whitespace spans",
			src:   []byte("hot \t　 dog"),
			dst:   make([]byte, 8),
			atEOF: true,

			expected: []byte{'h', 'o', 't', '_', 'd', 'o', 'g', 0},
			nDst:     7,
			nSrc:     12,
		},
		{
			name:  "underscores",
			src:   []byte("_hot__dog_"),
			dst:   make([]byte, 8),
			atEOF: true,

			expected: []byte{'h', 'o', 't', '_', 'd', 'o', 'g', 0},
			nDst:     7,
			nSrc:     10,
		},
		{
			name:  "short dst",
			src:   []byte("hot dog"),
			dst:   make([]byte, 3),
			atEOF: true,

			expected: []byte{'h', 'o', 't'},
			nDst:     3,
			nSrc:     4,
			err:      transform.ErrShortDst,
		},
		{
			name: "short src incomplete unicode",
			// NOTE: the last character is only partially included.
			src:   []byte("foo 　")[:5],
			dst:   make([]byte, 10),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0, 0, 0, 0, 0, 0},
			nDst:     3,
			nSrc:     4,
			err:      transform.ErrShortSrc,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := CollocationFolder{}
			nDst, nSrc, err := f.Transform(test.dst, test.src, test.atEOF)
			if diff := cmp.Diff(test.nDst, nDst); diff != "" {
				t.Fatalf("nDst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nSrc, nSrc); diff != "" {
				t.Fatalf("nSrc (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Fatalf("dst (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLemma(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Dog":               "dog",
		"  Hot   Dog ":      "hot_dog",
		"domestic_dog":      "domestic_dog",
		"Canis familiaris":  "canis_familiaris",
		"ÉCOLE normale":     "école_normale",
		"":                  "",
	}

	for input, want := range tests {
		got, _, err := transform.String(Lemma(), input)
		if err != nil {
			t.Fatalf("transform.String(%q): %v", input, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Lemma(%q) (-want, +got):\n%s", input, diff)
		}
	}
}
