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

package morph_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/morph"
	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/raf"
)

func newReader(lines []string) *raf.Reader {
	b := testutil.MakeLines(lines, "\n", true)
	return raf.New(bytes.NewReader(b), int64(len(b)))
}

func TestMorphology_BaseFormCandidates(t *testing.T) {
	t.Parallel()

	m := morph.New(map[pos.Category]*raf.Reader{
		pos.Noun: newReader([]string{
			"axes axis axe",
			"geese goose",
			"mice mouse",
		}),
		pos.Verb: newReader([]string{
			"ran run",
		}),
		pos.Adverb: newReader([]string{
			"best well",
		}),
	})
	t.Cleanup(func() { _ = m.Close() })

	tests := []struct {
		name     string
		word     string
		category pos.Category
		expected []string
	}{
		{
			name:     "noun exception",
			word:     "geese",
			category: pos.Noun,
			expected: []string{"goose"},
		},
		{
			name:     "noun multiple exception bases",
			word:     "axes",
			category: pos.Noun,
			expected: []string{"axis", "axe", "ax"},
		},
		{
			name:     "noun detachment",
			word:     "masses",
			category: pos.Noun,
			expected: []string{"masse", "mass"},
		},
		{
			name:     "noun ies",
			word:     "ponies",
			category: pos.Noun,
			expected: []string{"ponie", "pony"},
		},
		{
			name:     "verb exception and rules",
			word:     "ran",
			category: pos.Verb,
			expected: []string{"run"},
		},
		{
			name:     "verb ing",
			word:     "making",
			category: pos.Verb,
			expected: []string{"make", "mak"},
		},
		{
			name:     "adjective",
			word:     "larger",
			category: pos.Adjective,
			expected: []string{"larg", "large"},
		},
		{
			name:     "satellite uses adjective rules",
			word:     "freest",
			category: pos.AdjectiveSatellite,
			expected: []string{"fre", "free"},
		},
		{
			name:     "adverb exceptions only",
			word:     "best",
			category: pos.Adverb,
			expected: []string{"well"},
		},
		{
			name:     "no candidates",
			word:     "s",
			category: pos.Noun,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := m.BaseFormCandidates(test.word, test.category)
			if err != nil {
				t.Fatalf("BaseFormCandidates: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("BaseFormCandidates(%q, %v) (-want, +got):\n%s", test.word, test.category, diff)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir, _ := testutil.MakeDatabase(t, testutil.Database{
		Exceptions: map[pos.Category][]string{
			pos.Noun: {"geese goose"},
		},
	})

	m, err := morph.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	got, err := m.BaseFormCandidates("geese", pos.Noun)
	if err != nil {
		t.Fatalf("BaseFormCandidates: %v", err)
	}
	if diff := cmp.Diff([]string{"goose"}, got); diff != "" {
		t.Fatalf("BaseFormCandidates (-want, +got):\n%s", diff)
	}

	// Missing exception lists are not an error.
	m2, err := morph.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m2.Close()
	got, err = m2.BaseFormCandidates("dogs", pos.Noun)
	if err != nil {
		t.Fatalf("BaseFormCandidates: %v", err)
	}
	if diff := cmp.Diff([]string{"dog"}, got); diff != "" {
		t.Fatalf("BaseFormCandidates (-want, +got):\n%s", diff)
	}
}
