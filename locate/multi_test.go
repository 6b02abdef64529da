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

package locate_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/locate"
	"github.com/ianlewis/go-wordnet/raf"
)

func TestMultiLocator_Range(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		lower string
		upper string

		expected []string
	}{
		{
			name:     "single line",
			lines:    testutil.SomeWords,
			lower:    "aba",
			upper:    "aba",
			expected: []string{"abacus"},
		},
		{
			name:     "single prefix",
			lines:    testutil.SomeWords,
			lower:    "gi",
			upper:    "gi",
			expected: []string{"giraffe", "girl"},
		},
		{
			name:     "two prefixes",
			lines:    testutil.SomeWords,
			lower:    "be",
			upper:    "ye",
			expected: []string{"bear", "garden", "giraffe", "girl", "year"},
		},
		{
			name:     "entire file",
			lines:    testutil.SomeWords,
			lower:    "a",
			upper:    "z",
			expected: testutil.SomeWords,
		},
		{
			name:     "upper part",
			lines:    testutil.SomeWords,
			lower:    "a",
			upper:    "g",
			expected: []string{"abacus", "bear", "garden", "giraffe", "girl"},
		},
		{
			name:     "lower part",
			lines:    testutil.SomeWords,
			lower:    "g",
			upper:    "z",
			expected: []string{"garden", "giraffe", "girl", "year", "zebra", "zoo"},
		},
		{
			name:     "missing lower",
			lines:    testutil.SomeWords,
			lower:    "c",
			upper:    "z",
			expected: nil,
		},
		{
			name:     "missing upper",
			lines:    testutil.SomeWords,
			lower:    "a",
			upper:    "x",
			expected: nil,
		},
		{
			name:     "reversed",
			lines:    testutil.SomeWords,
			lower:    "z",
			upper:    "a",
			expected: nil,
		},
		{
			name: "duplicate run",
			lines: []string{
				"cat%1 100",
				"dog%1 200",
				"dog%1 201",
				"dog%2 300",
				"dogs%1 400",
			},
			lower: "dog%",
			upper: "dog%",
			expected: []string{
				"dog%1 200",
				"dog%1 201",
				"dog%2 300",
			},
		},
	}

	for _, test := range tests {
		for _, term := range []string{"\n", "\r\n"} {
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()

				b := testutil.MakeLines(test.lines, term, true)
				m := locate.NewMulti(raf.New(bytes.NewReader(b), int64(len(b))))
				defer m.Close()

				lines, err := m.Range(test.lower, test.upper)
				if err != nil {
					t.Fatalf("Range: %v", err)
				}
				if diff := cmp.Diff(test.expected, lines); diff != "" {
					t.Fatalf("Range(%q, %q) (-want, +got):\n%s", test.lower, test.upper, diff)
				}

				// The search is repeatable on the same locator.
				lines, err = m.Range(test.lower, test.upper)
				if err != nil {
					t.Fatalf("Range: %v", err)
				}
				if diff := cmp.Diff(test.expected, lines); diff != "" {
					t.Fatalf("Range(%q, %q) second call (-want, +got):\n%s", test.lower, test.upper, diff)
				}
			})
		}
	}
}

func TestMultiLocator_Lines(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempLines(t, testutil.SomeWords)
	m, err := locate.OpenMulti(path)
	if err != nil {
		t.Fatalf("OpenMulti: %v", err)
	}
	defer m.Close()

	lines, err := m.Lines("z")
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if diff := cmp.Diff([]string{"zebra", "zoo"}, lines); diff != "" {
		t.Fatalf("Lines (-want, +got):\n%s", diff)
	}

	lines, err = m.Lines("q")
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if diff := cmp.Diff([]string(nil), lines); diff != "" {
		t.Fatalf("Lines (-want, +got):\n%s", diff)
	}
}
