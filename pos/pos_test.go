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

package pos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Category
		err      error
	}{
		{input: "noun", expected: Noun},
		{input: "N", expected: Noun},
		{input: " verb ", expected: Verb},
		{input: "adj", expected: Adjective},
		{input: "adverb", expected: Adverb},
		{input: "adjective-satellite", expected: AdjectiveSatellite},
		{input: "pronoun", err: ErrUnknownCategory},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(test.input)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Parse err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, c); diff != "" {
				t.Fatalf("Parse (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCategory_roundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range All {
		fromSym, err := FromSymbol(c.Symbol())
		if err != nil {
			t.Fatalf("FromSymbol(%q): %v", c.Symbol(), err)
		}
		fromNum, err := FromNumber(int(c))
		if err != nil {
			t.Fatalf("FromNumber(%d): %v", int(c), err)
		}
		if fromSym != c || fromNum != c {
			t.Fatalf("round trip %v: symbol %v, number %v", c, fromSym, fromNum)
		}
	}

	if _, err := FromNumber(6); err == nil {
		t.Fatal("FromNumber(6): expected error")
	}
	if diff := cmp.Diff("adj", AdjectiveSatellite.FileSuffix()); diff != "" {
		t.Fatalf("FileSuffix (-want, +got):\n%s", diff)
	}
}
