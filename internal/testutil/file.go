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

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SomeWords is a small sorted word list.
var SomeWords = []string{
	"abacus",
	"bear",
	"garden",
	"giraffe",
	"girl",
	"year",
	"zebra",
	"zoo",
}

// MakeLines joins lines with the terminator term. If trailing is true the
// last line is also terminated.
func MakeLines(lines []string, term string, trailing bool) []byte {
	s := strings.Join(lines, term)
	if trailing && len(lines) > 0 {
		s += term
	}
	return []byte(s)
}

// MakeTempFile writes b to a new file in a temporary directory and returns
// its path. The file is removed when the test completes.
func MakeTempFile(t *testing.T, name string, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeTempLines writes the lines to a temporary file, each terminated by
// "\n", and returns its path.
func MakeTempLines(t *testing.T, lines []string) string {
	t.Helper()
	return MakeTempFile(t, "lines.txt", MakeLines(lines, "\n", true))
}
