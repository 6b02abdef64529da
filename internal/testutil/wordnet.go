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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ianlewis/go-wordnet/pos"
)

// dataHeader mimics the license text at the top of the real data files.
const dataHeader = "  1 This software and database is being provided to you, the LICENSEE, by\n" +
	"  2 Princeton University under the following license.\n"

// Synset is a synset to be written to a test database.
type Synset struct {
	Category pos.Category
	Words    []string
	Gloss    string
}

// Database describes a test WordNet database.
type Database struct {
	Synsets []Synset

	// Exceptions holds the lines of the exception list for each category,
	// e.g. "geese goose". Lines are sorted before being written.
	Exceptions map[pos.Category][]string
}

// DataLine formats a data file line for s at offset.
func DataLine(s Synset, offset int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08d 03 %c %02x ", offset, s.Category.Symbol(), len(s.Words))
	for _, w := range s.Words {
		fmt.Fprintf(&b, "%s 0 ", w)
	}
	fmt.Fprintf(&b, "000 | %s", s.Gloss)
	return b.String()
}

// MakeData returns the contents of a data file holding synsets along with
// the offset of each synset.
func MakeData(synsets []Synset) ([]byte, []int64) {
	b := []byte(dataHeader)
	var offsets []int64
	for _, s := range synsets {
		offset := int64(len(b))
		offsets = append(offsets, offset)
		b = append(b, DataLine(s, offset)...)
		b = append(b, '\n')
	}
	return b, offsets
}

// SenseLine formats an index.sense line.
func SenseLine(lemma string, c pos.Category, offset int64, senseNumber int) string {
	return fmt.Sprintf("%s%%%d:03:00:: %08d %d 0", lemma, int(c), offset, senseNumber)
}

// MakeDatabase writes the database to a temporary directory and returns the
// directory and the offset of each synset, in the order given.
func MakeDatabase(t *testing.T, db Database) (string, []int64) {
	t.Helper()

	dir := t.TempDir()
	offsets := make([]int64, len(db.Synsets))

	bySuffix := map[string][]int{}
	for i, s := range db.Synsets {
		suffix := s.Category.FileSuffix()
		bySuffix[suffix] = append(bySuffix[suffix], i)
	}

	for _, suffix := range []string{"noun", "verb", "adj", "adv"} {
		var synsets []Synset
		for _, i := range bySuffix[suffix] {
			synsets = append(synsets, db.Synsets[i])
		}
		b, fileOffsets := MakeData(synsets)
		for j, i := range bySuffix[suffix] {
			offsets[i] = fileOffsets[j]
		}
		writeFile(t, filepath.Join(dir, "data."+suffix), b)

		var exc []string
		for c, lines := range db.Exceptions {
			if c.FileSuffix() == suffix {
				exc = append(exc, lines...)
			}
		}
		slices.Sort(exc)
		writeFile(t, filepath.Join(dir, suffix+".exc"), MakeLines(exc, "\n", true))
	}

	senseNumbers := map[string]int{}
	var senses []string
	for i, s := range db.Synsets {
		for _, w := range s.Words {
			lemma := strings.ToLower(w)
			key := fmt.Sprintf("%s/%d", lemma, s.Category)
			senseNumbers[key]++
			senses = append(senses, SenseLine(lemma, s.Category, offsets[i], senseNumbers[key]))
		}
	}
	slices.Sort(senses)
	writeFile(t, filepath.Join(dir, "index.sense"), MakeLines(senses, "\n", true))

	return dir, offsets
}

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}
