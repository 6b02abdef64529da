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

// Package morph finds candidate base forms of inflected words using
// WordNet's exception lists and suffix detachment rules.
package morph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-wordnet/locate"
	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/raf"
)

// rule replaces a suffix with an ending.
type rule struct {
	suffix string
	ending string
}

// rules are WordNet's detachment rules in the order they are applied.
var rules = map[string][]rule{
	"noun": {
		{"s", ""},
		{"ses", "s"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	"verb": {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	"adj": {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// Morphology finds base form candidates. Morphology is safe for concurrent
// use.
type Morphology struct {
	mu sync.Mutex

	// exceptions holds the exception list for each file suffix.
	exceptions map[string]*locate.MultiLocator
}

// New returns a Morphology using the given exception lists keyed by
// category. The Morphology takes ownership of the readers.
func New(exceptions map[pos.Category]*raf.Reader) *Morphology {
	m := &Morphology{exceptions: map[string]*locate.MultiLocator{}}
	for c, r := range exceptions {
		m.exceptions[c.FileSuffix()] = locate.NewMulti(r)
	}
	return m
}

// Open opens the exception lists in the WordNet database directory dir.
// Missing exception lists are ignored.
func Open(dir string) (*Morphology, error) {
	m := &Morphology{exceptions: map[string]*locate.MultiLocator{}}
	for _, suffix := range []string{"noun", "verb", "adj", "adv"} {
		ml, err := locate.OpenMulti(filepath.Join(dir, suffix+".exc"))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("opening exception list: %w", err)
		}
		m.exceptions[suffix] = ml
	}
	return m, nil
}

// BaseFormCandidates returns forms that word might be an inflection of.
// Exception list entries are returned first followed by the results of
// applying the detachment rules. The candidates are not checked against the
// database and word itself is never returned.
func (m *Morphology) BaseFormCandidates(word string, c pos.Category) ([]string, error) {
	suffix := c.FileSuffix()
	seen := map[string]bool{word: true}
	var candidates []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			candidates = append(candidates, s)
		}
	}

	if ml := m.exceptions[suffix]; ml != nil {
		m.mu.Lock()
		lines, err := ml.Lines(word + " ")
		m.mu.Unlock()
		if err != nil {
			return nil, fmt.Errorf("reading %s exceptions: %w", suffix, err)
		}
		for _, line := range lines {
			for _, base := range strings.Fields(line)[1:] {
				add(base)
			}
		}
	}

	for _, r := range rules[suffix] {
		if len(word) > len(r.suffix) && strings.HasSuffix(word, r.suffix) {
			add(strings.TrimSuffix(word, r.suffix) + r.ending)
		}
	}

	return candidates, nil
}

// Close closes the exception lists.
func (m *Morphology) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ml := range m.exceptions {
		_ = ml.Close()
	}
	return nil
}
