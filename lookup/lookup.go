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

// Package lookup resolves word forms to synsets with a bounded per-word
// cache.
//
// A Lookup caches the synsets of the most recently used word forms. When a
// word form falls out of the cache its synsets are transparently reloaded the
// next time it is requested. All calls on a Lookup are serialized so that at
// most one load is in progress at any time.
package lookup

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ianlewis/go-wordnet/internal/lru"
	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/senseidx"
)

// DefaultCacheSize is the default number of word forms that are cached.
const DefaultCacheSize = 500

// Record is a resolved synset. Two records with the same category and offset
// are the same synset.
type Record interface {
	Category() pos.Category
	Offset() int64
}

// IndexReader returns the index entries naming a word form.
type IndexReader interface {
	Entries(wordForm string) ([]*senseidx.Entry, error)
}

// Factory resolves an index entry to a record.
type Factory[R Record] interface {
	Synset(e *senseidx.Entry) (R, error)
}

// Morphology returns candidate base forms for a word form.
type Morphology interface {
	BaseFormCandidates(word string, c pos.Category) ([]string, error)
}

// Options are options for a Lookup.
type Options struct {
	// CacheSize is the number of word forms to cache. Values less than one
	// use DefaultCacheSize.
	CacheSize int

	// Logger is used for debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions are the default options for a Lookup.
var DefaultOptions = &Options{
	CacheSize: DefaultCacheSize,
}

// Stats are cache statistics.
type Stats struct {
	// Hits is the number of word form lookups served from the cache.
	Hits int

	// Misses is the number of word form lookups that required a load.
	Misses int

	// Cached is the number of word forms currently cached.
	Cached int
}

type recordKey struct {
	category pos.Category
	offset   int64
}

// Lookup resolves word forms to records. Lookup is safe for concurrent use.
type Lookup[R Record] struct {
	mu sync.Mutex

	index   IndexReader
	factory Factory[R]
	morph   Morphology
	logger  *slog.Logger

	cache *lru.Cache[string, map[pos.Category][]R]
	stats Stats
}

// New returns a new Lookup. morph may be nil if morphological lookups are not
// needed.
func New[R Record](index IndexReader, factory Factory[R], morph Morphology, opts *Options) *Lookup[R] {
	if opts == nil {
		opts = DefaultOptions
	}
	size := opts.CacheSize
	if size < 1 {
		size = DefaultCacheSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Lookup[R]{
		index:   index,
		factory: factory,
		morph:   morph,
		logger:  logger,
		cache:   lru.New[string, map[pos.Category][]R](size),
	}
}

// Synsets returns the records of the given categories that contain
// wordForm. Categories are searched in the order given. If useMorphology is
// true, records containing the word form's base form candidates are returned
// after the exact matches of each category. No record is returned twice.
func (l *Lookup[R]) Synsets(wordForm string, categories []pos.Category, useMorphology bool) ([]R, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []R
	seen := map[recordKey]bool{}
	add := func(records []R) {
		for _, r := range records {
			k := recordKey{r.Category(), r.Offset()}
			if !seen[k] {
				seen[k] = true
				result = append(result, r)
			}
		}
	}

	for _, c := range categories {
		records, err := l.synsets(wordForm, c)
		if err != nil {
			return nil, err
		}
		add(records)

		if !useMorphology || l.morph == nil {
			continue
		}
		candidates, err := l.morph.BaseFormCandidates(wordForm, c)
		if err != nil {
			return nil, fmt.Errorf("finding base forms of %q: %w", wordForm, err)
		}
		for _, candidate := range candidates {
			records, err := l.synsets(candidate, c)
			if err != nil {
				return nil, err
			}
			add(records)
		}
	}

	return result, nil
}

// Stats returns cache statistics.
func (l *Lookup[R]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.stats
	s.Cached = l.cache.Len()
	return s
}

// synsets returns the records of category c for wordForm, loading them if
// they are not cached. l.mu must be held.
func (l *Lookup[R]) synsets(wordForm string, c pos.Category) ([]R, error) {
	byCategory, ok := l.cache.Get(wordForm)
	if ok {
		l.stats.Hits++
		return byCategory[c], nil
	}

	l.stats.Misses++
	byCategory, err := l.load(wordForm)
	if err != nil {
		return nil, err
	}
	l.cache.Add(wordForm, byCategory)
	return byCategory[c], nil
}

// load reads all records containing wordForm grouped by category.
func (l *Lookup[R]) load(wordForm string) (map[pos.Category][]R, error) {
	entries, err := l.index.Entries(wordForm)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", wordForm, err)
	}

	byCategory := map[pos.Category][]R{}
	seen := map[recordKey]bool{}
	for _, e := range entries {
		r, err := l.factory.Synset(e)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", wordForm, err)
		}
		k := recordKey{r.Category(), r.Offset()}
		if seen[k] {
			continue
		}
		seen[k] = true
		byCategory[k.category] = append(byCategory[k.category], r)
	}

	l.logger.Debug("loaded word form",
		"word_form", wordForm,
		"entries", len(entries),
		"categories", len(byCategory),
	)
	return byCategory, nil
}
