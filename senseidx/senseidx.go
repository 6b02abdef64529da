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

package senseidx

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/ianlewis/go-wordnet/locate"
	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/raf"
)

// ErrMalformedEntry indicates a line in the sense index could not be parsed.
var ErrMalformedEntry = errors.New("malformed sense index entry")

// Entry is an index.sense entry.
type Entry struct {
	// SenseKey is the full sense key.
	SenseKey string

	// Lemma is the lemma part of the sense key.
	Lemma string

	// Category is the category from the sense key's ss_type.
	Category pos.Category

	LexFile  int
	LexID    int
	HeadWord string
	HeadID   int

	// SynsetOffset is the byte offset of the synset in its data file.
	SynsetOffset int64

	SenseNumber int
	TagCount    int
}

// Parse parses a single index.sense line.
func Parse(line string) (*Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: %q: expected 4 fields, got %d", ErrMalformedEntry, line, len(fields))
	}

	e := &Entry{SenseKey: fields[0]}
	i := strings.IndexByte(e.SenseKey, '%')
	if i <= 0 {
		return nil, fmt.Errorf("%w: %q: missing lemma", ErrMalformedEntry, line)
	}
	e.Lemma = e.SenseKey[:i]

	parts := strings.Split(e.SenseKey[i+1:], ":")
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: %q: invalid lex_sense", ErrMalformedEntry, line)
	}

	ssType, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: ss_type: %w", ErrMalformedEntry, line, err)
	}
	e.Category, err = pos.FromNumber(ssType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedEntry, line, err)
	}
	if e.LexFile, err = strconv.Atoi(parts[1]); err != nil {
		return nil, fmt.Errorf("%w: %q: lex_filenum: %w", ErrMalformedEntry, line, err)
	}
	if e.LexID, err = strconv.Atoi(parts[2]); err != nil {
		return nil, fmt.Errorf("%w: %q: lex_id: %w", ErrMalformedEntry, line, err)
	}
	e.HeadWord = parts[3]
	if parts[4] != "" {
		if e.HeadID, err = strconv.Atoi(parts[4]); err != nil {
			return nil, fmt.Errorf("%w: %q: head_id: %w", ErrMalformedEntry, line, err)
		}
	}

	if e.SynsetOffset, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return nil, fmt.Errorf("%w: %q: synset_offset: %w", ErrMalformedEntry, line, err)
	}
	if e.SenseNumber, err = strconv.Atoi(fields[2]); err != nil {
		return nil, fmt.Errorf("%w: %q: sense_number: %w", ErrMalformedEntry, line, err)
	}
	if e.TagCount, err = strconv.Atoi(fields[3]); err != nil {
		return nil, fmt.Errorf("%w: %q: tag_cnt: %w", ErrMalformedEntry, line, err)
	}

	return e, nil
}

// Reader looks up entries in a sense index. Reader is safe for concurrent
// use.
type Reader struct {
	mu sync.Mutex
	m  *locate.MultiLocator
}

// New returns a new Reader over r. The Reader takes ownership of r and
// releases it on Close.
func New(r *raf.Reader) *Reader {
	return &Reader{
		m: locate.NewMulti(r),
	}
}

// Open opens the sense index at path.
func Open(path string) (*Reader, error) {
	r, err := raf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sense index: %w", err)
	}
	return New(r), nil
}

// OpenDir opens the sense index in the WordNet database directory dir.
func OpenDir(dir string) (*Reader, error) {
	path, err := FindPath(dir)
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// FindPath returns the path of the sense index in the database directory
// dir.
func FindPath(dir string) (string, error) {
	names := []string{
		"index.sense",
		"sense.idx",
		"INDEX.SENSE",
		"SENSE.IDX",
	}
	var err error
	for _, name := range names {
		path := filepath.Join(dir, name)
		_, err = os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("finding sense index: %w", err)
		}
	}
	return "", fmt.Errorf("finding sense index in %q: %w", dir, err)
}

// Entries returns all entries for lemma ordered by category and then sense
// number. Lemmas use underscores in place of spaces, e.g. "hot_dog".
func (r *Reader) Entries(lemma string) ([]*Entry, error) {
	r.mu.Lock()
	lines, err := r.m.Lines(lemma + "%")
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("reading sense index: %w", err)
	}

	entries := make([]*Entry, 0, len(lines))
	for _, line := range lines {
		e, err := Parse(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b *Entry) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.SenseNumber, b.SenseNumber),
		)
	})
	return entries, nil
}

// Close closes the sense index file.
func (r *Reader) Close() error {
	return r.m.Close()
}
