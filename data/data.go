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

// Package data implements reading synsets from the WordNet data.noun,
// data.verb, data.adj and data.adv files.
//
// Each synset occupies one line and is addressed by the byte offset of that
// line, which is also the first field of the line.
package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/raf"
	"github.com/ianlewis/go-wordnet/senseidx"
)

var (
	// ErrMalformedSynset indicates a data file line could not be parsed.
	ErrMalformedSynset = errors.New("malformed synset")

	// ErrOffsetMismatch indicates the line at an offset is not the synset
	// that was requested.
	ErrOffsetMismatch = errors.New("synset offset mismatch")

	// ErrUnknownCategory indicates there is no data file for a category.
	ErrUnknownCategory = errors.New("no data file for category")
)

// Synset is a set of synonymous words.
type Synset struct {
	// SynsetOffset is the byte offset of the synset in its data file.
	SynsetOffset int64

	// LexFile is the lexicographer file number.
	LexFile int

	// SynsetType is the synset's category.
	SynsetType pos.Category

	// Words are the synset's word forms in file order.
	Words []string

	// Gloss is the synset's definition and example sentences.
	Gloss string
}

// Offset returns the synset's byte offset.
func (s *Synset) Offset() int64 {
	return s.SynsetOffset
}

// Category returns the synset's category.
func (s *Synset) Category() pos.Category {
	return s.SynsetType
}

// String returns the synset's words and gloss.
func (s *Synset) String() string {
	return fmt.Sprintf("{%s} %s", strings.Join(s.Words, ", "), s.Gloss)
}

// Parse parses a data file line.
func Parse(line string) (*Synset, error) {
	body, gloss, _ := strings.Cut(line, "|")
	fields := strings.Fields(body)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q: too few fields", ErrMalformedSynset, line)
	}

	s := &Synset{
		Gloss: strings.TrimSpace(gloss),
	}

	var err error
	if s.SynsetOffset, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
		return nil, fmt.Errorf("%w: %q: synset_offset: %w", ErrMalformedSynset, line, err)
	}
	if s.LexFile, err = strconv.Atoi(fields[1]); err != nil {
		return nil, fmt.Errorf("%w: %q: lex_filenum: %w", ErrMalformedSynset, line, err)
	}
	if len(fields[2]) != 1 {
		return nil, fmt.Errorf("%w: %q: ss_type %q", ErrMalformedSynset, line, fields[2])
	}
	if s.SynsetType, err = pos.FromSymbol(fields[2][0]); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedSynset, line, err)
	}

	// w_cnt is a two digit hexadecimal number.
	wCnt, err := strconv.ParseUint(fields[3], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: w_cnt: %w", ErrMalformedSynset, line, err)
	}
	words := fields[4:]
	if uint64(len(words)) < 2*wCnt {
		return nil, fmt.Errorf("%w: %q: expected %d words", ErrMalformedSynset, line, wCnt)
	}
	for i := range int(wCnt) {
		s.Words = append(s.Words, words[2*i])
	}

	return s, nil
}

// Files reads synsets from a WordNet database's data files. Files is safe for
// concurrent use.
type Files struct {
	mu      sync.Mutex
	readers map[string]*raf.Reader
}

// New returns a Files reading from the given readers keyed by category. The
// Files takes ownership of the readers. Adjective satellites are read from
// the Adjective reader.
func New(readers map[pos.Category]*raf.Reader) *Files {
	f := &Files{readers: map[string]*raf.Reader{}}
	for c, r := range readers {
		f.readers[c.FileSuffix()] = r
	}
	return f
}

// Open opens the data files in the WordNet database directory dir.
func Open(dir string) (*Files, error) {
	f := &Files{readers: map[string]*raf.Reader{}}
	for _, suffix := range []string{"noun", "verb", "adj", "adv"} {
		path, err := findPath(dir, suffix)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		r, err := raf.Open(path)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening data file: %w", err)
		}
		f.readers[suffix] = r
	}
	return f, nil
}

func findPath(dir, suffix string) (string, error) {
	names := []string{
		"data." + suffix,
		suffix + ".dat",
		"DATA." + strings.ToUpper(suffix),
	}
	var err error
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err = os.Stat(path); err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("finding %s data file: %w", suffix, err)
		}
	}
	return "", fmt.Errorf("finding %s data file in %q: %w", suffix, dir, err)
}

// Synset retrieves the synset for the given index entry.
func (f *Files) Synset(e *senseidx.Entry) (*Synset, error) {
	return f.SynsetAt(e.Category, e.SynsetOffset)
}

// SynsetAt retrieves the synset of category c at offset.
func (f *Files) SynsetAt(c pos.Category, offset int64) (*Synset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.readers[c.FileSuffix()]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
	}
	if err := r.Seek(offset); err != nil {
		return nil, fmt.Errorf("reading %v synset: %w", c, err)
	}
	line, err := r.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("reading %v synset at %d: %w", c, offset, err)
	}

	s, err := Parse(line)
	if err != nil {
		return nil, err
	}
	if s.SynsetOffset != offset {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrOffsetMismatch, offset, s.SynsetOffset)
	}
	return s, nil
}

// Close closes all data files.
func (f *Files) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.readers {
		_ = r.Close()
	}
	return nil
}
