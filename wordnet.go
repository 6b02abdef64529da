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

package wordnet

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/locate"
	"github.com/ianlewis/go-wordnet/lookup"
	"github.com/ianlewis/go-wordnet/morph"
	"github.com/ianlewis/go-wordnet/pos"
	"github.com/ianlewis/go-wordnet/senseidx"
)

var (
	// ErrNoDatabaseDir indicates that the database directory is not
	// configured.
	ErrNoDatabaseDir = errors.New("no database directory")

	// ErrInvalidFile indicates a file name outside of the database directory.
	ErrInvalidFile = errors.New("invalid database file name")
)

// Options are options for opening a Database.
type Options struct {
	// CacheSize is the number of word forms whose synsets are cached.
	// Defaults to lookup.DefaultCacheSize.
	CacheSize int

	// Logger is the logger used by the Database. Defaults to slog.Default().
	Logger *slog.Logger

	// Folder returns a [transform.Transformer] that normalizes queries
	// before they are looked up. Defaults to lower-casing and folding
	// whitespace into underscores.
	Folder func() transform.Transformer
}

// Database is an opened WordNet database. Database is safe for concurrent
// use.
type Database struct {
	dir string

	index  *senseidx.Reader
	data   *data.Files
	morph  *morph.Morphology
	lookup *lookup.Lookup[*data.Synset]

	folder func() transform.Transformer
}

// Open opens the WordNet database in the directory dir.
func Open(dir string, opts *Options) (*Database, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db := &Database{
		dir:    dir,
		folder: folding.Lemma,
	}
	if opts.Folder != nil {
		db.folder = opts.Folder
	}

	var err error
	db.index, err = senseidx.OpenDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", dir, err)
	}
	db.data, err = data.Open(dir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening %q: %w", dir, err)
	}
	db.morph, err = morph.Open(dir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening %q: %w", dir, err)
	}

	db.lookup = lookup.New[*data.Synset](db.index, db.data, db.morph, &lookup.Options{
		CacheSize: opts.CacheSize,
		Logger:    logger,
	})

	logger.Debug("opened database", "dir", dir)
	return db, nil
}

// Dir returns the database directory.
func (db *Database) Dir() string {
	return db.dir
}

// Synsets returns the synsets of the given categories containing wordForm.
// If no categories are given all categories are searched. If useMorphology
// is true synsets containing base forms of wordForm are also returned, after
// the exact matches of each category.
func (db *Database) Synsets(wordForm string, categories []pos.Category, useMorphology bool) ([]*data.Synset, error) {
	lemma, _, err := transform.String(db.folder(), wordForm)
	if err != nil {
		return nil, fmt.Errorf("folding %q: %w", wordForm, err)
	}
	if len(categories) == 0 {
		categories = pos.All
	}
	//nolint:wrapcheck // errors are wrapped by lookup.
	return db.lookup.Synsets(lemma, categories, useMorphology)
}

// Lines returns the lines of the sorted database file name, e.g.
// "index.sense", from the first line starting with lower through the last
// line starting with upper. If upper is empty it defaults to lower. Nil is
// returned if either prefix is not found.
func (db *Database) Lines(name, lower, upper string) ([]string, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFile, name)
	}
	if upper == "" {
		upper = lower
	}

	m, err := locate.OpenMulti(filepath.Join(db.dir, name))
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	defer m.Close()

	lines, err := m.Range(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return lines, nil
}

// Stats returns word form cache statistics.
func (db *Database) Stats() lookup.Stats {
	return db.lookup.Stats()
}

// Close closes the database files.
func (db *Database) Close() error {
	if db.index != nil {
		_ = db.index.Close()
	}
	if db.data != nil {
		_ = db.data.Close()
	}
	if db.morph != nil {
		_ = db.morph.Close()
	}
	return nil
}

var defaultDatabase = sync.OnceValues(func() (*Database, error) {
	return newDefault(os.Getenv, slog.Default())
})

// newDefault opens the database configured by the environment variables
// returned by getenv.
func newDefault(getenv func(string) string, logger *slog.Logger) (*Database, error) {
	dir := getenv(EnvDatabaseDir)
	if dir == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrNoDatabaseDir, EnvDatabaseDir)
	}
	return Open(dir, &Options{
		CacheSize: CacheSize(getenv(EnvCacheSize), logger),
		Logger:    logger,
	})
}

// Default returns the process wide Database. It is opened on first use from
// the directory named by the WORDNET_DATABASE_DIR environment variable with
// the cache size given by WORDNET_CACHE_WORD_FORMS. Later calls return the
// same Database, or the same error.
func Default() (*Database, error) {
	return defaultDatabase()
}
