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

// Package pos defines WordNet synset categories (parts of speech).
package pos

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory indicates an unrecognized category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a synset type. The numeric values match the ss_type numbers
// used in WordNet sense keys.
type Category int

const (
	// Noun is a noun synset.
	Noun Category = iota + 1

	// Verb is a verb synset.
	Verb

	// Adjective is a head adjective synset.
	Adjective

	// Adverb is an adverb synset.
	Adverb

	// AdjectiveSatellite is an adjective satellite synset. Satellites are
	// stored alongside head adjectives in the adjective files.
	AdjectiveSatellite
)

// All lists every category in sense key order.
var All = []Category{Noun, Verb, Adjective, Adverb, AdjectiveSatellite}

// String returns the category's name.
func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	case AdjectiveSatellite:
		return "adjective satellite"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Symbol returns the single letter used for the category in data files.
func (c Category) Symbol() byte {
	switch c {
	case Noun:
		return 'n'
	case Verb:
		return 'v'
	case Adjective:
		return 'a'
	case Adverb:
		return 'r'
	case AdjectiveSatellite:
		return 's'
	default:
		return '?'
	}
}

// FileSuffix returns the suffix of the database files holding the category,
// e.g. "noun" for data.noun and noun.exc.
func (c Category) FileSuffix() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective, AdjectiveSatellite:
		return "adj"
	case Adverb:
		return "adv"
	default:
		return ""
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= Noun && c <= AdjectiveSatellite
}

// FromSymbol returns the category for a data file ss_type letter.
func FromSymbol(b byte) (Category, error) {
	switch b {
	case 'n':
		return Noun, nil
	case 'v':
		return Verb, nil
	case 'a':
		return Adjective, nil
	case 'r':
		return Adverb, nil
	case 's':
		return AdjectiveSatellite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, b)
	}
}

// FromNumber returns the category for a sense key ss_type number.
func FromNumber(n int) (Category, error) {
	c := Category(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCategory, n)
	}
	return c, nil
}

// Parse parses a category name or symbol such as "noun", "n" or
// "adjective-satellite".
func Parse(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "adj", "adjective":
		return Adjective, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	case "s", "sat", "satellite", "adjective-satellite", "adjective satellite":
		return AdjectiveSatellite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}
