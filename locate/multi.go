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

package locate

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-wordnet/raf"
)

// MultiLocator returns runs of lines from a sorted file.
type MultiLocator struct {
	l *Locator
}

// OpenMulti opens the file at path and returns a MultiLocator for it.
func OpenMulti(path string) (*MultiLocator, error) {
	l, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &MultiLocator{l: l}, nil
}

// NewMulti returns a new MultiLocator reading from r. The MultiLocator takes
// ownership of r and releases it on Close.
func NewMulti(r *raf.Reader) *MultiLocator {
	return &MultiLocator{l: New(r)}
}

// Lines returns all consecutive lines that start with prefix in file order.
func (m *MultiLocator) Lines(prefix string) ([]string, error) {
	return m.Range(prefix, prefix)
}

// Range returns every line from the first line starting with lower through
// the last line starting with upper, inclusive, in file order. Lines in
// between are returned whether or not they match either prefix. If either
// prefix matches no line the result is empty.
func (m *MultiLocator) Range(lower, upper string) ([]string, error) {
	r := m.l.Reader()

	_, found, err := m.l.Line(lower)
	if err != nil || !found {
		return nil, err
	}
	start := m.l.MatchStart()

	_, found, err = m.l.Line(upper)
	if err != nil || !found {
		return nil, err
	}

	// Walk to the end of upper's match group.
	end := r.Pointer()
	for end < r.Size() {
		line, err := r.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("reading line at %d: %w", end, err)
		}
		if !strings.HasPrefix(line, upper) {
			break
		}
		end = r.Pointer()
	}

	if err := r.Seek(start); err != nil {
		return nil, err
	}
	var lines []string
	for r.Pointer() < end {
		line, err := r.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("reading line at %d: %w", r.Pointer(), err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Size returns the size of the file.
func (m *MultiLocator) Size() int64 {
	return m.l.Size()
}

// Close releases the underlying file.
func (m *MultiLocator) Close() error {
	return m.l.Close()
}
