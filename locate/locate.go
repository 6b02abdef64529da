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

// Locator performs a binary search over a file whose lines are sorted by
// byte value.
type Locator struct {
	r *raf.Reader

	// start is the offset of the line last returned by Line.
	start int64
}

// Open opens the file at path and returns a Locator for it.
func Open(path string) (*Locator, error) {
	r, err := raf.Open(path)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

// New returns a new Locator reading from r. The Locator takes ownership of r
// and releases it on Close.
func New(r *raf.Reader) *Locator {
	return &Locator{r: r}
}

// Line returns the first line in the file that is equal to key or has key
// as a prefix. If no line matches, found is false. After a successful search
// the file pointer is positioned directly after the returned line.
func (l *Locator) Line(key string) (string, bool, error) {
	low, high := int64(0), l.r.Size()
	for low < high {
		mid := (low + high) / 2
		start, err := alignedStart(l.r, mid)
		if err != nil {
			return "", false, err
		}
		if start >= high {
			// No line starts in [mid, high).
			high = mid
			continue
		}

		line, err := l.r.ReadLine()
		if err != nil {
			return "", false, fmt.Errorf("reading line at %d: %w", start, err)
		}

		switch {
		case strings.HasPrefix(line, key):
			return l.first(key, start)
		case key < line:
			high = mid
		default:
			low = l.r.Pointer()
		}
	}
	return "", false, nil
}

// first walks backwards from the matching line at start to the first line of
// its match group and returns that line.
func (l *Locator) first(key string, start int64) (string, bool, error) {
	for start > 0 {
		prev, err := previousStart(l.r, start)
		if err != nil {
			return "", false, err
		}
		if err := l.r.Seek(prev); err != nil {
			return "", false, err
		}
		line, err := l.r.ReadLine()
		if err != nil {
			return "", false, fmt.Errorf("reading line at %d: %w", prev, err)
		}
		if !strings.HasPrefix(line, key) {
			break
		}
		start = prev
	}

	if err := l.r.Seek(start); err != nil {
		return "", false, err
	}
	line, err := l.r.ReadLine()
	if err != nil {
		return "", false, fmt.Errorf("reading line at %d: %w", start, err)
	}
	l.start = start
	return line, true, nil
}

// MatchStart returns the offset of the line last returned by Line.
func (l *Locator) MatchStart() int64 {
	return l.start
}

// Pointer returns the current file pointer.
func (l *Locator) Pointer() int64 {
	return l.r.Pointer()
}

// Size returns the size of the file.
func (l *Locator) Size() int64 {
	return l.r.Size()
}

// Reader returns the underlying reader.
func (l *Locator) Reader() *raf.Reader {
	return l.r
}

// Close releases the underlying file.
func (l *Locator) Close() error {
	return l.r.Close()
}

// alignedStart positions r at the first line that starts at or after off and
// returns that line's offset. If no line starts at or after off the file size
// is returned.
func alignedStart(r *raf.Reader, off int64) (int64, error) {
	if off == 0 {
		return 0, r.Seek(0)
	}
	// Reading the remainder of the line containing off-1 lands on a line
	// boundary even if off itself is the start of a line.
	if err := r.Seek(off - 1); err != nil {
		return 0, err
	}
	if _, err := r.ReadLine(); err != nil {
		return 0, fmt.Errorf("aligning to line at %d: %w", off, err)
	}
	return r.Pointer(), nil
}

// previousStart returns the offset of the line that ends directly before
// the line starting at start. start must be greater than zero.
func previousStart(r *raf.Reader, start int64) (int64, error) {
	// Skip the previous line's terminator.
	end := start - 1
	if end > 0 {
		c, err := charAt(r, end)
		if err != nil {
			return 0, err
		}
		if c == '\n' {
			p, err := charAt(r, end-1)
			if err != nil {
				return 0, err
			}
			if p == '\r' {
				end--
			}
		}
	}

	for i := end - 1; i >= 0; i-- {
		c, err := charAt(r, i)
		if err != nil {
			return 0, err
		}
		if c == '\n' || c == '\r' {
			return i + 1, nil
		}
	}
	return 0, nil
}

func charAt(r *raf.Reader, off int64) (int, error) {
	if err := r.Seek(off); err != nil {
		return 0, err
	}
	c, err := r.ReadNextCharacter()
	if err != nil {
		return 0, fmt.Errorf("reading at %d: %w", off, err)
	}
	return c, nil
}
