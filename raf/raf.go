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

// Package raf implements a buffered, line-oriented random access reader over
// a single file.
//
// A Reader has a single cursor and is not safe for concurrent use.
package raf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// EOF is returned by ReadNextCharacter when the cursor is at the end of the
// file.
const EOF = -1

// DefaultBufferSize is the size of the blocks read from the underlying file.
const DefaultBufferSize = 4096

// ErrInvalidOffset indicates a seek outside of [0, Size()].
var ErrInvalidOffset = errors.New("invalid offset")

// Reader is a buffered random access reader.
type Reader struct {
	r    io.ReaderAt
	size int64

	// pos is the cursor.
	pos int64

	// buf holds the file contents starting at bufOff. Blocks are aligned to
	// bufSize so that stepping backwards stays inside the same block.
	buf     []byte
	bufOff  int64
	bufSize int

	closeOnce sync.Once
}

// Open opens the file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	return New(f, fi.Size()), nil
}

// New returns a Reader reading size bytes from r. If r implements io.Closer
// it is closed by the Reader's Close method.
func New(r io.ReaderAt, size int64) *Reader {
	return &Reader{
		r:       r,
		size:    size,
		bufSize: DefaultBufferSize,
	}
}

// Size returns the total size of the file in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

// Pointer returns the current cursor offset.
func (r *Reader) Pointer() int64 {
	return r.pos
}

// Seek sets the cursor to offset. Seeking to Size() is valid and positions
// the cursor at the end of the file.
func (r *Reader) Seek(offset int64) error {
	if offset < 0 || offset > r.size {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, offset, r.size)
	}
	r.pos = offset
	return nil
}

// ReadNextCharacter returns the byte at the cursor and advances the cursor
// by one. At the end of the file it returns EOF and a nil error.
func (r *Reader) ReadNextCharacter() (int, error) {
	if r.pos >= r.size {
		return EOF, nil
	}
	if err := r.fill(); err != nil {
		return 0, err
	}
	c := r.buf[r.pos-r.bufOff]
	r.pos++
	return int(c), nil
}

// ReadLine reads from the cursor to the next line terminator or the end of
// the file and returns the text without the terminator. The cursor is left
// after the terminator. "\n", "\r\n" and "\r" are all treated as line
// terminators.
func (r *Reader) ReadLine() (string, error) {
	var line []byte
	for r.pos < r.size {
		if err := r.fill(); err != nil {
			return "", err
		}
		b := r.buf[r.pos-r.bufOff:]
		i := bytes.IndexAny(b, "\r\n")
		if i < 0 {
			line = append(line, b...)
			r.pos += int64(len(b))
			continue
		}
		line = append(line, b[:i]...)
		r.pos += int64(i) + 1
		if b[i] == '\r' {
			// Consume the "\n" of a "\r\n" pair.
			c, err := r.ReadNextCharacter()
			if err != nil {
				return "", err
			}
			if c != '\n' && c != EOF {
				r.pos--
			}
		}
		break
	}
	return string(line), nil
}

// fill makes sure the buffer holds the byte at the cursor. The cursor must
// be before the end of the file.
func (r *Reader) fill() error {
	if r.buf != nil && r.pos >= r.bufOff && r.pos < r.bufOff+int64(len(r.buf)) {
		return nil
	}
	if r.r == nil {
		return fmt.Errorf("reading at %d: %w", r.pos, os.ErrClosed)
	}

	bufSize := int64(r.bufSize)
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	off := r.pos - r.pos%bufSize
	n := bufSize
	if off+n > r.size {
		n = r.size - off
	}
	if cap(r.buf) < int(n) {
		r.buf = make([]byte, n)
	}
	r.buf = r.buf[:n]

	read, err := r.r.ReadAt(r.buf, off)
	// NOTE: ReaderAt may return io.EOF along with a full read of the last
	// block.
	if read < int(n) {
		r.buf = nil
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("reading at %d: %w", off, err)
	}
	r.bufOff = off
	return nil
}

// Close releases the underlying file. It is safe to call Close more than
// once, and on a Reader that never acquired a file. Errors from closing the
// file are discarded so Close always returns nil.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	r.closeOnce.Do(func() {
		if c, ok := r.r.(io.Closer); ok && c != nil {
			//nolint:errcheck // release errors are discarded.
			c.Close()
		}
		r.r = nil
		r.buf = nil
	})
	return nil
}
