// This file is part of Membank.
//
// Membank is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Membank is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Membank.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"errors"
	"fmt"
)

// ErrCapped is returned by CappedWriter once its capacity has been reached.
var ErrCapped = errors.New("capped writer is full")

// CappedWriter is an implementation of io.Writer that fails once a predefined
// size is reached. Bytes up to the cap are buffered and can be inspected.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type. A size of zero creates a writer that fails on the first
// non-empty write.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *CappedWriter) String() string {
	return string(r.buffer)
}

// Bytes returns the buffered output.
func (r *CappedWriter) Bytes() []byte {
	return r.buffer
}

// Reset empties the writer's buffer.
func (r *CappedWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements io.Writer. A short write always returns ErrCapped.
func (r *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := r.size - len(r.buffer)

	if len(p) <= remaining {
		r.buffer = append(r.buffer, p...)
		return len(p), nil
	}

	r.buffer = append(r.buffer, p[:remaining]...)
	return remaining, ErrCapped
}
