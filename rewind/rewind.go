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

// Package rewind keeps a history of save states for a single savestate.Savable
// target. The target can be returned to any state in the history.
//
// Taking a snapshot while the current position is not the most recent entry
// discards the entries after the current position. When the history is full
// the oldest entry is forgotten.
package rewind

import (
	"bytes"
	"fmt"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/savestate"
)

// Sentinal error patterns.
const (
	OutOfRange = "rewind: entry %d is outside of history (%d entries)"
)

// DefaultMaxEntries is the history size used by NewRewind() when the
// requested size is less than one.
const DefaultMaxEntries = 100

// Rewind contains a history of save states for a target.
type Rewind struct {
	target savestate.Savable

	// circular array of entries. start is the index of the oldest entry
	entries [][]uint8
	start   int
	count   int

	// position of the current entry, relative to start
	curr int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The history is empty until Snapshot() or Reset() is called.
func NewRewind(target savestate.Savable, maxEntries int) *Rewind {
	if maxEntries < 1 {
		maxEntries = DefaultMaxEntries
	}
	return &Rewind{
		target:  target,
		entries: make([][]uint8, maxEntries),
		curr:    -1,
	}
}

func (r *Rewind) String() string {
	return fmt.Sprintf("rewind: %d of %d [max %d]", r.curr+1, r.count, len(r.entries))
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Current returns the position of the current entry. The oldest entry is zero.
// Returns -1 if the history is empty.
func (r *Rewind) Current() int {
	return r.curr
}

// Reset removes every entry and takes a snapshot of the target.
func (r *Rewind) Reset() error {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.start = 0
	r.count = 0
	r.curr = -1
	return r.Snapshot()
}

// Snapshot saves the target and appends the save state after the current
// position, which becomes the most recent entry.
func (r *Rewind) Snapshot() error {
	var buf bytes.Buffer
	if err := r.target.Save(&buf); err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	r.count = r.curr + 1
	if r.count == len(r.entries) {
		r.entries[r.start] = nil
		r.start = (r.start + 1) % len(r.entries)
		r.count--
	}

	r.entries[(r.start+r.count)%len(r.entries)] = buf.Bytes()
	r.count++
	r.curr = r.count - 1

	return nil
}

// Goto loads the numbered entry into the target. The entry becomes the
// current position.
func (r *Rewind) Goto(idx int) error {
	if idx < 0 || idx >= r.count {
		return curated.Errorf(OutOfRange, idx, r.count)
	}

	s := r.entries[(r.start+idx)%len(r.entries)]
	if err := r.target.Load(bytes.NewReader(s)); err != nil {
		return curated.Errorf("rewind: %v", err)
	}
	r.curr = idx

	return nil
}

// GotoLast loads the most recent entry into the target.
func (r *Rewind) GotoLast() error {
	return r.Goto(r.count - 1)
}

// Back loads the entry before the current position.
func (r *Rewind) Back() error {
	return r.Goto(r.curr - 1)
}

// Forward loads the entry after the current position.
func (r *Rewind) Forward() error {
	return r.Goto(r.curr + 1)
}
