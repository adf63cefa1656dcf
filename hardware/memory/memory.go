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

package memory

import (
	"fmt"

	"github.com/membank/membank/logger"
)

// Memory is a byte addressable store. The length of the store never changes
// except when a save state of a different length is loaded.
//
// Addresses larger than the store wrap around (addr modulo length). This is
// how hardware with fewer address lines than the bus behaves: the memory is
// mirrored across the address window. A store of length zero reads as zero.
//
// A read-only store (ROM) silently ignores writes, as the hardware decoder
// does.
type Memory struct {
	data     []uint8
	writable bool
}

// New returns a writable store of length zero.
func New() *Memory {
	return &Memory{writable: true}
}

// FromBytes returns a writable store containing a copy of data.
func FromBytes(data []uint8) *Memory {
	m := &Memory{
		data:     make([]uint8, len(data)),
		writable: true,
	}
	copy(m.data, data)
	return m
}

// RAMFromBytes is the same as FromBytes.
func RAMFromBytes(data []uint8) *Memory {
	return FromBytes(data)
}

// ROMFromBytes returns a read-only store containing a copy of data.
func ROMFromBytes(data []uint8) *Memory {
	m := FromBytes(data)
	m.writable = false
	return m
}

// Clone returns a deep copy of the store.
func (m *Memory) Clone() *Memory {
	c := FromBytes(m.data)
	c.writable = m.writable
	return c
}

func (m *Memory) String() string {
	if m.writable {
		return fmt.Sprintf("RAM: %s", formatSize(len(m.data)))
	}
	return fmt.Sprintf("ROM: %s", formatSize(len(m.data)))
}

// Len returns the number of bytes in the store.
func (m *Memory) Len() int {
	return len(m.data)
}

// IsEmpty returns true if the store has a length of zero.
func (m *Memory) IsEmpty() bool {
	return len(m.data) == 0
}

// Writable returns false if the store is ROM.
func (m *Memory) Writable() bool {
	return m.writable
}

// Read implements the Reader interface.
func (m *Memory) Read(addr uint16) uint8 {
	return m.PeekWide(uint(addr))
}

// ReadWide implements the Reader interface.
func (m *Memory) ReadWide(addr uint) uint8 {
	return m.PeekWide(addr)
}

// Peek implements the Reader interface.
func (m *Memory) Peek(addr uint16) uint8 {
	return m.PeekWide(uint(addr))
}

// PeekWide implements the Reader interface.
func (m *Memory) PeekWide(addr uint) uint8 {
	if len(m.data) == 0 {
		return 0
	}
	return m.data[addr%uint(len(m.data))]
}

// Write implements the Writer interface.
func (m *Memory) Write(addr uint16, data uint8) {
	m.WriteWide(uint(addr), data)
}

// WriteWide implements the Writer interface.
func (m *Memory) WriteWide(addr uint, data uint8) {
	if !m.writable || len(m.data) == 0 {
		return
	}
	m.data[addr%uint(len(m.data))] = data
}

// Empty implements the Bankable interface. The new store has the same
// writability as m.
func (m *Memory) Empty() *Memory {
	return &Memory{writable: m.writable}
}

// Chunks implements the Bankable interface. Every chunk has the same
// writability as the store.
func (m *Memory) Chunks(size int) []*Memory {
	if size <= 0 {
		logger.Logf(logger.Allow, "memory", "bank size of %d produces no banks", size)
		return nil
	}

	chunks := make([]*Memory, 0, (len(m.data)+size-1)/size)
	for i := 0; i < len(m.data); i += size {
		c := FromBytes(m.data[i:min(i+size, len(m.data))])
		c.writable = m.writable
		chunks = append(chunks, c)
	}

	return chunks
}

// formatSize returns the size in KB if it is a whole number of kilobytes.
func formatSize(n int) string {
	if n > 0 && n%1024 == 0 {
		return fmt.Sprintf("%dKB", n/1024)
	}
	return fmt.Sprintf("%d bytes", n)
}
