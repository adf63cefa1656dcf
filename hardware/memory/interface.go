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

// Reader defines the read operations for anything that can be addressed by
// the emulated hardware. Memory stores and cartridge mappers both implement
// it.
//
// Read() is the access made by the emulated hardware. Peek() is an inspection
// of the same address, by a debugger for example, and must never have side
// effects. The two return the same value for a plain memory store but a mapper
// with registers may choose to differ.
//
// The Wide variants take an address that is not limited to the 16 bit address
// bus. They are used when an address has already been translated into an
// offset into a large memory, a ROM image for example.
type Reader interface {
	Read(addr uint16) uint8
	ReadWide(addr uint) uint8
	Peek(addr uint16) uint8
	PeekWide(addr uint) uint8
}

// Writer defines the write operations for anything that can be addressed by
// the emulated hardware. See Reader for an explanation of the Wide variant.
type Writer interface {
	Write(addr uint16, data uint8)
	WriteWide(addr uint, data uint8)
}

// ReadWriter combines the Reader and Writer interfaces.
type ReadWriter interface {
	Reader
	Writer
}

// Bankable is implemented by storage that can be partitioned into banks of T.
// The partitioning happens once, when the owning mapper is created.
type Bankable[T any] interface {
	// Chunks returns copies of consecutive size byte regions. The final chunk
	// may be shorter than size. A size of zero or less returns no chunks.
	Chunks(size int) []T

	// Empty returns a new instance with no contents. Used when a save state
	// adds banks to a collection.
	Empty() T

	Len() int
	IsEmpty() bool
}

// Unmapped is the default implementation of the ReadWriter interface. All
// reads return zero and all writes are ignored. Types that only implement
// part of the ReadWriter interface can embed Unmapped to complete it.
type Unmapped struct{}

// Read implements the Reader interface.
func (Unmapped) Read(_ uint16) uint8 {
	return 0
}

// ReadWide implements the Reader interface.
func (Unmapped) ReadWide(_ uint) uint8 {
	return 0
}

// Peek implements the Reader interface.
func (Unmapped) Peek(_ uint16) uint8 {
	return 0
}

// PeekWide implements the Reader interface.
func (Unmapped) PeekWide(_ uint) uint8 {
	return 0
}

// Write implements the Writer interface.
func (Unmapped) Write(_ uint16, _ uint8) {
}

// WriteWide implements the Writer interface.
func (Unmapped) WriteWide(_ uint, _ uint8) {
}
