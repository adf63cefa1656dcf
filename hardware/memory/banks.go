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

	"github.com/membank/membank/savestate"
)

// Bank is the set of capabilities required of a bank in a Banks collection.
// *Memory satisfies Bank[*Memory].
type Bank[T any] interface {
	ReadWriter
	Bankable[T]
	savestate.Savable
}

// Banks is an ordered collection of banks, created by partitioning a larger
// source. The banks are copies and are independent of the source.
//
// A mapper keeps the index of the currently selected bank and routes reads and
// writes through Get() or Select(). The collection never changes shape after
// it has been created.
type Banks[T Bank[T]] struct {
	banks []T

	// the bank size requested when the collection was created, or the size of
	// the first bank after a save state has been loaded. the final bank may be
	// shorter than this
	size int

	// creates banks when a save state has more banks than the collection
	empty func() T
}

// NewBanks partitions source into banks of the given size. Every bank is
// size bytes long except for the final bank, which holds any remainder. A size
// of zero or less results in an empty collection.
func NewBanks[T Bank[T]](source T, size int) *Banks[T] {
	b := &Banks[T]{
		size:  max(size, 0),
		empty: source.Empty,
	}
	if !source.IsEmpty() {
		b.banks = source.Chunks(size)
	}
	return b
}

func (b *Banks[T]) String() string {
	return fmt.Sprintf("%d banks of %s", len(b.banks), formatSize(b.size))
}

// Len returns the number of banks.
func (b *Banks[T]) Len() int {
	return len(b.banks)
}

// IsEmpty returns true if there are no banks.
func (b *Banks[T]) IsEmpty() bool {
	return len(b.banks) == 0
}

// Size returns the nominal bank size. This is the size requested when the
// collection was created or, after a save state has been loaded, the size of
// the first bank.
func (b *Banks[T]) Size() int {
	return b.size
}

// Get returns the bank at index i. An index out of range is a programming
// error and will panic. Use Select() for an index that needs to be reduced to
// the number of banks.
func (b *Banks[T]) Get(i int) T {
	return b.banks[i]
}

// Select returns the bank at index i modulo the number of banks. Negative
// indexes count back from the final bank. Selecting from an empty collection
// panics.
func (b *Banks[T]) Select(i int) T {
	n := len(b.banks)
	if n == 0 {
		panic(fmt.Sprintf("memory: selecting bank %d from an empty collection", i))
	}
	return b.banks[((i%n)+n)%n]
}

// Last returns the final bank. Panics if the collection is empty.
func (b *Banks[T]) Last() T {
	return b.Select(-1)
}

// All returns the banks in index order. The returned slice is a copy but the
// banks in it are not.
func (b *Banks[T]) All() []T {
	c := make([]T, len(b.banks))
	copy(c, b.banks)
	return c
}

// Flat locates addr in the concatenation of every bank. The address is reduced
// modulo the combined length of the banks, so the image is mirrored as a
// whole even if the final bank is short. Returns the bank and the offset into
// that bank. Panics if the collection is empty.
func (b *Banks[T]) Flat(addr uint) (T, uint) {
	if len(b.banks) == 0 {
		panic(fmt.Sprintf("memory: flat address %#x in an empty collection", addr))
	}

	var total uint
	for _, bank := range b.banks {
		total += uint(bank.Len())
	}
	if total == 0 {
		return b.banks[0], 0
	}

	addr %= total
	for _, bank := range b.banks {
		l := uint(bank.Len())
		if addr < l {
			return bank, addr
		}
		addr -= l
	}

	// unreachable because addr is less than total
	return b.banks[len(b.banks)-1], addr
}
