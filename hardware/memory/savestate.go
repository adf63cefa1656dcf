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
	"io"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/logger"
	"github.com/membank/membank/savestate"
)

// Save implements the savestate.Savable interface. The store is written as a
// payload followed by the writable flag.
func (m *Memory) Save(w io.Writer) error {
	if err := savestate.WriteBytes(w, m.data); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	if err := savestate.WriteBool(w, m.writable); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	return nil
}

// Load implements the savestate.Savable interface. The contents and the
// writable flag of the store are replaced. If the length recorded in the save
// state is different to the current length then the store is resized.
//
// The store is unchanged if an error is returned.
func (m *Memory) Load(r io.Reader) error {
	data, err := savestate.ReadBytes(r)
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}
	writable, err := savestate.ReadBool(r)
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}

	if len(m.data) > 0 && len(data) != len(m.data) {
		logger.Logf(logger.Allow, "memory", "save state resizes memory from %d to %d bytes", len(m.data), len(data))
	}

	m.data = data
	m.writable = writable

	return nil
}

// Save implements the savestate.Savable interface. The number of banks is
// written first, then each bank in index order.
func (b *Banks[T]) Save(w io.Writer) error {
	if err := savestate.WriteUint32(w, uint32(len(b.banks))); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	for i := range b.banks {
		if err := b.banks[i].Save(w); err != nil {
			return err
		}
	}
	return nil
}

// Load implements the savestate.Savable interface. The collection is replaced
// by the banks in the save state, which may have a different number of banks
// or banks of a different length.
//
// The collection is unchanged if an error is returned.
func (b *Banks[T]) Load(r io.Reader) error {
	n, err := savestate.ReadUint32(r)
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}

	// n is unvalidated so the slice grows as banks are decoded
	var banks []T
	for i := uint32(0); i < n; i++ {
		bank := b.empty()
		if err := bank.Load(r); err != nil {
			return err
		}
		banks = append(banks, bank)
	}

	if len(banks) != len(b.banks) {
		logger.Logf(logger.Allow, "memory", "save state resizes collection from %d to %d banks", len(b.banks), len(banks))
	}

	b.banks = banks
	if len(banks) > 0 {
		b.size = banks[0].Len()
	}

	return nil
}
