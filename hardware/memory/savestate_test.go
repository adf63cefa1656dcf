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

package memory_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/hardware/memory"
	"github.com/membank/membank/savestate"
	"github.com/membank/membank/test"
)

// contents reads every byte of a store.
func contents(m *memory.Memory) []uint8 {
	d := make([]uint8, m.Len())
	for i := range d {
		d[i] = m.PeekWide(uint(i))
	}
	return d
}

func TestMemorySaveEncoding(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, memory.FromBytes([]uint8{0xaa, 0xbb}).Save(&buf))
	test.DemandBytes(t, buf.Bytes(), []uint8{0x00, 0x00, 0x00, 0x02, 0xaa, 0xbb, 0x01})

	buf.Reset()
	test.DemandSuccess(t, memory.ROMFromBytes(nil).Save(&buf))
	test.DemandBytes(t, buf.Bytes(), []uint8{0x00, 0x00, 0x00, 0x00, 0x00})
}

func TestMemoryRoundTrip(t *testing.T) {
	stores := []*memory.Memory{
		memory.New(),
		memory.FromBytes(sequence(1)),
		memory.FromBytes(sequence(300)),
		memory.ROMFromBytes(sequence(64)),
	}

	for i, m := range stores {
		var buf bytes.Buffer
		test.DemandSuccess(t, m.Save(&buf), i)

		// loading into a store of a different length and permission
		n := memory.FromBytes(make([]uint8, 7))
		test.DemandSuccess(t, n.Load(&buf), i)
		test.ExpectEquality(t, n.Len(), m.Len(), i)
		test.ExpectEquality(t, n.Writable(), m.Writable(), i)
		test.DemandBytes(t, contents(n), contents(m), i)
		test.ExpectEquality(t, buf.Len(), 0, i)
	}
}

func TestMemoryLoadResize(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, memory.FromBytes(sequence(16)).Save(&buf))

	m := memory.FromBytes(make([]uint8, 4))
	test.DemandSuccess(t, m.Load(&buf))
	test.ExpectEquality(t, m.Len(), 16)
	test.ExpectEquality(t, m.Read(17), uint8(1))
}

func TestMemoryLoadTruncated(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, memory.FromBytes(sequence(8)).Save(&buf))
	full := buf.Bytes()

	for l := 0; l < len(full); l++ {
		m := memory.ROMFromBytes([]uint8{1, 2, 3})
		err := m.Load(bytes.NewReader(full[:l]))
		test.ExpectFailure(t, err, l)
		test.ExpectSuccess(t, curated.Has(err, savestate.Truncated), l)

		// a failed load leaves the store as it was
		test.ExpectEquality(t, m.Len(), 3, l)
		test.ExpectFailure(t, m.Writable(), l)
		test.DemandBytes(t, contents(m), []uint8{1, 2, 3}, l)
	}
}

func TestMemoryLoadMalformed(t *testing.T) {
	m := memory.New()
	err := m.Load(bytes.NewReader([]uint8{0x00, 0x00, 0x00, 0x01, 0x10, 0x07}))
	test.ExpectSuccess(t, curated.Has(err, savestate.Malformed))
	test.ExpectEquality(t, m.Len(), 0)
}

func TestMemorySaveFailure(t *testing.T) {
	for size := 0; size < 7; size++ {
		w, err := test.NewCappedWriter(size)
		test.DemandSuccess(t, err)
		err = memory.FromBytes([]uint8{1, 2}).Save(w)
		test.ExpectSuccess(t, curated.Has(err, savestate.WriteError), size)
		test.ExpectSuccess(t, errors.Is(err, test.ErrCapped), size)
	}
}

func TestBanksRoundTrip(t *testing.T) {
	b := memory.NewBanks(memory.FromBytes(sequence(10)), 4)
	b.Get(0).Write(3, 0x99)
	b.Get(2).Write(0, 0x88)

	var buf bytes.Buffer
	test.DemandSuccess(t, b.Save(&buf))

	// count followed by 3 banks of payload and flag
	test.ExpectEquality(t, buf.Len(), 4+(4+4+1)+(4+4+1)+(4+2+1))
	test.DemandBytes(t, buf.Bytes()[:4], []uint8{0x00, 0x00, 0x00, 0x03})

	c := memory.NewBanks(memory.FromBytes(make([]uint8, 12)), 4)
	test.DemandSuccess(t, c.Load(&buf))
	test.DemandEquality(t, c.Len(), b.Len())
	test.ExpectEquality(t, c.Size(), b.Size())
	for i := 0; i < b.Len(); i++ {
		test.DemandBytes(t, contents(c.Get(i)), contents(b.Get(i)), i)
	}

	// the short final bank has been resized from 4 bytes
	test.ExpectEquality(t, c.Get(2).Len(), 2)
	test.ExpectEquality(t, c.Get(0).Read(3), uint8(0x99))
	test.ExpectEquality(t, c.Get(2).Read(0), uint8(0x88))
}

func TestBanksLoadResize(t *testing.T) {
	var buf bytes.Buffer
	src := memory.NewBanks(memory.FromBytes(sequence(10)), 4)
	test.DemandSuccess(t, src.Save(&buf))
	state := buf.Bytes()

	// growing a collection of 2 banks to 3
	c := memory.NewBanks(memory.ROMFromBytes(make([]uint8, 8)), 4)
	test.DemandSuccess(t, c.Load(bytes.NewReader(state)))
	test.DemandEquality(t, c.Len(), 3)
	test.ExpectEquality(t, c.Size(), 4)
	for i := 0; i < src.Len(); i++ {
		test.DemandBytes(t, contents(c.Get(i)), contents(src.Get(i)), i)
		test.ExpectSuccess(t, c.Get(i).Writable(), i)
	}
	test.ExpectEquality(t, c.Select(4).Read(1), uint8(5))

	// shrinking a collection of 4 banks to 3
	c = memory.NewBanks(memory.FromBytes(make([]uint8, 32)), 8)
	test.DemandSuccess(t, c.Load(bytes.NewReader(state)))
	test.DemandEquality(t, c.Len(), 3)
	test.ExpectEquality(t, c.Size(), 4)
	test.ExpectEquality(t, c.Last().Len(), 2)

	// growing an empty collection
	c = memory.NewBanks(memory.New(), 4)
	test.DemandSuccess(t, c.Load(bytes.NewReader(state)))
	test.DemandEquality(t, c.Len(), 3)
	test.ExpectEquality(t, c.Get(1).Read(0), uint8(4))

	// shrinking to an empty collection keeps the nominal size
	buf.Reset()
	test.DemandSuccess(t, memory.NewBanks(memory.New(), 4).Save(&buf))
	test.DemandSuccess(t, c.Load(&buf))
	test.ExpectSuccess(t, c.IsEmpty())
	test.ExpectEquality(t, c.Size(), 4)
}

func TestBanksLoadTruncated(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, memory.NewBanks(memory.FromBytes(sequence(12)), 4).Save(&buf))
	full := buf.Bytes()

	for l := 0; l < len(full); l++ {
		c := memory.NewBanks(memory.FromBytes(make([]uint8, 8)), 4)
		err := c.Load(bytes.NewReader(full[:l]))
		test.ExpectSuccess(t, curated.Has(err, savestate.Truncated), l)

		// a failed load leaves the collection as it was
		test.DemandEquality(t, c.Len(), 2, l)
		test.ExpectEquality(t, c.Get(0).Read(0), uint8(0), l)
		test.ExpectEquality(t, c.Get(1).Len(), 4, l)
	}

	// a bank count that the stream cannot satisfy
	c := memory.NewBanks(memory.FromBytes(make([]uint8, 8)), 4)
	err := c.Load(bytes.NewReader([]uint8{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x01}))
	test.ExpectSuccess(t, curated.Has(err, savestate.Truncated))
	test.ExpectEquality(t, c.Len(), 2)
}

func TestBanksEmptyRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, memory.NewBanks(memory.New(), 0x2000).Save(&buf))
	test.DemandBytes(t, buf.Bytes(), []uint8{0, 0, 0, 0})

	c := memory.NewBanks(memory.New(), 0x1000)
	test.DemandSuccess(t, c.Load(&buf))
	test.ExpectEquality(t, c.Size(), 0x1000)
	test.ExpectSuccess(t, c.IsEmpty())
}
