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

package rewind_test

import (
	"errors"
	"io"
	"testing"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/hardware/memory"
	"github.com/membank/membank/rewind"
	"github.com/membank/membank/savestate"
	"github.com/membank/membank/test"
)

func TestRewind(t *testing.T) {
	m := memory.FromBytes(make([]uint8, 4))
	r := rewind.NewRewind(m, 10)
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, r.Current(), -1)

	test.DemandSuccess(t, r.Reset())
	for v := uint8(1); v <= 4; v++ {
		m.Write(0, v)
		test.DemandSuccess(t, r.Snapshot())
	}
	test.ExpectEquality(t, r.Len(), 5)
	test.ExpectEquality(t, r.String(), "rewind: 5 of 5 [max 10]")

	test.DemandSuccess(t, r.Goto(2))
	test.ExpectEquality(t, m.Read(0), uint8(2))
	test.DemandSuccess(t, r.Back())
	test.ExpectEquality(t, m.Read(0), uint8(1))
	test.DemandSuccess(t, r.Forward())
	test.ExpectEquality(t, m.Read(0), uint8(2))
	test.ExpectEquality(t, r.Current(), 2)

	// a snapshot from an earlier position discards the later entries
	m.Write(0, 0x20)
	test.DemandSuccess(t, r.Snapshot())
	test.ExpectEquality(t, r.Len(), 4)
	test.ExpectFailure(t, r.Forward())

	test.DemandSuccess(t, r.Goto(0))
	test.ExpectEquality(t, m.Read(0), uint8(0))
	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, m.Read(0), uint8(0x20))

	err := r.Goto(4)
	test.ExpectSuccess(t, curated.Is(err, rewind.OutOfRange))
	test.ExpectEquality(t, err.Error(), "rewind: entry 4 is outside of history (4 entries)")
}

func TestRewindLimit(t *testing.T) {
	m := memory.FromBytes(make([]uint8, 1))
	r := rewind.NewRewind(m, 3)
	for v := uint8(0); v < 7; v++ {
		m.Write(0, v)
		test.DemandSuccess(t, r.Snapshot())
		test.ExpectEquality(t, r.Len(), min(int(v)+1, 3), v)
	}

	// oldest entries have been forgotten
	test.DemandSuccess(t, r.Goto(0))
	test.ExpectEquality(t, m.Read(0), uint8(4))
	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, m.Read(0), uint8(6))

	test.ExpectEquality(t, rewind.NewRewind(m, 0).String(), "rewind: 0 of 0 [max 100]")
}

func TestRewindEmpty(t *testing.T) {
	r := rewind.NewRewind(memory.New(), 5)
	test.ExpectSuccess(t, curated.Is(r.GotoLast(), rewind.OutOfRange))
	test.ExpectSuccess(t, curated.Is(r.Back(), rewind.OutOfRange))
}

// failing is a savestate.Savable that cannot be saved.
type failing struct{}

func (failing) Save(_ io.Writer) error {
	return curated.Errorf(savestate.WriteError, io.ErrClosedPipe)
}

func (failing) Load(_ io.Reader) error {
	return nil
}

func TestRewindSaveFailure(t *testing.T) {
	r := rewind.NewRewind(failing{}, 5)
	err := r.Reset()
	test.ExpectSuccess(t, curated.Has(err, savestate.WriteError))
	test.ExpectSuccess(t, errors.Is(err, io.ErrClosedPipe))
	test.ExpectEquality(t, r.Len(), 0)
}
