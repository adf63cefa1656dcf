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
	"github.com/membank/membank/hardware/preferences"
)

// Allocator creates stores whose initial contents are not supplied by the
// caller. Real RAM powers on in an unknown state and the RandomState
// preference decides whether that is emulated with random values or whether
// the store is zeroed.
type Allocator struct {
	prefs *preferences.Preferences
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type. If prefs is nil then all allocated memory is zeroed.
func NewAllocator(prefs *preferences.Preferences) *Allocator {
	return &Allocator{prefs: prefs}
}

// New returns a writable store of the given capacity. A capacity of zero or
// less returns an empty store.
func (a *Allocator) New(capacity int) *Memory {
	m := &Memory{
		data:     make([]uint8, max(capacity, 0)),
		writable: true,
	}

	if a.prefs != nil && a.prefs.RandomState.Get().(bool) {
		a.prefs.Random.Fill(m.data)
	}

	return m
}

// RAM is the same as New.
func (a *Allocator) RAM(capacity int) *Memory {
	return a.New(capacity)
}

// ROM returns a read-only store of the given capacity. The contents are
// initialised in the same way as New.
func (a *Allocator) ROM(capacity int) *Memory {
	m := a.New(capacity)
	m.writable = false
	return m
}
