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

// Package memory implements the addressable memory of the emulated hardware.
//
// The Memory type is a byte store with mirrored addressing and a writable
// flag. Stores with contents supplied by the caller (a ROM image for example)
// are created with FromBytes() or ROMFromBytes(). Stores without initial
// contents are created by an Allocator, which fills them with random values or
// with zero according to the hardware preferences.
//
// The Reader and Writer interfaces are implemented by Memory and by every
// cartridge mapper, so that the CPU and PPU can address any of them in the
// same way. Unmapped is the default implementation and can be embedded.
//
// Bank switching cartridges divide their ROM into equally sized banks. The
// Banks type is created from a source store by NewBanks() and the mapper then
// selects a bank by index:
//
//	prg := memory.NewBanks(memory.ROMFromBytes(image), 0x4000)
//	v := prg.Select(bank).Read(addr & 0x3fff)
//
// Memory and Banks both implement savestate.Savable.
package memory
