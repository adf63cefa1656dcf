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

// Package cartridge implements the cartridge mappers supported by the
// emulator. A mapper decides which bank of cartridge memory is visible at an
// address and how writes to the cartridge change that decision.
//
// The set of mappers is closed. The Cartridge type holds a Kind tag and the
// state used by every kind, and the read/write functions switch on the tag.
// Supported kinds and their iNES mapper numbers:
//
//	NROM	0
//	UxROM	2
//	CNROM	3
//
// The Cartridge type is addressed by the CPU. The PPU addresses the CHR
// memory through the type returned by the PPU() function. Both implement
// memory.ReadWriter.
//
// Cartridge memory is a memory.Banks collection for PRG and for CHR, plus
// 8KB of PRG-RAM. Images without CHR data are given 8KB of CHR-RAM instead.
package cartridge
