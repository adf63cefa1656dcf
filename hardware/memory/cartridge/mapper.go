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

package cartridge

import (
	"fmt"

	"github.com/membank/membank/hardware/memory"
)

// Kind identifies the mapping scheme of a cartridge. The values are the iNES
// mapper numbers.
type Kind uint8

// List of supported kinds.
const (
	NROM  Kind = 0
	UxROM Kind = 2
	CNROM Kind = 3
)

func (k Kind) String() string {
	switch k {
	case NROM:
		return "NROM"
	case UxROM:
		return "UxROM"
	case CNROM:
		return "CNROM"
	}
	return fmt.Sprintf("mapper %d", uint8(k))
}

func (k Kind) supported() bool {
	switch k {
	case NROM, UxROM, CNROM:
		return true
	}
	return false
}

// prgWindow returns the PRG bank visible at the CPU address. The address
// must be $8000 or above.
//
// the upper window is always the last bank for the supported kinds. for a
// 16KB NROM image that is the same bank as the lower window
func (cart *Cartridge) prgWindow(addr uint16) *memory.Memory {
	if addr >= OriginPRGHigh {
		return cart.prg.Last()
	}

	switch cart.kind {
	case UxROM:
		return cart.prg.Select(cart.prgBank)
	}

	return cart.prg.Get(0)
}

// registerWrite handles a CPU write to the ROM area. Bank numbers are reduced
// modulo the number of banks.
func (cart *Cartridge) registerWrite(data uint8) {
	switch cart.kind {
	case UxROM:
		cart.prgBank = int(data) % cart.prg.Len()
	case CNROM:
		cart.chrBank = int(data) % cart.chr.Len()
	}
}
