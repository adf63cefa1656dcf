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
	"strings"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/hardware/memory"
	"github.com/membank/membank/logger"
)

// Sentinal error patterns.
const (
	UnsupportedMapper = "cartridge: unsupported mapper (%d)"
	MissingPRG        = "cartridge: image has no PRG data"
)

const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000
	prgRAMSize  = 0x2000
	chrRAMSize  = 0x2000
)

// CPU address windows.
const (
	OriginPRGRAM  = 0x6000
	OriginPRG     = 0x8000
	OriginPRGHigh = 0xc000
)

// Cartridge is the CPU's view of the cartridge. It implements the
// memory.ReadWriter interface.
//
// The PRG image is ROM so the cartridge has no WriteWide() of its own. The
// implementation in memory.Unmapped ignores the write.
type Cartridge struct {
	memory.Unmapped

	kind Kind

	prg *memory.Banks[*memory.Memory]
	chr *memory.Banks[*memory.Memory]
	ram *memory.Memory

	// chr banks were allocated rather than taken from the image
	chrRAM bool

	// bank selection registers. not every kind uses both
	prgBank int
	chrBank int

	ppu *PPU
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The mapperID is the iNES mapper number. PRG-RAM and, if chr is empty,
// CHR-RAM are created by the allocator. If alloc is nil the RAM is zeroed.
func NewCartridge(mapperID uint8, prg []uint8, chr []uint8, alloc *memory.Allocator) (*Cartridge, error) {
	kind := Kind(mapperID)
	if !kind.supported() {
		return nil, curated.Errorf(UnsupportedMapper, mapperID)
	}

	if len(prg) == 0 {
		return nil, curated.Errorf(MissingPRG)
	}

	if alloc == nil {
		alloc = memory.NewAllocator(nil)
	}

	cart := &Cartridge{
		kind: kind,
		prg:  memory.NewBanks(memory.ROMFromBytes(prg), prgBankSize),
		ram:  alloc.RAM(prgRAMSize),
	}

	if len(chr) == 0 {
		logger.Logf(logger.Allow, "cartridge", "no CHR data in image. using %dKB of CHR-RAM", chrRAMSize/1024)
		cart.chr = memory.NewBanks(alloc.RAM(chrRAMSize), chrBankSize)
		cart.chrRAM = true
	} else {
		cart.chr = memory.NewBanks(memory.ROMFromBytes(chr), chrBankSize)
	}

	cart.ppu = &PPU{cart: cart}
	cart.Reset()

	return cart, nil
}

func (cart *Cartridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s PRG: %s CHR: %s", cart.kind, cart.prg, cart.chr))
	if cart.chrRAM {
		s.WriteString(" (RAM)")
	}
	switch cart.kind {
	case UxROM:
		s.WriteString(fmt.Sprintf(" Bank: %d", cart.prgBank))
	case CNROM:
		s.WriteString(fmt.Sprintf(" CHR Bank: %d", cart.chrBank))
	}
	return s.String()
}

// Kind returns the mapper kind of the cartridge.
func (cart *Cartridge) Kind() Kind {
	return cart.kind
}

// PRG returns the PRG banks.
func (cart *Cartridge) PRG() *memory.Banks[*memory.Memory] {
	return cart.prg
}

// CHR returns the CHR banks.
func (cart *Cartridge) CHR() *memory.Banks[*memory.Memory] {
	return cart.chr
}

// RAM returns the PRG-RAM.
func (cart *Cartridge) RAM() *memory.Memory {
	return cart.ram
}

// PRGBank returns the PRG bank currently selected for $8000.
func (cart *Cartridge) PRGBank() int {
	return cart.prgBank
}

// CHRBank returns the CHR bank currently selected for the PPU.
func (cart *Cartridge) CHRBank() int {
	return cart.chrBank
}

// PPU returns the PPU's view of the cartridge.
func (cart *Cartridge) PPU() *PPU {
	return cart.ppu
}

// Reset returns the bank selection registers to their power-on values. The
// contents of RAM are not changed.
func (cart *Cartridge) Reset() {
	cart.prgBank = 0
	cart.chrBank = 0
}

// Read implements the memory.Reader interface.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.Peek(addr)
}

// Peek implements the memory.Reader interface.
func (cart *Cartridge) Peek(addr uint16) uint8 {
	switch {
	case addr >= OriginPRG:
		return cart.prgWindow(addr).Read(addr & (prgBankSize - 1))
	case addr >= OriginPRGRAM:
		return cart.ram.Read(addr - OriginPRGRAM)
	}
	return 0
}

// ReadWide implements the memory.Reader interface. The address is an offset
// into the PRG image rather than a CPU address.
func (cart *Cartridge) ReadWide(addr uint) uint8 {
	return cart.PeekWide(addr)
}

// PeekWide implements the memory.Reader interface. The address is an offset
// into the PRG image rather than a CPU address. The image is mirrored as a
// whole.
func (cart *Cartridge) PeekWide(addr uint) uint8 {
	bank, offset := cart.prg.Flat(addr)
	return bank.PeekWide(offset)
}

// Write implements the memory.Writer interface.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	switch {
	case addr >= OriginPRG:
		cart.registerWrite(data)
	case addr >= OriginPRGRAM:
		cart.ram.Write(addr-OriginPRGRAM, data)
	}
}

// PPU is the PPU's view of the cartridge. The CHR bank is visible in the
// pattern table range $0000 to $1fff. Addresses outside of that range are not
// decoded by the cartridge.
type PPU struct {
	cart *Cartridge
}

const memtopPattern = 0x1fff

// Read implements the memory.Reader interface.
func (ppu *PPU) Read(addr uint16) uint8 {
	return ppu.Peek(addr)
}

// Peek implements the memory.Reader interface.
func (ppu *PPU) Peek(addr uint16) uint8 {
	if addr > memtopPattern {
		return 0
	}
	return ppu.cart.chr.Select(ppu.cart.chrBank).Read(addr)
}

// ReadWide implements the memory.Reader interface. The address is an offset
// into the CHR image.
func (ppu *PPU) ReadWide(addr uint) uint8 {
	return ppu.PeekWide(addr)
}

// PeekWide implements the memory.Reader interface. The address is an offset
// into the CHR image.
func (ppu *PPU) PeekWide(addr uint) uint8 {
	bank, offset := ppu.cart.chr.Flat(addr)
	return bank.PeekWide(offset)
}

// Write implements the memory.Writer interface. Writes only have an effect if
// the cartridge has CHR-RAM.
func (ppu *PPU) Write(addr uint16, data uint8) {
	if addr > memtopPattern {
		return
	}
	ppu.cart.chr.Select(ppu.cart.chrBank).Write(addr, data)
}

// WriteWide implements the memory.Writer interface. The address is an offset
// into the CHR image.
func (ppu *PPU) WriteWide(addr uint, data uint8) {
	bank, offset := ppu.cart.chr.Flat(addr)
	bank.WriteWide(offset, data)
}
