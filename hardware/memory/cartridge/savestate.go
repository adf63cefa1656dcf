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
	"io"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/hardware/memory"
	"github.com/membank/membank/savestate"
)

// Sentinal error patterns.
const (
	KindMismatch = "cartridge: save state is for %s but cartridge is %s"
	NoBanks      = "cartridge: save state has no %s banks"
)

// Save implements the savestate.Savable interface. The kind is written first,
// followed by the PRG banks, the CHR banks, the PRG-RAM and then the bank
// selection registers.
func (cart *Cartridge) Save(w io.Writer) error {
	if err := savestate.WriteUint32(w, uint32(cart.kind)); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	for _, s := range cart.stores() {
		if err := s.Save(w); err != nil {
			return curated.Errorf("cartridge: %v", err)
		}
	}
	for _, r := range []int{cart.prgBank, cart.chrBank} {
		if err := savestate.WriteUint32(w, uint32(r)); err != nil {
			return curated.Errorf("cartridge: %v", err)
		}
	}
	return nil
}

// Load implements the savestate.Savable interface. A save state for a
// different kind of cartridge is rejected before anything is changed.
//
// The PRG banks, CHR banks and PRG-RAM are each replaced only if they load
// successfully, but an error part way through the state leaves the earlier
// parts updated. The bank selection registers are reduced modulo the number
// of banks.
func (cart *Cartridge) Load(r io.Reader) error {
	k, err := savestate.ReadUint32(r)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	if k > 0xff || Kind(k) != cart.kind {
		return curated.Errorf(savestate.Malformed, curated.Errorf(KindMismatch, Kind(k), cart.kind))
	}

	if err := loadBanks(r, cart.prg, "PRG"); err != nil {
		return err
	}
	if err := loadBanks(r, cart.chr, "CHR"); err != nil {
		return err
	}
	if err := cart.ram.Load(r); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	prgBank, err := savestate.ReadUint32(r)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	chrBank, err := savestate.ReadUint32(r)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	cart.prgBank = int(prgBank % uint32(cart.prg.Len()))
	cart.chrBank = int(chrBank % uint32(cart.chr.Len()))

	return nil
}

// loadBanks replaces the contents of banks with the next Banks record. A
// record with no banks is malformed and banks is left unchanged.
func loadBanks(r io.Reader, banks *memory.Banks[*memory.Memory], name string) error {
	ld := memory.NewBanks(memory.New(), banks.Size())
	if err := ld.Load(r); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	if ld.IsEmpty() {
		return curated.Errorf(savestate.Malformed, curated.Errorf(NoBanks, name))
	}
	*banks = *ld
	return nil
}

// stores in the order they appear in a save state.
func (cart *Cartridge) stores() []savestate.Savable {
	return []savestate.Savable{cart.prg, cart.chr, cart.ram}
}
