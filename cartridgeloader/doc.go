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

// Package cartridgeloader reads iNES cartridge images. The data can be
// loaded from a local file or over HTTP.
//
// The simplest use of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.nes",
//	}
//	img, err := cl.Load()
//
// The returned Image holds the raw PRG and CHR data and the iNES mapper
// number. It is the caller's responsibility to create a cartridge from the
// image.
package cartridgeloader
