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

	"github.com/bradleyjkemp/memviz"
)

// Graph writes the structure of the cartridge, including every bank, to w in
// the Graphviz DOT language.
func (cart *Cartridge) Graph(w io.Writer) {
	memviz.Map(w, cart)
}
