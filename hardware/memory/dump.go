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
	"fmt"
	"io"
	"strings"
)

const dumpWidth = 16

// Dump writes a hex dump of the store to w, sixteen bytes per row. Each row is
// labelled with the address of its first byte, starting from origin.
func (m *Memory) Dump(w io.Writer, origin uint) error {
	s := strings.Builder{}

	s.WriteString("      ")
	for x := 0; x < dumpWidth; x++ {
		s.WriteString(fmt.Sprintf(" -%X", x))
	}
	s.WriteString("\n")

	for y := 0; y < len(m.data); y += dumpWidth {
		s.WriteString(fmt.Sprintf("%04X |", origin+uint(y)))
		for _, v := range m.data[y:min(y+dumpWidth, len(m.data))] {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
