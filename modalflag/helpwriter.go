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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage message of the flag package so that it can
// be amended with mode information.
type helpWriter struct {
	strings.Builder
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additional string) {
	usage := strings.TrimSuffix(hw.String(), "\n")
	header, flags, _ := strings.Cut(usage, "\n")

	if flags == "" && len(subModes) == 0 && additional == "" {
		if banner == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintln(output, header)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", header, banner)
	}

	if flags != "" {
		fmt.Fprintln(output, flags)
	}

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additional != "" {
		fmt.Fprintf(output, "\n%s\n", additional)
	}
}
