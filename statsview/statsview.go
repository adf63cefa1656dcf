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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/membank/membank/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// Launch starts the statistics server in the background. The address of the
// statistics page is written to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		// Start() blocks until the server stops
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "statsview", "%v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL())
}
