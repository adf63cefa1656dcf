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

// Package statsview runs a local HTTP server showing runtime statistics of
// the membank process, using github.com/go-echarts/statsview.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview
