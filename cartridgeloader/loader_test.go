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

package cartridgeloader_test

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/membank/membank/cartridgeloader"
	"github.com/membank/membank/curated"
	"github.com/membank/membank/test"
)

// ines returns an iNES image with the number of 16KB PRG banks and 8KB CHR
// banks. the first byte of every bank is the bank number.
func ines(mapper uint8, prg int, chr int) []uint8 {
	d := []uint8{'N', 'E', 'S', 0x1a, uint8(prg), uint8(chr), mapper << 4, mapper & 0xf0}
	d = append(d, make([]uint8, 8)...)
	for i := 0; i < prg; i++ {
		b := make([]uint8, 0x4000)
		b[0] = uint8(i)
		d = append(d, b...)
	}
	for i := 0; i < chr; i++ {
		b := make([]uint8, 0x2000)
		b[0] = uint8(i)
		d = append(d, b...)
	}
	return d
}

func writeImage(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	data := ines(2, 4, 1)
	cl := cartridgeloader.Loader{Filename: writeImage(t, data)}

	img, err := cl.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Mapper, uint8(2))
	test.ExpectEquality(t, len(img.PRG), 4*0x4000)
	test.ExpectEquality(t, len(img.CHR), 0x2000)
	test.ExpectEquality(t, img.PRG[0x4000*3], uint8(3))
	test.ExpectEquality(t, img.String(), "mapper 2 PRG: 65536 bytes CHR: 8192 bytes")

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	test.ExpectEquality(t, img.Hash, hash)
	test.ExpectEquality(t, cl.Hash, hash)
	test.ExpectEquality(t, cl.ShortName(), "game")
}

func TestLoadHash(t *testing.T) {
	fn := writeImage(t, ines(3, 2, 2))

	cl := cartridgeloader.Loader{Filename: fn, Hash: "0123"}
	_, err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectEquality(t, cl.Hash, "0123")

	cl = cartridgeloader.Loader{Filename: fn}
	img, err := cl.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Mapper, uint8(3))
	test.ExpectEquality(t, img.CHR[0x2000], uint8(1))

	// loading again with the now known hash succeeds
	_, err = cl.Load()
	test.ExpectSuccess(t, err)
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.Loader{Filename: filepath.Join(t.TempDir(), "missing.nes")}
	_, err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))

	cl = cartridgeloader.Loader{Filename: writeImage(t, []uint8{'N', 'E', 'S'})}
	_, err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))

	cl = cartridgeloader.Loader{Filename: "ftp://example.com/game.nes"}
	_, err = cl.Load()
	test.ExpectEquality(t, err.Error(), "cartridgeloader: unsupported URL scheme (ftp)")
}

func TestLoadDriveLetter(t *testing.T) {
	// a windows path is opened as a local file and not rejected as a URL
	for _, fn := range []string{`C:\roms\missing.nes`, "d:/roms/missing.nes"} {
		cl := cartridgeloader.Loader{Filename: fn}
		_, err := cl.Load()
		test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError), fn)
		test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist), fn)
		test.ExpectFailure(t, strings.Contains(err.Error(), "unsupported URL scheme"), fn)
	}
}

func TestLoadHTTP(t *testing.T) {
	data := ines(0, 2, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.nes" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.Loader{Filename: srv.URL + "/game.nes"}
	img, err := cl.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Mapper, uint8(0))
	test.ExpectEquality(t, len(img.PRG), 0x8000)
	test.ExpectEquality(t, len(img.CHR), 0x2000)

	cl = cartridgeloader.Loader{Filename: srv.URL + "/other.nes"}
	_, err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}
