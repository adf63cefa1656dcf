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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/retroenv/retrogolib/nes/cartridge"

	"github.com/membank/membank/curated"
)

// Sentinal error patterns.
const (
	LoadError = "cartridgeloader: %v"
)

// Loader specifies the cartridge image to load.
type Loader struct {
	// filename of cartridge to load. can be a local path or an HTTP URL
	Filename string

	// expected hash of the image. an empty string indicates that the hash
	// is unknown and need not be validated. after a successful load the value
	// will be the hash of the loaded data
	Hash string
}

// Image is the content of a loaded cartridge file.
type Image struct {
	PRG    []uint8
	CHR    []uint8
	Mapper uint8

	// the sha1 hash of the entire file
	Hash string
}

func (img Image) String() string {
	return fmt.Sprintf("mapper %d PRG: %d bytes CHR: %d bytes", img.Mapper, len(img.PRG), len(img.CHR))
}

// ShortName returns the filename without the path or extension.
func (cl Loader) ShortName() string {
	s := path.Base(cl.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// Load reads and parses the cartridge file. Filenames with an http or https
// scheme are fetched over the network. Anything else is a local file.
func (cl *Loader) Load() (Image, error) {
	var data []uint8
	var err error

	switch scheme := cl.scheme(); scheme {
	case "http", "https":
		data, err = fetch(cl.Filename)
	case "file":
		data, err = os.ReadFile(cl.Filename)
	default:
		err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return Image{}, curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return Image{}, curated.Errorf(LoadError, "unexpected hash value")
	}

	img, err := parse(bytes.NewReader(data))
	if err != nil {
		return Image{}, err
	}

	cl.Hash = hash
	img.Hash = hash

	return img, nil
}

// scheme of the filename. a single letter scheme is a windows drive letter
// and is treated as a local file.
func (cl Loader) scheme() string {
	u, err := url.Parse(cl.Filename)
	if err != nil || len(u.Scheme) <= 1 {
		return "file"
	}
	return u.Scheme
}

func fetch(u string) ([]uint8, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// parse reads an iNES image.
func parse(r io.Reader) (Image, error) {
	cart, err := cartridge.LoadFile(r)
	if err != nil {
		return Image{}, curated.Errorf(LoadError, err)
	}
	return Image{
		PRG:    cart.PRG,
		CHR:    cart.CHR,
		Mapper: cart.Mapper,
	}, nil
}
