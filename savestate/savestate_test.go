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

package savestate_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/savestate"
	"github.com/membank/membank/test"
)

func TestEncoding(t *testing.T) {
	tw := &test.Writer{}

	test.DemandSuccess(t, savestate.WriteUint32(tw, 0x01020304))
	test.DemandSuccess(t, savestate.WriteBool(tw, true))
	test.DemandSuccess(t, savestate.WriteBool(tw, false))
	test.DemandSuccess(t, savestate.WriteBytes(tw, []uint8{0xaa, 0xbb}))
	test.DemandSuccess(t, savestate.WriteBytes(tw, nil))

	test.DemandBytes(t, tw.Bytes(), []uint8{
		0x01, 0x02, 0x03, 0x04,
		0x01,
		0x00,
		0x00, 0x00, 0x00, 0x02, 0xaa, 0xbb,
		0x00, 0x00, 0x00, 0x00,
	})

	r := bytes.NewReader(tw.Bytes())

	v, err := savestate.ReadUint32(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01020304))

	b, err := savestate.ReadBool(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, true)

	b, err = savestate.ReadBool(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, false)

	d, err := savestate.ReadBytes(r)
	test.DemandSuccess(t, err)
	test.DemandBytes(t, d, []uint8{0xaa, 0xbb})

	d, err = savestate.ReadBytes(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 0)

	// stream is exhausted
	_, err = savestate.ReadBool(r)
	test.ExpectSuccess(t, curated.Is(err, savestate.Truncated))
}

func TestTruncated(t *testing.T) {
	// payload claims four bytes but only has two
	r := bytes.NewReader([]uint8{0x00, 0x00, 0x00, 0x04, 0x01, 0x02})
	_, err := savestate.ReadBytes(r)
	test.ExpectSuccess(t, curated.Is(err, savestate.Truncated))
	test.ExpectSuccess(t, errors.Is(err, io.EOF))

	// length prefix is itself incomplete
	r = bytes.NewReader([]uint8{0x00, 0x00})
	_, err = savestate.ReadBytes(r)
	test.ExpectSuccess(t, curated.Is(err, savestate.Truncated))
	test.ExpectSuccess(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestMalformedBool(t *testing.T) {
	_, err := savestate.ReadBool(bytes.NewReader([]uint8{0x02}))
	test.ExpectSuccess(t, curated.Is(err, savestate.Malformed))
	test.ExpectEquality(t, err.Error(), "savestate: malformed: bool value of 0x02")
}

type failingReader struct{}

var errDisk = errors.New("disk error")

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errDisk
}

func TestIOFailure(t *testing.T) {
	c, err := test.NewCappedWriter(5)
	test.DemandSuccess(t, err)

	err = savestate.WriteBytes(c, []uint8{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, savestate.WriteError))
	test.ExpectSuccess(t, errors.Is(err, test.ErrCapped))

	_, err = savestate.ReadUint32(failingReader{})
	test.ExpectSuccess(t, curated.Is(err, savestate.ReadError))
	test.ExpectSuccess(t, errors.Is(err, errDisk))
}
