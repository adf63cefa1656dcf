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

// Package savestate defines the Savable interface and the primitive encodings
// used by every Savable implementation. A save state is a linear byte stream
// made of the following records, concatenated in the order chosen by the owner
// of the state:
//
//	uint32:  four bytes, big-endian
//	bool:    one byte, 0x00 for false and 0x01 for true
//	payload: uint32 length followed by that many bytes
//
// The format has no header, version or checksum. Those belong to whatever
// file format wraps the stream.
//
// Errors returned by this package are curated errors. A failure of the
// underlying io.Writer or io.Reader is WriteError or ReadError. A stream that
// ends early is Truncated. A stream containing an impossible value is
// Malformed.
package savestate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/membank/membank/curated"
)

// Sentinal error patterns.
const (
	WriteError = "savestate: write: %v"
	ReadError  = "savestate: read: %v"
	Truncated  = "savestate: truncated: %v"
	Malformed  = "savestate: malformed: %v"
)

// Savable is implemented by any type that contributes to a save state. Load()
// must consume exactly the bytes produced by Save().
type Savable interface {
	Save(w io.Writer) error
	Load(r io.Reader) error
}

func write(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return curated.Errorf(Truncated, err)
	}
	return curated.Errorf(ReadError, err)
}

// WriteUint32 writes v as four big-endian bytes.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return write(w, b[:])
}

// ReadUint32 reads four big-endian bytes.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, readErr(err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// WriteBool writes v as a single byte.
func WriteBool(w io.Writer, v bool) error {
	var b [1]byte
	if v {
		b[0] = 0x01
	}
	return write(w, b[:])
}

// ReadBool reads a single byte. Values other than 0x00 and 0x01 are
// Malformed.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, readErr(err)
	}
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	}
	return false, curated.Errorf(Malformed, curated.Errorf("bool value of %#02x", b[0]))
}

// WriteBytes writes the length of data as a uint32 followed by data itself.
func WriteBytes(w io.Writer, data []uint8) error {
	if uint64(len(data)) > math.MaxUint32 {
		return curated.Errorf(WriteError, curated.Errorf("payload of %d bytes is too long", len(data)))
	}
	if err := WriteUint32(w, uint32(len(data))); err != nil {
		return err
	}
	return write(w, data)
}

// ReadBytes reads a payload written by WriteBytes(). The returned slice is
// newly allocated.
func ReadBytes(r io.Reader) ([]uint8, error) {
	l, err := ReadUint32(r)
	if err != nil {
		return nil, err
	}

	// the length is not trusted with an allocation until the data has
	// actually been read
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(l)); err != nil {
		return nil, readErr(err)
	}

	return buf.Bytes(), nil
}
