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

package test_test

import (
	"errors"
	"testing"

	"github.com/membank/membank/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
	test.DemandBytes(t, []uint8{1, 2, 3}, []uint8{1, 2, 3})
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))
	tw.Write([]byte("abc"))
	test.ExpectSuccess(t, tw.Compare("abc"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(4)
	test.DemandSuccess(t, err)

	n, err := c.Write([]byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	// exactly filling the writer is not an error
	n, err = c.Write([]byte("d"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)

	n, err = c.Write([]byte("e"))
	test.ExpectSuccess(t, errors.Is(err, test.ErrCapped))
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, c.String(), "abcd")

	c.Reset()
	test.ExpectEquality(t, c.String(), "")

	_, err = test.NewCappedWriter(-1)
	test.ExpectFailure(t, err)
}
