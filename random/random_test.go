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

package random_test

import (
	"testing"

	"github.com/membank/membank/random"
	"github.com/membank/membank/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(0)
	b := random.NewRandom(12345)
	a.ZeroSeed = true
	b.ZeroSeed = true

	// the requested seed is ignored when ZeroSeed is set
	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestFill(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)

	da := make([]uint8, 512)
	db := make([]uint8, 512)
	a.Fill(da)
	b.Fill(db)
	test.DemandBytes(t, da, db)

	// reseeding restarts the sequence
	a.Reseed(100)
	a.Fill(db)
	test.DemandBytes(t, da, db)

	test.ExpectEquality(t, a.Seed(), int64(100))
}

func TestIntnRange(t *testing.T) {
	rnd := random.NewRandom(1)
	test.ExpectEquality(t, rnd.Intn(0), 0)
	test.ExpectEquality(t, rnd.Intn(-1), 0)
	for i := 0; i < 1000; i++ {
		v := rnd.Intn(10)
		test.ExpectSuccess(t, v >= 0 && v < 10)
	}
}
