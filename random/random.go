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

package random

import (
	"math/rand"
	"time"
)

// the seed used when a Random instance is created with a seed of zero
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a seedable source of random numbers. It is not safe for
// concurrent use.
type Random struct {
	// use zero seed rather than the requested seed. must be set before the
	// first number is requested or before a call to Reseed()
	ZeroSeed bool

	seed int64
	src  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed value of zero will cause the clock based base seed to be used.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed restarts the sequence of random numbers with a new seed. A seed value
// of zero will cause the clock based base seed to be used.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = baseSeed
	}
	rnd.seed = seed
	rnd.src = nil
}

// Seed returns the seed in use. If ZeroSeed is true the value returned is
// zero.
func (rnd *Random) Seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.seed
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.src == nil {
		rnd.src = rand.New(rand.NewSource(rnd.Seed()))
	}
	return rnd.src
}

// Intn returns a random number in the range 0 to n-1. Returns 0 if n is less
// than or equal to zero.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rand().Intn(n)
}

// Fill the slice with uniformly distributed byte values.
func (rnd *Random) Fill(data []uint8) {
	r := rnd.rand()
	for i := range data {
		data[i] = uint8(r.Intn(0x100))
	}
}
