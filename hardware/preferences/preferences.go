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

// Package preferences holds the construction-time configuration of the
// emulated hardware.
package preferences

import (
	"github.com/membank/membank/prefs"
	"github.com/membank/membank/random"
)

// Keys used in prefs strings. For example, on the command line:
//
//	-prefs "memory.randstate::false"
const (
	KeyRandomState = "memory.randstate"
	KeyRandomSeed  = "memory.randseed"
)

// Preferences defines and collates the preference values used by the
// hardware package.
type Preferences struct {
	grp *prefs.Group

	// initialise newly allocated RAM to an unknown state. if false then RAM
	// is zeroed. ROM contents always come from the caller
	RandomState prefs.Bool

	// the seed for Random. zero means the seed is taken from the clock
	RandomSeed prefs.Int

	// random values generated in the hardware package should use this source
	Random *random.Random
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values from the current command line group are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp:    prefs.NewGroup(),
		Random: random.NewRandom(0),
	}

	// changing the seed restarts the random sequence
	p.RandomSeed.SetHookPost(func(v prefs.Value) error {
		p.Random.Reseed(int64(v.(int)))
		return nil
	})

	err := p.grp.Add(KeyRandomState, &p.RandomState, true)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add(KeyRandomSeed, &p.RandomSeed, 0)
	if err != nil {
		return nil, err
	}

	err = p.grp.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDeterministic returns preferences where RAM is always zeroed and the
// random source has a fixed seed. Intended for tests and for the
// normalisation of save states.
func NewDeterministic() *Preferences {
	p := &Preferences{
		grp:    prefs.NewGroup(),
		Random: random.NewRandom(0),
	}
	p.Random.ZeroSeed = true
	_ = p.grp.Add(KeyRandomState, &p.RandomState, false)
	_ = p.grp.Add(KeyRandomSeed, &p.RandomSeed, 0)
	return p
}

// Set a preference by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.grp.Reset()
}
