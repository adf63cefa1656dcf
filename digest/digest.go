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

// Package digest produces cryptographic hashes of save states. A hash can be
// compared with a previously recorded value to decide whether the state of
// the emulation has changed.
//
// A State digest is chained. Each new save state is hashed together with the
// previous digest so that the final value depends on every state added and on
// the order in which they were added.
package digest

import (
	"bytes"
	"crypto/sha1"
	"fmt"

	"github.com/membank/membank/curated"
	"github.com/membank/membank/savestate"
)

// State is a chained hash of save states.
type State struct {
	digest [sha1.Size]byte
	buffer bytes.Buffer
}

// Hash returns the current digest as a hex string.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest returns the digest to its initial value.
func (dig *State) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Add the save state of s to the digest.
func (dig *State) Add(s savestate.Savable) error {
	// the previous digest is at the head of the hashed data
	dig.buffer.Reset()
	dig.buffer.Write(dig.digest[:])

	if err := s.Save(&dig.buffer); err != nil {
		return curated.Errorf("digest: %v", err)
	}

	dig.digest = sha1.Sum(dig.buffer.Bytes())
	return nil
}

// Hash returns the digest of a single save state.
func Hash(s savestate.Savable) (string, error) {
	var dig State
	if err := dig.Add(s); err != nil {
		return "", err
	}
	return dig.Hash(), nil
}
