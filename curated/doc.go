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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. Unlike fmt.Errorf()
// the pattern and the values are kept separately and the pattern is used to
// identify the error later on:
//
//	const Truncated = "savestate: truncated: %v"
//
//	err := curated.Errorf(Truncated, io.ErrUnexpectedEOF)
//	if curated.Is(err, Truncated) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors:
//
//	f := curated.Errorf("cartridge: %v", err)
//	curated.Has(f, Truncated) // true
//	curated.Is(f, Truncated)  // false
//
// The pattern strings should be declared as constants in the package that
// creates the error so that callers can refer to them.
//
// Error() normalises the message by removing duplicate adjacent parts of the
// chain. A chain is made of parts separated by the sub-string ": ". So the
// wrapping of "memory: bank count" with "memory: %v" produces
//
//	memory: bank count
//
// rather than
//
//	memory: memory: bank count
//
// Curated errors also implement Unwrap(), returning the first error in the
// list of values. The errors.Is() function from the standard library can
// therefore be used to test for sentinal errors such as io.EOF.
package curated
