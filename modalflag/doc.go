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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a program mode, with each mode having its own set
// of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags are
// added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print log to stdout")
//	md.AddSubModes("INFO", "SAVE")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// After parsing, Mode() returns the selected mode. The first argument after
// the flags selects the mode if it matches one of the sub-modes. Otherwise
// the first sub-mode is the default. Comparisons are case insensitive.
//
// The mode can then add its own flags with NewMode() and parse the remaining
// arguments in the same way. Modes can be nested as deeply as required and
// Path() returns every mode selected so far.
package modalflag
