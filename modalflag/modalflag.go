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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() returns the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output writer
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

// Modes handles command line arguments. The Output field should be set before
// calling Parse() otherwise help messages will not be seen.
type Modes struct {
	Output io.Writer

	// arguments from NewArgs() and the index of the next argument to parse
	args []string
	next int

	// recreated on every call to NewMode()
	flags    *flag.FlagSet
	subModes []string
	help     string

	// modes selected by every call to Parse() since NewArgs()
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous mode. The next
// call to Parse() continues from the first unused argument.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AdditionalHelp sets text that is printed after the flag and sub-mode help.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the list of modes that can be selected by the next call
// to Parse(). The first sub-mode is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected since NewArgs(), separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// Parse the arguments for the current mode.
//
// Flags that are not recognised are an error unless sub-modes have been
// added, in which case the default sub-mode is selected and the flags are
// left for that mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	args := md.args[md.next:]
	err := md.flags.Parse(args)

	if errors.Is(err, flag.ErrHelp) {
		if md.Output != nil {
			hw.help(md.Output, md.Path(), md.subModes, md.help)
		}
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		md.next += len(args) - md.flags.NArg()
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if err == nil {
		md.next += len(args) - md.flags.NArg()
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.next++
				break
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.next:]
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). An empty string is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn with the name of every flag that was set by the most recent
// Parse(), in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
