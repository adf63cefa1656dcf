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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/membank/membank/cartridgeloader"
	"github.com/membank/membank/digest"
	"github.com/membank/membank/hardware/memory"
	"github.com/membank/membank/hardware/memory/cartridge"
	"github.com/membank/membank/hardware/preferences"
	"github.com/membank/membank/logger"
	"github.com/membank/membank/modalflag"
	"github.com/membank/membank/prefs"
	"github.com/membank/membank/rewind"
	"github.com/membank/membank/statsview"
	"github.com/membank/membank/version"
)

// exit values returned by launch().
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	os.Exit(launch(md, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. The return value is
// the exit value of the program.
func launch(md *modalflag.Modes, args []string) int {
	md.NewArgs(args)
	md.AddSubModes("INFO", "SAVE", "RESTORE", "GRAPH")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(md.Output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "SAVE":
		err = save(md)
	case "RESTORE":
		err = restore(md)
	case "GRAPH":
		err = graph(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// options common to every mode.
type options struct {
	prefs     *string
	log       *bool
	profile   *string
	statsview *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		prefs:     md.AddString("prefs", "", "preferences to apply. for example: \"memory.randstate::false\""),
		log:       md.AddBool("log", false, "echo log to output"),
		profile:   md.AddString("profile", "NONE", "create profile: CPU, MEM"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// start applies the options. The returned function must be called when the
// mode has finished.
func (opts options) start(md *modalflag.Modes) (func(), error) {
	if *opts.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *opts.statsview {
		statsview.Launch(md.Output)
	}

	var stop func()

	switch strings.ToUpper(*opts.profile) {
	case "NONE":
		stop = func() {}
	case "CPU":
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
	case "MEM":
		stop = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop
	default:
		return nil, fmt.Errorf("unknown profile type (%s)", *opts.profile)
	}

	prefs.PushCommandLineStack(*opts.prefs)

	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "membank", "unused preferences: %s", unused)
		}
		stop()
	}, nil
}

// insert loads the cartridge file and creates the cartridge. Preferences from
// the command line are applied.
func insert(filename string) (*cartridge.Cartridge, *preferences.Preferences, error) {
	cl := cartridgeloader.Loader{Filename: filename}
	img, err := cl.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "membank", "%s: %s (%s)", cl.ShortName(), img, img.Hash)

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	cart, err := cartridge.NewCartridge(img.Mapper, img.PRG, img.CHR, memory.NewAllocator(p))
	if err != nil {
		return nil, nil, err
	}

	return cart, p, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	dump := md.AddInt("dump", -1, "hex dump of PRG bank")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge file required for %s mode", md)
	}

	done, err := opts.start(md)
	if err != nil {
		return err
	}
	defer done()

	cart, prf, err := insert(md.GetArg(0))
	if err != nil {
		return err
	}

	summary(md.Output, cart)
	fmt.Fprint(md.Output, prf)

	h, err := digest.Hash(cart)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "state digest: %s\n", h)

	if *dump >= 0 {
		if *dump >= cart.PRG().Len() {
			return fmt.Errorf("cartridge has %d PRG banks", cart.PRG().Len())
		}
		return cart.PRG().Get(*dump).Dump(md.Output, cartridge.OriginPRG)
	}

	return nil
}

func save(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("cartridge file and save state file required for %s mode", md)
	}

	done, err := opts.start(md)
	if err != nil {
		return err
	}
	defer done()

	cart, _, err := insert(md.GetArg(0))
	if err != nil {
		return err
	}

	f, err := os.Create(md.GetArg(1))
	if err != nil {
		return err
	}

	err = cart.Save(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	h, err := digest.Hash(cart)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "save state written to %s\n", md.GetArg(1))
	logger.Logf(logger.Allow, "membank", "state digest: %s", h)

	return nil
}

func restore(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("cartridge file and save state file required for %s mode", md)
	}

	done, err := opts.start(md)
	if err != nil {
		return err
	}
	defer done()

	cart, _, err := insert(md.GetArg(0))
	if err != nil {
		return err
	}

	f, err := os.Open(md.GetArg(1))
	if err != nil {
		return err
	}
	defer f.Close()

	// a failed load can leave part of the cartridge changed. the power-on
	// state is kept so that the cartridge can be returned to it
	rw := rewind.NewRewind(cart, 1)
	if err := rw.Reset(); err != nil {
		return err
	}

	if err := cart.Load(f); err != nil {
		if rerr := rw.GotoLast(); rerr != nil {
			return rerr
		}
		logger.Log(logger.Allow, "membank", "cartridge returned to power-on state")
		return err
	}

	summary(md.Output, cart)

	h, err := digest.Hash(cart)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "state digest: %s\n", h)

	return nil
}

func graph(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge file required for %s mode", md)
	}

	done, err := opts.start(md)
	if err != nil {
		return err
	}
	defer done()

	cart, _, err := insert(md.GetArg(0))
	if err != nil {
		return err
	}

	cart.Graph(md.Output)

	return nil
}

// summary of the cartridge and every bank in it.
func summary(output io.Writer, cart *cartridge.Cartridge) {
	fmt.Fprintln(output, cart)
	for i, b := range cart.PRG().All() {
		fmt.Fprintf(output, "  PRG %d: %s\n", i, b)
	}
	for i, b := range cart.CHR().All() {
		fmt.Fprintf(output, "  CHR %d: %s\n", i, b)
	}
	fmt.Fprintf(output, "  PRG-RAM: %s\n", cart.RAM())
}
