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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/membank/membank/curated"
)

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
)

type entry struct {
	pref Pref
	def  Value
}

// Group is a collection of named preferences. Each preference has a default
// value which is restored by Reset().
type Group struct {
	entries map[string]entry
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]entry),
	}
}

// Add a preference to the group. The preference is set to the default value
// immediately.
func (g *Group) Add(key string, p Pref, def Value) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	if err := p.Set(def); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	g.entries[key] = entry{pref: p, def: def}
	return nil
}

// Set the named preference.
func (g *Group) Set(key string, v Value) error {
	e, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return e.pref.Set(v)
}

// Reset all preferences in the group to their default values.
func (g *Group) Reset() error {
	for _, e := range g.entries {
		if err := e.pref.Set(e.def); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// ApplyCommandLine sets any preference in the group that has a value in the
// current command line group. See PushCommandLineStack().
func (g *Group) ApplyCommandLine() error {
	for _, k := range g.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.entries[k].pref.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}
	return nil
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String lists the preferences in key order, one per line.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k].pref))
	}
	return s.String()
}
