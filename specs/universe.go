// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// universe.go: the index over every enumerated solid.

package specs

import (
	"fmt"
	"sync"
)

// Universe indexes the four enumerations and their union. Build it once
// with NewUniverse (or use Default) and share it; it is never mutated.
type Universe struct {
	Classical  *Queries[Classical]
	Capstone   *Queries[Capstone]
	Composite  *Queries[Composite]
	Elementary *Queries[Elementary]

	all         []Specs
	byName      map[string]Specs
	byCanonical map[string][]Specs
}

// NewUniverse enumerates and indexes every solid.
func NewUniverse() *Universe {
	u := &Universe{
		Classical:   NewQueries(AllClassical()),
		Capstone:    NewQueries(AllCapstone()),
		Composite:   NewQueries(AllComposite()),
		Elementary:  NewQueries(AllElementary()),
		byName:      make(map[string]Specs),
		byCanonical: make(map[string][]Specs),
	}
	for _, s := range u.Classical.entries {
		u.add(s)
	}
	for _, s := range u.Capstone.entries {
		u.add(s)
	}
	for _, s := range u.Composite.entries {
		u.add(s)
	}
	for _, s := range u.Elementary.entries {
		u.add(s)
	}
	return u
}

func (u *Universe) add(s Specs) {
	u.all = append(u.all, s)
	u.byName[s.Name()] = s
	c := s.CanonicalName()
	u.byCanonical[c] = append(u.byCanonical[c], s)
}

var defaultUniverse = sync.OnceValue(NewUniverse)

// Default returns the process-wide universe, built on first use.
func Default() *Universe { return defaultUniverse() }

// All returns every enumerated solid: classical, capstone, composite,
// elementary.
func (u *Universe) All() []Specs { return append([]Specs(nil), u.all...) }

// Len is the number of enumerated solids.
func (u *Universe) Len() int { return len(u.all) }

// Where filters the union.
func (u *Universe) Where(pred func(Specs) bool) []Specs {
	var out []Specs
	for _, s := range u.all {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// GetSpecs returns the solid whose display name is name. It is the inverse
// of Specs.Name over the enumeration.
func (u *Universe) GetSpecs(name string) (Specs, error) {
	s, ok := u.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return s, nil
}

// GetCanonicalSpecs resolves name (display, alternate or canonical) to its
// canonical name and returns the first solid carrying it.
func (u *Universe) GetCanonicalSpecs(name string) (Specs, error) {
	ss, ok := u.byCanonical[canonicalName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return ss[0], nil
}

// WithCanonicalName returns every solid carrying the canonical name.
func (u *Universe) WithCanonicalName(name string) []Specs {
	return append([]Specs(nil), u.byCanonical[canonicalName(name)]...)
}

// CanonicalNames returns the distinct canonical names in enumeration order.
func (u *Universe) CanonicalNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range u.all {
		c := s.CanonicalName()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
