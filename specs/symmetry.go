// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// symmetry.go: point-group descriptors and their assignment to solids.

package specs

import (
	"fmt"
	"strings"
)

// SymmetryKind is the shape of a point group.
type SymmetryKind string

// Symmetry kinds.
const (
	SymPolyhedral SymmetryKind = "polyhedral"
	SymCyclic     SymmetryKind = "cyclic"
	SymDihedral   SymmetryKind = "dihedral"
)

// Reflection is the mirror class of a dihedral group; empty when chiral.
type Reflection string

// Reflections.
const (
	PrismReflection     Reflection = "prism"
	AntiprismReflection Reflection = "antiprism"
)

// Symmetry describes a point group. Family is set for polyhedral groups,
// N for cyclic and dihedral ones.
type Symmetry struct {
	Kind       SymmetryKind
	Family     Family
	N          int
	Chiral     bool
	Reflection Reflection
}

// Polyhedral returns T, O or I, with full symmetry unless chiral.
func Polyhedral(f Family, chiral bool) Symmetry {
	return Symmetry{Kind: SymPolyhedral, Family: f, Chiral: chiral}
}

// Cyclic returns C_n, with vertical mirrors unless chiral.
func Cyclic(n int, chiral bool) Symmetry {
	return Symmetry{Kind: SymCyclic, N: n, Chiral: chiral}
}

// Dihedral returns D_n; with no reflection it is chiral.
func Dihedral(n int, r Reflection) Symmetry {
	return Symmetry{Kind: SymDihedral, N: n, Reflection: r, Chiral: r == ""}
}

var (
	bilateral = Cyclic(1, false)
	biradial  = Cyclic(2, false)
)

var polyhedralNames = map[Family]string{3: "tetrahedral", 4: "octahedral", 5: "icosahedral"}

var rotationalOrders = map[Family]int{3: 12, 4: 24, 5: 60}

// Name is the group's descriptive name ("full icosahedral", "pentagonal
// antiprismatic").
func (s Symmetry) Name() string {
	switch s.Kind {
	case SymPolyhedral:
		if s.Chiral {
			return "chiral " + polyhedralNames[s.Family]
		}
		return "full " + polyhedralNames[s.Family]
	case SymCyclic:
		if !s.Chiral && s.N == 1 {
			return "bilateral"
		}
		if !s.Chiral && s.N == 2 {
			return "biradial"
		}
		if s.Chiral {
			return PolygonPrefix(s.N)
		}
		return PolygonPrefix(s.N) + " pyramidal"
	case SymDihedral:
		base := "dihedral"
		if s.Reflection != "" {
			base = string(s.Reflection) + "atic"
		}
		return PolygonPrefix(s.N) + " " + base
	}
	return ""
}

// Symbol returns the Schoenflies letter and subscript ("I", "h").
func (s Symmetry) Symbol() (base, sub string) {
	switch s.Kind {
	case SymPolyhedral:
		base = strings.ToUpper(polyhedralNames[s.Family][:1])
		if !s.Chiral {
			sub = "h"
			if s.Family == 3 {
				sub = "d"
			}
		}
	case SymCyclic:
		base = "C"
		sub = fmt.Sprint(s.N)
		if !s.Chiral {
			sub += "v"
		}
	case SymDihedral:
		base = "D"
		sub = fmt.Sprint(s.N)
		switch s.Reflection {
		case PrismReflection:
			sub += "h"
		case AntiprismReflection:
			sub += "d"
		}
	}
	return base, sub
}

// SymbolStr renders Symbol as base_sub, or base alone.
func (s Symmetry) SymbolStr() string {
	base, sub := s.Symbol()
	if sub == "" {
		return base
	}
	return base + "_" + sub
}

// Order is the order of the full group: the rotation group, doubled when
// not chiral.
func (s Symmetry) Order() int {
	var rot int
	switch s.Kind {
	case SymPolyhedral:
		rot = rotationalOrders[s.Family]
	case SymCyclic:
		rot = s.N
	case SymDihedral:
		rot = 2 * s.N
	}
	if s.Chiral {
		return rot
	}
	return 2 * rot
}

// String implements fmt.Stringer.
func (s Symmetry) String() string { return s.SymbolStr() }

func classicalSymmetry(c Classical) Symmetry {
	// The tetrahedral snub is the icosahedron.
	if c.IsSnub() && c.Family == 3 {
		return Polyhedral(5, false)
	}
	return Polyhedral(c.Family, c.IsSnub())
}

func capstoneSymmetry(c Capstone) Symmetry {
	if c.IsPrismatic() {
		return Dihedral(c.BaseSides(), Reflection(c.Elongation))
	}
	if c.IsMono() {
		return Cyclic(c.Base, false)
	}
	gyroelongated := c.IsGyroelongated()
	if c.IsPrimary() {
		if gyroelongated {
			return Dihedral(c.Base, AntiprismReflection)
		}
		return Dihedral(c.Base, PrismReflection)
	}
	if c.IsCupolaRotunda() {
		return Cyclic(c.Base, gyroelongated)
	}
	if gyroelongated {
		return Dihedral(c.Base, "")
	}
	if c.IsGyro() {
		return Dihedral(c.Base, AntiprismReflection)
	}
	return Dihedral(c.Base, PrismReflection)
}

func compositeSymmetry(c Composite) Symmetry {
	count := c.TotalCount()
	pure := count == c.Augmented || count == c.Diminished || count == c.Gyrate
	_, prismatic := c.Source.(Capstone)
	var family Family
	if cl, ok := c.Source.(Classical); ok {
		family = cl.Family
	}
	switch count {
	case 0:
		return c.Source.Symmetry()
	case 1:
		if prismatic {
			return biradial
		}
		return Cyclic(int(family), false)
	case 2:
		if prismatic {
			if c.Align == Para {
				return Dihedral(2, PrismReflection)
			}
			return biradial
		}
		// Biaugmented cubes and truncated cubes are always para.
		if family == 4 {
			return Dihedral(4, PrismReflection)
		}
		if c.Align == Para {
			if pure {
				return Dihedral(int(family), AntiprismReflection)
			}
			return Cyclic(int(family), false)
		}
		if pure {
			return biradial
		}
		return bilateral
	case 3:
		if prismatic {
			return Dihedral(3, PrismReflection)
		}
		if pure {
			return Cyclic(3, false)
		}
		return bilateral
	default:
		// augmented tridiminished icosahedron
		return Cyclic(3, false)
	}
}

var elementarySymmetry = map[string]Symmetry{
	Sphenocorona:                biradial,
	AugmentedSphenocorona:       bilateral,
	Sphenomegacorona:            biradial,
	Hebesphenomegacorona:        biradial,
	Disphenocingulum:            Dihedral(2, AntiprismReflection),
	Bilunabirotunda:             Dihedral(2, PrismReflection),
	TriangularHebesphenorotunda: Cyclic(3, false),
}
