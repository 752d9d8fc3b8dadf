// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// elementary.go: the Johnson solids that belong to no generated family.

package specs

// Elementary names one of seven irregular Johnson solids.
type Elementary struct {
	Base string
}

// Elementary solids.
const (
	Sphenocorona                = "sphenocorona"
	AugmentedSphenocorona       = "augmented sphenocorona"
	Sphenomegacorona            = "sphenomegacorona"
	Hebesphenomegacorona        = "hebesphenomegacorona"
	Disphenocingulum            = "disphenocingulum"
	Bilunabirotunda             = "bilunabirotunda"
	TriangularHebesphenorotunda = "triangular hebesphenorotunda"
)

var elementaryNames = []string{
	Sphenocorona,
	AugmentedSphenocorona,
	Sphenomegacorona,
	Hebesphenomegacorona,
	Disphenocingulum,
	Bilunabirotunda,
	TriangularHebesphenorotunda,
}

func (Elementary) sealed() {}

// Kind implements Specs.
func (Elementary) Kind() Kind { return KindElementary }

// Unwrap implements Specs.
func (e Elementary) Unwrap() Specs { return e }

// Equals implements Specs.
func (e Elementary) Equals(o Specs) bool { return equal(e, o) }

// Equivalent implements Specs.
func (e Elementary) Equivalent(o Specs) bool { return equivalent(e, o) }

func (e Elementary) matches(q Elementary) bool { return e == q }

// Name implements Specs.
func (e Elementary) Name() string { return e.Base }

// CanonicalName implements Specs.
func (e Elementary) CanonicalName() string { return e.Base }

// AlternateNames implements Specs.
func (e Elementary) AlternateNames() []string { return alternateNames(e.Base) }

// Symmetry implements Specs.
func (e Elementary) Symmetry() Symmetry { return elementarySymmetry[e.Base] }

// Group implements Specs.
func (Elementary) Group() string { return GroupJohnson }

// ConwaySymbol implements Specs.
func (e Elementary) ConwaySymbol() string { return conwaySymbol(e) }

// IsChiral implements Specs.
func (Elementary) IsChiral() bool { return false }

// IsHoneycomb implements Specs.
func (Elementary) IsHoneycomb() bool { return false }

// AllElementary enumerates the seven elementary solids.
func AllElementary() []Elementary {
	out := make([]Elementary, len(elementaryNames))
	for i, n := range elementaryNames {
		out[i] = Elementary{Base: n}
	}
	return out
}
