// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// classical.go: Platonic and Archimedean solids.

package specs

// Family is the rotational family of a classical solid: 3 tetrahedral,
// 4 octahedral, 5 icosahedral.
type Family int

// Families lists the three families.
var Families = []Family{3, 4, 5}

// Operation is the Wythoff-style operation applied to the regular solid.
type Operation string

// Operations, in enumeration order.
const (
	Regular    Operation = "regular"
	Truncate   Operation = "truncate"
	Rectify    Operation = "rectify"
	Bevel      Operation = "bevel"
	Cantellate Operation = "cantellate"
	Snub       Operation = "snub"
)

// Operations lists every classical operation.
var Operations = []Operation{Regular, Truncate, Rectify, Bevel, Cantellate, Snub}

// Facet says which face family of the regular solid a solid descends from.
type Facet string

// Facets.
const (
	FaceFacet   Facet = "face"
	VertexFacet Facet = "vertex"
)

// Facets lists both facets, face first.
var Facets = []Facet{FaceFacet, VertexFacet}

// Opposite swaps face and vertex.
func (f Facet) Opposite() Facet {
	if f == FaceFacet {
		return VertexFacet
	}
	return FaceFacet
}

// Classical is a Platonic or Archimedean solid.
//
// Facet is set only for Regular and Truncate; Twist only for octahedral and
// icosahedral snubs. The tetrahedral snub is the icosahedron and has no
// handedness.
type Classical struct {
	Family    Family
	Operation Operation
	Facet     Facet
	Twist     Twist
}

func (Classical) sealed() {}

// Kind implements Specs.
func (Classical) Kind() Kind { return KindClassical }

// Unwrap implements Specs.
func (c Classical) Unwrap() Specs { return c }

// Equals implements Specs.
func (c Classical) Equals(o Specs) bool { return equal(c, o) }

// Equivalent implements Specs.
func (c Classical) Equivalent(o Specs) bool { return equivalent(c, o) }

// HasFacet reports whether op distinguishes face and vertex forms.
func HasFacet(op Operation) bool { return op == Regular || op == Truncate }

// Normalize drops fields that are meaningless for the operation and fills
// the default twist.
func (c Classical) Normalize() Classical {
	if !HasFacet(c.Operation) {
		c.Facet = ""
	}
	if c.Operation != Snub || c.Family == 3 {
		c.Twist = ""
	} else if c.Twist == "" {
		c.Twist = Left
	}
	return c
}

// WithData returns the enumerated solid with data d in place of the
// receiver's: d is normalized first, and an empty Facet or Twist matches
// either value (ErrAmbiguousMatch when both exist).
func (Classical) WithData(d Classical) (Classical, error) {
	return Default().Classical.WithData(d.Normalize())
}

// WithOperation changes the operation (keeping family and facet where they
// still apply).
func (c Classical) WithOperation(op Operation, twist Twist) (Classical, error) {
	d := c
	d.Operation = op
	d.Twist = twist
	if HasFacet(op) && d.Facet == "" {
		d.Facet = FaceFacet
	}
	return c.WithData(d)
}

// WithFacet changes the facet.
func (c Classical) WithFacet(f Facet) (Classical, error) {
	d := c
	d.Facet = f
	return c.WithData(d)
}

func (c Classical) matches(q Classical) bool {
	return c.Family == q.Family && c.Operation == q.Operation &&
		(q.Facet == "" || c.Facet == q.Facet) &&
		(q.Twist == "" || c.Twist == q.Twist)
}

// IsTetrahedral reports family 3.
func (c Classical) IsTetrahedral() bool { return c.Family == 3 }

// IsOctahedral reports family 4.
func (c Classical) IsOctahedral() bool { return c.Family == 4 }

// IsIcosahedral reports family 5.
func (c Classical) IsIcosahedral() bool { return c.Family == 5 }

func (c Classical) IsRegular() bool     { return c.Operation == Regular }
func (c Classical) IsTruncated() bool   { return c.Operation == Truncate }
func (c Classical) IsRectified() bool   { return c.Operation == Rectify }
func (c Classical) IsBevelled() bool    { return c.Operation == Bevel }
func (c Classical) IsCantellated() bool { return c.Operation == Cantellate }
func (c Classical) IsSnub() bool        { return c.Operation == Snub }

// HasFacet reports whether the solid has a facet.
func (c Classical) HasFacet() bool { return HasFacet(c.Operation) }

// IsFace reports the face facet.
func (c Classical) IsFace() bool { return c.Facet == FaceFacet }

// IsVertex reports the vertex facet.
func (c Classical) IsVertex() bool { return c.Facet == VertexFacet }

// IsChiral implements Specs: octahedral and icosahedral snubs.
func (c Classical) IsChiral() bool { return c.IsSnub() && c.Family != 3 }

// Name implements Specs.
func (c Classical) Name() string { return classicalName(c) }

// CanonicalName implements Specs.
func (c Classical) CanonicalName() string { return canonicalName(c.Name()) }

// AlternateNames implements Specs.
func (c Classical) AlternateNames() []string { return alternateNames(c.CanonicalName()) }

// Symmetry implements Specs.
func (c Classical) Symmetry() Symmetry { return classicalSymmetry(c) }

// Group implements Specs.
func (c Classical) Group() string {
	if c.IsRegular() {
		return GroupPlatonic
	}
	return GroupArchimedean
}

// ConwaySymbol implements Specs.
func (c Classical) ConwaySymbol() string { return conwaySymbol(c) }

// IsHoneycomb implements Specs.
func (c Classical) IsHoneycomb() bool { return isHoneycomb(c) }

// AllClassical enumerates every classical solid: operations outermost,
// then families, then facets or twists.
func AllClassical() []Classical {
	var out []Classical
	for _, op := range Operations {
		for _, family := range Families {
			switch {
			case HasFacet(op):
				for _, facet := range Facets {
					out = append(out, Classical{Family: family, Operation: op, Facet: facet})
				}
			case op == Snub && family != 3:
				for _, twist := range Twists {
					out = append(out, Classical{Family: family, Operation: op, Twist: twist})
				}
			default:
				out = append(out, Classical{Family: family, Operation: op})
			}
		}
	}
	return out
}
