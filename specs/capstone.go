// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// capstone.go: pyramids, cupolae and rotundae with their elongations and
// doublings, and the prisms and antiprisms they stand on.

package specs

import "fmt"

// PolygonType picks the cap family of a base: primary bases carry pyramids,
// secondary bases carry cupolae and rotundae over a doubled polygon.
type PolygonType string

// Polygon types.
const (
	Primary   PolygonType = "primary"
	Secondary PolygonType = "secondary"
)

// PolygonTypes lists both types, primary first.
var PolygonTypes = []PolygonType{Primary, Secondary}

// Elongation is the prismatic middle between the caps.
type Elongation string

// Elongations.
const (
	None      Elongation = "none"
	Prism     Elongation = "prism"
	Antiprism Elongation = "antiprism"
)

// Elongations lists every elongation in enumeration order.
var Elongations = []Elongation{None, Prism, Antiprism}

// Gyration is the relative turn of the two caps of a bicupola or birotunda.
type Gyration string

// Gyrations.
const (
	Ortho Gyration = "ortho"
	Gyro  Gyration = "gyro"
)

// Gyrations lists both gyrations, ortho first.
var Gyrations = []Gyration{Ortho, Gyro}

// Opposite swaps ortho and gyro.
func (g Gyration) Opposite() Gyration {
	if g == Ortho {
		return Gyro
	}
	return Ortho
}

// CapType is the shape of one cap.
type CapType string

// Cap types.
const (
	Pyramid       CapType = "pyramid"
	Cupola        CapType = "cupola"
	Rotunda       CapType = "rotunda"
	Cupolarotunda CapType = "cupolarotunda"
)

// Capstone is a pyramid, cupola or rotunda, elongated or doubled, or with no
// caps a prism or antiprism.
//
// Gyration is set only for secondary bi-capstones that are not
// gyroelongated; Twist only for gyroelongated secondary bi-capstones;
// RotundaCount is nonzero only for pentagonal secondary bases.
type Capstone struct {
	Base         int
	Type         PolygonType
	Elongation   Elongation
	Count        int
	RotundaCount int
	Gyration     Gyration
	Twist        Twist
}

func (Capstone) sealed() {}

// Kind implements Specs.
func (Capstone) Kind() Kind { return KindCapstone }

// Unwrap implements Specs.
func (c Capstone) Unwrap() Specs { return c }

// Equals implements Specs.
func (c Capstone) Equals(o Specs) bool { return equal(c, o) }

// Equivalent implements Specs.
func (c Capstone) Equivalent(o Specs) bool { return equivalent(c, o) }

func capstoneHasGyrate(c Capstone) bool {
	return c.Count == 2 && c.Type == Secondary && c.Elongation != Antiprism
}

func capstoneChiral(c Capstone) bool {
	return c.Elongation == Antiprism && c.Count == 2 && c.Type == Secondary
}

// Normalize drops fields that are meaningless for the record and fills the
// default twist.
func (c Capstone) Normalize() Capstone {
	if c.Elongation == "" {
		c.Elongation = None
	}
	if !capstoneHasGyrate(c) {
		c.Gyration = ""
	}
	if !capstoneChiral(c) {
		c.Twist = ""
	} else if c.Twist == "" {
		c.Twist = Left
	}
	if c.Base != 5 || c.Type == Primary {
		c.RotundaCount = 0
	}
	return c
}

// WithData returns the enumerated solid with data d in place of the
// receiver's. An empty Gyration matches either gyration.
func (Capstone) WithData(d Capstone) (Capstone, error) {
	return Default().Capstone.WithData(d.Normalize())
}

func (c Capstone) matches(q Capstone) bool {
	return c.Base == q.Base && c.Type == q.Type && c.Elongation == q.Elongation &&
		c.Count == q.Count && c.RotundaCount == q.RotundaCount &&
		(q.Gyration == "" || c.Gyration == q.Gyration) &&
		(q.Twist == "" || c.Twist == q.Twist)
}

// WithElongation swaps the prismatic middle.
func (c Capstone) WithElongation(e Elongation, twist Twist) (Capstone, error) {
	d := c
	d.Elongation = e
	d.Twist = twist
	if capstoneHasGyrate(d) && d.Gyration == "" {
		d.Gyration = Ortho
	}
	return c.WithData(d)
}

func (c Capstone) IsDigonal() bool    { return c.Base == 2 }
func (c Capstone) IsTriangular() bool { return c.Base == 3 }
func (c Capstone) IsSquare() bool     { return c.Base == 4 }
func (c Capstone) IsPentagonal() bool { return c.Base == 5 }

func (c Capstone) IsPrimary() bool   { return c.Type == Primary }
func (c Capstone) IsSecondary() bool { return c.Type == Secondary }

// IsPrismatic reports a capstone with no caps.
func (c Capstone) IsPrismatic() bool { return c.Count == 0 }
func (c Capstone) IsMono() bool      { return c.Count == 1 }
func (c Capstone) IsBi() bool        { return c.Count == 2 }

func (c Capstone) IsShortened() bool      { return c.Elongation == None }
func (c Capstone) IsElongated() bool      { return c.Elongation == Prism }
func (c Capstone) IsGyroelongated() bool  { return c.Elongation == Antiprism }
func (c Capstone) IsGyro() bool           { return c.Gyration == Gyro }
func (c Capstone) IsOrtho() bool          { return c.Gyration == Ortho }
func (c Capstone) IsPrism() bool          { return c.IsPrismatic() && c.IsElongated() }
func (c Capstone) IsAntiprism() bool      { return c.IsPrismatic() && c.IsGyroelongated() }
func (c Capstone) IsPyramid() bool        { return !c.IsPrismatic() && c.IsPrimary() }
func (c Capstone) IsCupola() bool         { return !c.IsPrismatic() && c.IsSecondary() && c.RotundaCount == 0 }
func (c Capstone) IsRotunda() bool        { return !c.IsPrismatic() && c.Count == c.RotundaCount }
func (c Capstone) IsCupolaRotunda() bool  { return c.IsBi() && c.RotundaCount == 1 }
func (c Capstone) HasGyrate() bool        { return capstoneHasGyrate(c) }
func (c Capstone) IsChiral() bool         { return capstoneChiral(c) }
func (c Capstone) HasCaps() bool          { return c.Count > 0 }

// CapType returns the single cap type; a cupolarotunda reports
// Cupolarotunda. Prisms and antiprisms fail with ErrInvalidData.
func (c Capstone) CapType() (CapType, error) {
	switch {
	case c.IsPrismatic():
		return "", fmt.Errorf("%w: %s has no cap", ErrInvalidData, c.Name())
	case c.IsPyramid():
		return Pyramid, nil
	case c.IsCupola():
		return Cupola, nil
	case c.IsCupolaRotunda():
		return Cupolarotunda, nil
	default:
		return Rotunda, nil
	}
}

// CapTypes lists the distinct cap types; empty for prismatic solids.
func (c Capstone) CapTypes() []CapType {
	t, err := c.CapType()
	if err != nil {
		return nil
	}
	if t == Cupolarotunda {
		return []CapType{Cupola, Rotunda}
	}
	return []CapType{t}
}

// Remove takes one cap of the given type off.
func (c Capstone) Remove(t CapType) (Capstone, error) {
	if c.Count == 0 {
		return Capstone{}, fmt.Errorf("%w: %s has no cap to remove", ErrInvalidData, c.Name())
	}
	d := c
	d.Count--
	if t == Rotunda {
		d.RotundaCount--
	}
	if d.RotundaCount < 0 {
		return Capstone{}, fmt.Errorf("%w: %s has no rotunda", ErrInvalidData, c.Name())
	}
	return c.WithData(d)
}

// BaseSides is the side count of the polygon the caps sit on.
func (c Capstone) BaseSides() int {
	if c.IsPrimary() {
		return c.Base
	}
	return 2 * c.Base
}

// PrismaticType returns Prism or Antiprism for prismatic solids.
func (c Capstone) PrismaticType() (Elongation, error) {
	if !c.IsPrismatic() {
		return "", fmt.Errorf("%w: %s is not prismatic", ErrInvalidData, c.Name())
	}
	return c.Elongation, nil
}

// Gyrate flips the relative turn of the caps: the twist of a gyroelongated
// solid, the ortho/gyro gyration otherwise.
func (c Capstone) Gyrate() (Capstone, error) {
	d := c
	switch {
	case c.IsChiral():
		d.Twist = c.Twist.Opposite()
	case c.HasGyrate():
		d.Gyration = c.Gyration.Opposite()
	default:
		return Capstone{}, fmt.Errorf("%w: %s cannot be gyrated", ErrInvalidData, c.Name())
	}
	return c.WithData(d)
}

// Name implements Specs.
func (c Capstone) Name() string { return capstoneName(c) }

// CanonicalName implements Specs.
func (c Capstone) CanonicalName() string { return canonicalName(c.Name()) }

// AlternateNames implements Specs.
func (c Capstone) AlternateNames() []string { return alternateNames(c.CanonicalName()) }

// Symmetry implements Specs.
func (c Capstone) Symmetry() Symmetry { return capstoneSymmetry(c) }

// Group implements Specs.
func (c Capstone) Group() string {
	switch {
	case c.IsPrism():
		return GroupPrism
	case c.IsAntiprism():
		return GroupAntiprism
	}
	return GroupJohnson
}

// ConwaySymbol implements Specs.
func (c Capstone) ConwaySymbol() string { return conwaySymbol(c) }

// IsHoneycomb implements Specs.
func (c Capstone) IsHoneycomb() bool { return isHoneycomb(c) }

func rotundaCounts(t PolygonType, base, count int) []int {
	if t == Primary || base != 5 {
		return []int{0}
	}
	out := make([]int, 0, count+1)
	for i := 0; i <= count; i++ {
		out = append(out, i)
	}
	return out
}

// AllCapstone enumerates every capstone: bases 3..5, polygon types,
// elongations and counts in that nesting, followed by the digonal antiprism,
// the fastigium and the gyrobifastigium.
func AllCapstone() []Capstone {
	var out []Capstone
	for _, base := range []int{3, 4, 5} {
		for _, t := range PolygonTypes {
			for _, e := range Elongations {
				for count := 0; count <= 2; count++ {
					// Gyroelongated triangular pyramids are not convex.
					if count > 0 && base == 3 && t == Primary && e == Antiprism {
						continue
					}
					if count == 0 && e == None {
						continue
					}
					for _, rc := range rotundaCounts(t, base, count) {
						c := Capstone{Base: base, Type: t, Elongation: e, Count: count, RotundaCount: rc}
						switch {
						case capstoneHasGyrate(c):
							for _, g := range Gyrations {
								c.Gyration = g
								out = append(out, c)
							}
						case capstoneChiral(c):
							for _, tw := range Twists {
								c.Twist = tw
								out = append(out, c)
							}
						default:
							out = append(out, c)
						}
					}
				}
			}
		}
	}
	return append(out,
		Capstone{Base: 2, Type: Primary, Elongation: Antiprism},
		Capstone{Base: 2, Type: Secondary, Elongation: None, Count: 1},
		Capstone{Base: 2, Type: Secondary, Elongation: None, Count: 2, Gyration: Gyro},
	)
}
