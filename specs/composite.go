// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// composite.go: augmented, diminished and gyrate derivatives of classical
// and prismatic sources.

package specs

import "fmt"

// Align distinguishes the two placements of a pair of modifications.
type Align string

// Alignments.
const (
	Para Align = "para"
	Meta Align = "meta"
)

// Alignments lists both alignments, para first.
var Alignments = []Align{Para, Meta}

// Composite is a source solid with caps added, removed or turned.
//
// Source is a Classical or a Capstone prism. Align is set only when exactly
// two modifications are present on a source that distinguishes para from
// meta: the hexagonal prism and the icosahedral family.
type Composite struct {
	Source     Specs
	Augmented  int
	Diminished int
	Gyrate     int
	Align      Align
}

func (Composite) sealed() {}

// Kind implements Specs.
func (Composite) Kind() Kind { return KindComposite }

// Equals implements Specs.
func (c Composite) Equals(o Specs) bool { return equal(c, o) }

// Equivalent implements Specs.
func (c Composite) Equivalent(o Specs) bool { return equivalent(c, o) }

// Unwrap returns the source when nothing is modified.
func (c Composite) Unwrap() Specs {
	if c.TotalCount() == 0 {
		return c.Source
	}
	return c
}

// HasAlignment reports whether the record distinguishes para from meta.
func (c Composite) HasAlignment() bool {
	if c.TotalCount() != 2 {
		return false
	}
	switch s := c.Source.(type) {
	case Capstone:
		return s.IsSecondary()
	case Classical:
		return s.IsIcosahedral()
	}
	return false
}

// Normalize drops a meaningless alignment.
func (c Composite) Normalize() Composite {
	if !c.HasAlignment() {
		c.Align = ""
	}
	return c
}

// WithData returns the enumerated solid with data d in place of the
// receiver's. An empty Align matches either alignment. A record without
// modifications resolves to Wrap(d.Source).
func (Composite) WithData(d Composite) (Composite, error) {
	if d.TotalCount() == 0 {
		return Wrap(d.Source)
	}
	return Default().Composite.WithData(d.Normalize())
}

func (c Composite) matches(q Composite) bool {
	return equal(c.Source, q.Source) &&
		c.Augmented == q.Augmented && c.Diminished == q.Diminished && c.Gyrate == q.Gyrate &&
		(q.Align == "" || c.Align == q.Align)
}

// TotalCount sums all modifications.
func (c Composite) TotalCount() int { return c.Augmented + c.Diminished + c.Gyrate }

func (c Composite) IsMono() bool       { return c.TotalCount() == 1 }
func (c Composite) IsBi() bool         { return c.TotalCount() == 2 }
func (c Composite) IsTri() bool        { return c.TotalCount() == 3 }
func (c Composite) IsAugmented() bool  { return c.Augmented > 0 }
func (c Composite) IsDiminished() bool { return c.Diminished > 0 }
func (c Composite) IsGyrate() bool     { return c.Gyrate > 0 }
func (c Composite) IsPara() bool       { return c.Align == Para }
func (c Composite) IsMeta() bool       { return c.Align == Meta }

// IsChiral implements Specs. No composite is chiral.
func (Composite) IsChiral() bool { return false }

// SourcePrism returns the prismatic source.
func (c Composite) SourcePrism() (Capstone, bool) {
	s, ok := c.Source.(Capstone)
	return s, ok
}

// SourceClassical returns the classical source.
func (c Composite) SourceClassical() (Classical, bool) {
	s, ok := c.Source.(Classical)
	return s, ok
}

// IsAugmentedPrism reports a prismatic source.
func (c Composite) IsAugmentedPrism() bool {
	_, ok := c.SourcePrism()
	return ok
}

// IsAugmentedClassical reports a face-facet regular or truncated source.
func (c Composite) IsAugmentedClassical() bool {
	s, ok := c.SourceClassical()
	if !ok {
		return false
	}
	return s.IsTruncated() || (s.IsRegular() && s.IsFace())
}

// IsAugmentedSolid reports a source that only takes augmentations.
func (c Composite) IsAugmentedSolid() bool { return c.IsAugmentedPrism() || c.IsAugmentedClassical() }

// IsDiminishedSolid reports the octahedron or icosahedron as source.
func (c Composite) IsDiminishedSolid() bool {
	s, ok := c.SourceClassical()
	return ok && s.IsRegular() && s.IsVertex()
}

// IsGyrateSolid reports a cantellated source.
func (c Composite) IsGyrateSolid() bool {
	s, ok := c.SourceClassical()
	return ok && s.IsCantellated()
}

// AugmentFaceType is the side count of the faces that take a cap: squares
// for prisms, the family polygon (doubled when truncated) for classicals.
func (c Composite) AugmentFaceType() (int, error) {
	if c.IsAugmentedPrism() {
		return 4, nil
	}
	if !c.IsAugmentedClassical() {
		return 0, fmt.Errorf("%w: %s is not an augmented solid", ErrInvalidData, c.Name())
	}
	s, _ := c.SourceClassical()
	if s.IsTruncated() {
		return 2 * int(s.Family), nil
	}
	return int(s.Family), nil
}

// Diminish removes one augmentation. The remaining pair, if any, is meta.
func (c Composite) Diminish() (Composite, error) {
	if !c.IsAugmentedSolid() {
		return Composite{}, fmt.Errorf("%w: %s is not an augmented solid", ErrInvalidData, c.Name())
	}
	d := c
	d.Augmented--
	d.Align = Meta
	return c.WithData(d)
}

// AugmentDiminished fills a diminished cap back in. With triangular set the
// pyramid goes onto a triangle of a tridiminished icosahedron instead.
func (c Composite) AugmentDiminished(triangular bool) (Composite, error) {
	if !c.IsDiminishedSolid() {
		return Composite{}, fmt.Errorf("%w: %s is not a diminished solid", ErrInvalidData, c.Name())
	}
	d := c
	if triangular {
		d.Augmented = 1
	} else {
		d.Diminished--
		d.Align = Meta
	}
	return c.WithData(d)
}

// AugmentGyrate fills a diminished cap of a gyrate solid with a cupola,
// either turned (ortho, adding a gyration) or in place (gyro).
func (c Composite) AugmentGyrate(g Gyration) (Composite, error) {
	if !c.IsGyrateSolid() {
		return Composite{}, fmt.Errorf("%w: %s is not a gyrate solid", ErrInvalidData, c.Name())
	}
	d := c
	d.Diminished--
	if g == Ortho {
		d.Gyrate++
	} else {
		d.Align = Meta
	}
	return c.WithData(d)
}

// Ungyrate turns one gyrated cap back.
func (c Composite) Ungyrate() (Composite, error) {
	d := c
	d.Gyrate--
	d.Align = Meta
	return c.WithData(d)
}

// Name implements Specs.
func (c Composite) Name() string { return compositeName(c) }

// CanonicalName implements Specs.
func (c Composite) CanonicalName() string { return canonicalName(c.Name()) }

// AlternateNames implements Specs.
func (c Composite) AlternateNames() []string { return alternateNames(c.CanonicalName()) }

// Symmetry implements Specs.
func (c Composite) Symmetry() Symmetry { return compositeSymmetry(c) }

// Group implements Specs.
func (c Composite) Group() string {
	if c.TotalCount() == 0 {
		return c.Source.Group()
	}
	return GroupJohnson
}

// ConwaySymbol implements Specs.
func (c Composite) ConwaySymbol() string { return conwaySymbol(c) }

// IsHoneycomb implements Specs.
func (c Composite) IsHoneycomb() bool { return isHoneycomb(c) }

// Wrap returns the unmodified composite over source. It is not part of the
// enumeration; it exists so operations can treat a source as a composite.
func Wrap(source Specs) (Composite, error) {
	if source == nil {
		return Composite{}, fmt.Errorf("%w: composite without source", ErrInvalidData)
	}
	if !HasSource(source) {
		return Composite{}, fmt.Errorf("%w: %s is not a composite source", ErrInvalidData, source.Name())
	}
	return Composite{Source: source}, nil
}

// HasSource reports whether s is one of the composite sources.
func HasSource(s Specs) bool {
	for _, src := range CompositeSources() {
		if equal(src, s) {
			return true
		}
	}
	return false
}

// prismaticSources are the triangular, square, pentagonal and hexagonal
// prisms.
func prismaticSources() []Specs {
	var out []Specs
	for _, c := range AllCapstone() {
		if c.IsPrism() && (c.IsPrimary() || c.IsTriangular()) {
			out = append(out, c)
		}
	}
	return out
}

func augmentedClassicalSources() []Specs {
	var out []Specs
	for _, c := range AllClassical() {
		if c.HasFacet() && !c.IsVertex() {
			out = append(out, c)
		}
	}
	return out
}

func diminishedSources() []Specs {
	return []Specs{
		Classical{Family: 4, Operation: Regular, Facet: VertexFacet},
		Classical{Family: 5, Operation: Regular, Facet: VertexFacet},
	}
}

func gyrateSources() []Specs {
	var out []Specs
	for _, c := range AllClassical() {
		if c.IsCantellated() {
			out = append(out, c)
		}
	}
	return out
}

// CompositeSources lists every source in enumeration order.
func CompositeSources() []Specs {
	out := prismaticSources()
	out = append(out, augmentedClassicalSources()...)
	out = append(out, diminishedSources()...)
	return append(out, gyrateSources()...)
}

// AugmentLimit is the most caps a source takes: 3 on the triangular and
// hexagonal prisms, 2 on the others, family−2 on classicals.
func AugmentLimit(source Specs) int {
	switch s := source.(type) {
	case Capstone:
		if s.Base%3 == 0 {
			return 3
		}
		return 2
	case Classical:
		return int(s.Family) - 2
	}
	return 0
}

// DiminishLimit is the most caps that can be removed from a diminished
// source.
func DiminishLimit(source Classical) int {
	if source.IsIcosahedral() {
		return 3
	}
	return 1
}

// GyrateMod is one (gyrate, diminished) pair for a cantellated source.
type GyrateMod struct {
	Gyrate     int
	Diminished int
}

// GyrateMods lists the legal modifications of a cantellated source,
// unmodified first.
func GyrateMods(source Classical) []GyrateMod {
	switch source.Family {
	case 3:
		return []GyrateMod{{}, {Gyrate: 1}, {Diminished: 1}}
	case 4:
		return []GyrateMod{{}, {Gyrate: 1}, {Gyrate: 2}, {Diminished: 1}, {Gyrate: 1, Diminished: 1}, {Diminished: 2}}
	}
	var out []GyrateMod
	for g := 0; g <= 3; g++ {
		for d := 0; d <= 3-g; d++ {
			out = append(out, GyrateMod{Gyrate: g, Diminished: d})
		}
	}
	return out
}

func withAlignments(c Composite) []Composite {
	if c.TotalCount() == 0 {
		return nil
	}
	if !c.HasAlignment() {
		return []Composite{c}
	}
	out := make([]Composite, 0, len(Alignments))
	for _, a := range Alignments {
		c.Align = a
		out = append(out, c)
	}
	return out
}

// AllComposite enumerates every modified composite: augmented prisms and
// classicals, diminished octahedron and icosahedra (with the augmented
// tridiminished icosahedron), then gyrate and diminished cantellated
// solids.
func AllComposite() []Composite {
	var out []Composite
	augmentable := append(prismaticSources(), augmentedClassicalSources()...)
	for _, src := range augmentable {
		for n := 0; n <= AugmentLimit(src); n++ {
			out = append(out, withAlignments(Composite{Source: src, Augmented: n})...)
		}
	}
	for _, src := range diminishedSources() {
		cl := src.(Classical)
		for n := 0; n <= DiminishLimit(cl); n++ {
			out = append(out, withAlignments(Composite{Source: src, Diminished: n})...)
		}
		if cl.IsIcosahedral() {
			out = append(out, Composite{Source: src, Diminished: 3, Augmented: 1})
		}
	}
	for _, src := range gyrateSources() {
		for _, m := range GyrateMods(src.(Classical)) {
			out = append(out, withAlignments(Composite{Source: src, Gyrate: m.Gyrate, Diminished: m.Diminished})...)
		}
	}
	return out
}
