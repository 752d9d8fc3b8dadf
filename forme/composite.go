// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// composite.go: augmented, diminished and gyrate solids.

package forme

import (
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// CompositeForme is a modified source solid.
type CompositeForme struct {
	base
	spec specs.Composite

	modifiable []polyhedron.Cap
}

func newComposite(c specs.Composite, p *polyhedron.Polyhedron) *CompositeForme {
	f := &CompositeForme{base: base{s: c, p: p}, spec: c}
	f.modifiable = modifiableCaps(c, p)
	return f
}

// Composite returns the typed specs.
func (f *CompositeForme) Composite() specs.Composite { return f.spec }

// Normalize implements Forme.
func (f *CompositeForme) Normalize() Forme { return newComposite(f.spec, normalizedGeom(f.p)) }

// ModifiableCaps returns the caps an operation may remove or turn: the
// added caps of an augmented solid, the remaining pentagonal or square
// pyramids of a diminished one, the family cupolae of a gyrate one.
func (f *CompositeForme) ModifiableCaps() []polyhedron.Cap {
	return append([]polyhedron.Cap(nil), f.modifiable...)
}

// AugmentFaces returns the faces that can take a new cap.
func (f *CompositeForme) AugmentFaces() []polyhedron.Face {
	var out []polyhedron.Face
	for _, n := range augmentSides(f.spec) {
		for _, g := range f.p.FacesWithSides(n) {
			if f.IsSourceFace(g.Index()) {
				out = append(out, g)
			}
		}
	}
	return out
}

// CanAugment reports whether face can take a new cap.
func (f *CompositeForme) CanAugment(face int) bool {
	for _, g := range f.AugmentFaces() {
		if g.Index() == face {
			return true
		}
	}
	return false
}

// IsSourceFace reports a face outside every added cap. Only augmented
// solids add caps; every face of the others belongs to the source.
func (f *CompositeForme) IsSourceFace(face int) bool {
	if !f.spec.IsAugmentedSolid() {
		return true
	}
	for _, c := range f.modifiable {
		if c.HasFace(face) {
			return false
		}
	}
	return true
}

// SourceCentroid is the centroid of the vertices outside the added caps.
func (f *CompositeForme) SourceCentroid() geom.Vec {
	if !f.spec.IsAugmentedSolid() || len(f.modifiable) == 0 {
		return f.p.Centroid()
	}
	drop := make(map[int]bool)
	for _, c := range f.modifiable {
		for _, v := range c.InnerIndices() {
			drop[v] = true
		}
	}
	var pts []geom.Vec
	for i, v := range f.p.Vertices() {
		if !drop[i] {
			pts = append(pts, v)
		}
	}
	return geom.Centroid(pts)
}

// Orientation implements Forme: the first modifiable cap's axis, else the
// first augmentable face.
func (f *CompositeForme) Orientation() [2]geom.Vec {
	if len(f.modifiable) > 0 {
		if o := capOrientation(f.modifiable[0]); o[1] != geom.Origin {
			return o
		}
	}
	return fallbackOrientation(f.p)
}

// augmentSides lists the face sizes that take a new cap.
func augmentSides(c specs.Composite) []int {
	switch {
	case c.IsAugmentedSolid():
		n, err := c.AugmentFaceType()
		if err != nil {
			return nil
		}
		return []int{n}
	case c.IsDiminishedSolid():
		s, _ := c.SourceClassical()
		out := []int{int(s.Family)}
		if s.IsIcosahedral() && c.Diminished == 3 && c.Augmented == 0 {
			out = append(out, 3)
		}
		return out
	case c.IsGyrateSolid():
		s, _ := c.SourceClassical()
		return []int{2 * int(s.Family)}
	}
	return nil
}

func modifiableCaps(c specs.Composite, p *polyhedron.Polyhedron) []polyhedron.Cap {
	var out []polyhedron.Cap
	switch {
	case c.IsAugmentedSolid():
		n, err := c.AugmentFaceType()
		if err != nil {
			return nil
		}
		kind, base := polyhedron.Cupola, n/2
		if n <= 5 {
			kind, base = polyhedron.Pyramid, n
		}
		for _, cp := range p.CapsOf(kind) {
			if cp.Base() == base {
				out = append(out, cp)
			}
		}
		// The source may itself read as a cap of the same kind, as the
		// tetrahedron does once a second pyramid makes it a bipyramid.
		if len(out) > c.Augmented {
			out = out[:c.Augmented]
		}
	case c.IsDiminishedSolid():
		out = p.CapsOf(polyhedron.Pyramid)
	case c.IsGyrateSolid():
		s, _ := c.SourceClassical()
		for _, cp := range p.CapsOf(polyhedron.Cupola) {
			if cp.Base() == int(s.Family) {
				out = append(out, cp)
			}
		}
	}
	return out
}
