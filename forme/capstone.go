// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// capstone.go: ends and sides of pyramids, cupolae, rotundae, prisms and
// antiprisms.

package forme

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// CapstoneForme is a capstone solid with its ends located.
type CapstoneForme struct {
	base
	spec specs.Capstone

	caps []polyhedron.Cap
	ends []polyhedron.Face
}

func newCapstone(c specs.Capstone, p *polyhedron.Polyhedron) *CapstoneForme {
	f := &CapstoneForme{base: base{s: c, p: p}, spec: c}
	f.caps = endCaps(c, p)
	f.ends = endFaces(c, p, f.caps)
	return f
}

// Capstone returns the typed specs.
func (f *CapstoneForme) Capstone() specs.Capstone { return f.spec }

// Normalize implements Forme.
func (f *CapstoneForme) Normalize() Forme { return newCapstone(f.spec, normalizedGeom(f.p)) }

// EndCaps returns the caps at the ends: one for a mono-capstone, two for a
// bi-capstone (cupola first for a cupolarotunda).
//
// Errors:
//   - ErrNoCap: a prism or antiprism, or caps not found in the geometry.
func (f *CapstoneForme) EndCaps() ([]polyhedron.Cap, error) {
	if len(f.caps) == 0 {
		return nil, fmt.Errorf("%w: %s has no end caps", ErrNoCap, f.spec.Name())
	}
	return append([]polyhedron.Cap(nil), f.caps...), nil
}

// EndFaces returns the base faces at the ends: the base of a mono-capstone,
// both bases of a prism or antiprism, none for a bi-capstone.
func (f *CapstoneForme) EndFaces() []polyhedron.Face { return append([]polyhedron.Face(nil), f.ends...) }

// IsEndFace reports whether face is an end face or lies on an end cap.
func (f *CapstoneForme) IsEndFace(face int) bool {
	for _, e := range f.ends {
		if e.Index() == face {
			return true
		}
	}
	for _, c := range f.caps {
		if c.HasFace(face) {
			return true
		}
	}
	return false
}

// SideFaces returns the faces of the prismatic middle: neither end faces nor
// cap faces.
func (f *CapstoneForme) SideFaces() []polyhedron.Face {
	var out []polyhedron.Face
	for _, g := range f.p.Faces() {
		if !f.IsEndFace(g.Index()) {
			out = append(out, g)
		}
	}
	return out
}

// Axis is the direction of the first end.
func (f *CapstoneForme) Axis() geom.Vec { return f.Orientation()[0] }

// Orientation implements Forme: the first end's axis and a direction across
// it through a top vertex.
func (f *CapstoneForme) Orientation() [2]geom.Vec {
	if len(f.caps) > 0 {
		o := capOrientation(f.caps[0])
		if o[1] != geom.Origin {
			return o
		}
	}
	if len(f.ends) > 0 {
		e := f.ends[0]
		ref := geom.Unit(geom.ProjectOnto(r3.Sub(e.Points()[0], e.Centroid()), e.Normal()))
		if ref != geom.Origin {
			return [2]geom.Vec{e.Normal(), ref}
		}
	}
	return fallbackOrientation(f.p)
}

// capKinds maps the cap types of c onto discovered cap kinds.
func capKinds(c specs.Capstone) []polyhedron.CapKind {
	var out []polyhedron.CapKind
	for _, t := range c.CapTypes() {
		switch {
		case t == specs.Pyramid:
			out = append(out, polyhedron.Pyramid)
		case t == specs.Rotunda:
			out = append(out, polyhedron.Rotunda)
		case c.IsDigonal():
			out = append(out, polyhedron.Fastigium)
		default:
			out = append(out, polyhedron.Cupola)
		}
	}
	return out
}

func endCaps(c specs.Capstone, p *polyhedron.Polyhedron) []polyhedron.Cap {
	if !c.HasCaps() {
		return nil
	}
	kinds := capKinds(c)
	if len(kinds) == 0 {
		return nil
	}
	byKind := func(kind polyhedron.CapKind) []polyhedron.Cap {
		var out []polyhedron.Cap
		for _, cp := range p.CapsOf(kind) {
			if cp.Base() == c.Base {
				out = append(out, cp)
			}
		}
		return out
	}
	// Pyramid-like clusters also form inside gyroelongated bands. The end
	// cap faces a lone base polygon when there is one, and otherwise reaches
	// farthest from the centre.
	first := byKind(kinds[0])
	if len(first) == 0 {
		return nil
	}
	score := func(cp polyhedron.Cap) float64 { return geom.Distance(cp.TopPoint(), p.Centroid()) }
	if bases := p.FacesWithSides(c.BaseSides()); c.IsMono() && len(bases) == 1 {
		n := bases[0].Normal()
		score = func(cp polyhedron.Cap) float64 { return geom.Angle(cp.Axis(), n) }
	}
	sort.SliceStable(first, func(i, j int) bool { return score(first[i]) > score(first[j])+1e-9 })
	out := []polyhedron.Cap{first[0]}
	if !c.IsBi() {
		return out
	}
	second := first[1:]
	if len(kinds) > 1 {
		second = byKind(kinds[1])
	}
	dirs := make([]geom.Vec, len(second))
	for i, cp := range second {
		dirs[i] = cp.Axis()
	}
	if i := mostOpposite(first[0].Axis(), dirs); i >= 0 {
		out = append(out, second[i])
	}
	return out
}

func endFaces(c specs.Capstone, p *polyhedron.Polyhedron, caps []polyhedron.Cap) []polyhedron.Face {
	if c.IsBi() {
		return nil
	}
	faces := p.FacesWithSides(c.BaseSides())
	if len(faces) == 0 {
		return nil
	}
	dirs := make([]geom.Vec, len(faces))
	for i, g := range faces {
		dirs[i] = g.Normal()
	}
	if c.IsMono() {
		if len(caps) == 0 {
			return nil
		}
		return []polyhedron.Face{faces[mostOpposite(caps[0].Axis(), dirs)]}
	}
	return []polyhedron.Face{faces[0], faces[mostOpposite(dirs[0], dirs)]}
}
