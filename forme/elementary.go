// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// elementary.go: the sphenocorona pair and the other irregular solids.

package forme

import (
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// ElementaryForme is one of the irregular Johnson solids.
type ElementaryForme struct {
	base
	spec specs.Elementary
}

func newElementary(e specs.Elementary, p *polyhedron.Polyhedron) *ElementaryForme {
	return &ElementaryForme{base: base{s: e, p: p}, spec: e}
}

// Elementary returns the typed specs.
func (f *ElementaryForme) Elementary() specs.Elementary { return f.spec }

// Normalize implements Forme.
func (f *ElementaryForme) Normalize() Forme { return newElementary(f.spec, normalizedGeom(f.p)) }

// AugmentFaces returns the squares, where a square pyramid fits.
func (f *ElementaryForme) AugmentFaces() []polyhedron.Face { return f.p.FacesWithSides(4) }

// ModifiableCaps returns the square pyramids.
func (f *ElementaryForme) ModifiableCaps() []polyhedron.Cap {
	var out []polyhedron.Cap
	for _, c := range f.p.CapsOf(polyhedron.Pyramid) {
		if c.Base() == 4 {
			out = append(out, c)
		}
	}
	return out
}

// Orientation implements Forme: the first square, else the first face.
func (f *ElementaryForme) Orientation() [2]geom.Vec {
	if sq, ok := f.p.FaceWithSides(4); ok {
		return [2]geom.Vec{sq.Normal(), sq.Edges()[0].Direction()}
	}
	return fallbackOrientation(f.p)
}
