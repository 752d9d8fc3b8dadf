// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// forme.go: the Forme interface, dispatch by kind and the shared helpers.

package forme

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Forme is a solid together with one realization of it.
type Forme interface {
	Specs() specs.Specs
	Geom() *polyhedron.Polyhedron

	// Orientation is a pair of non-parallel directions fixed by the solid's
	// structure, used to superpose two formes.
	Orientation() [2]geom.Vec

	// Caps lists the caps of the geometry.
	Caps() []polyhedron.Cap

	// Normalize returns the same forme with every face cycle starting at
	// its smallest vertex index. It is idempotent.
	Normalize() Forme
}

// CreateForme binds s to p. A composite without modifications is bound as
// its source.
//
// Errors:
//   - ErrNilInput: s or p is nil.
//   - ErrNoFacet: the faces of a classical solid could not be classified.
func CreateForme(s specs.Specs, p *polyhedron.Polyhedron) (Forme, error) {
	if s == nil || p == nil {
		return nil, ErrNilInput
	}
	type result struct {
		f   Forme
		err error
	}
	r := specs.Match(s.Unwrap(), specs.MatchCases[result]{
		Classical: func(c specs.Classical) result {
			f, err := newClassical(c, p)
			return result{f, err}
		},
		Capstone:   func(c specs.Capstone) result { return result{newCapstone(c, p), nil} },
		Composite:  func(c specs.Composite) result { return result{newComposite(c, p), nil} },
		Elementary: func(e specs.Elementary) result { return result{newElementary(e, p), nil} },
	})
	if r.f == nil && r.err == nil {
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrNilInput, s.Kind())
	}
	return r.f, r.err
}

// FromSpecs realizes s with the default builder and binds it.
func FromSpecs(s specs.Specs) (Forme, error) { return FromBuilder(builder.Default(), s) }

// FromBuilder realizes s with b and binds it.
func FromBuilder(b *builder.Builder, s specs.Specs) (Forme, error) {
	if s == nil {
		return nil, ErrNilInput
	}
	p, err := b.Realize(s)
	if err != nil {
		return nil, err
	}
	return CreateForme(s, p)
}

// MustFromSpecs is FromSpecs for examples and tests; it panics on error.
func MustFromSpecs(s specs.Specs) Forme {
	f, err := FromSpecs(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Facet returns the facet of face on a classical forme.
//
// Errors:
//   - ErrNoFacet: f is not classical, or face is an edge face or out of
//     range.
func Facet(f Forme, face int) (specs.Facet, error) {
	c, ok := f.(*ClassicalForme)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a classical solid", ErrNoFacet, f.Specs().Name())
	}
	facet, ok := c.FacetOf(face)
	if !ok {
		return "", fmt.Errorf("%w: face %d of %s", ErrNoFacet, face, f.Specs().Name())
	}
	return facet, nil
}

// base holds what every variant shares.
type base struct {
	s specs.Specs
	p *polyhedron.Polyhedron
}

// Specs implements Forme.
func (b base) Specs() specs.Specs { return b.s }

// Geom implements Forme.
func (b base) Geom() *polyhedron.Polyhedron { return b.p }

// Caps implements Forme.
func (b base) Caps() []polyhedron.Cap { return b.p.Caps() }

// normalizedGeom rotates every cycle to start at its smallest index.
func normalizedGeom(p *polyhedron.Polyhedron) *polyhedron.Polyhedron {
	faces := p.FaceCycles()
	for i, f := range faces {
		m := 0
		for j, v := range f {
			if v < f[m] {
				m = j
			}
		}
		faces[i] = append(f[m:], f[:m]...)
	}
	return p.WithFaces(faces)
}

// fallbackOrientation is the first face normal and the direction from the
// centroid of that face to its first vertex.
func fallbackOrientation(p *polyhedron.Polyhedron) [2]geom.Vec {
	if p.NumFaces() == 0 {
		return [2]geom.Vec{{Z: 1}, {X: 1}}
	}
	f := p.Face(0)
	return [2]geom.Vec{f.Normal(), geom.Unit(r3.Sub(f.Points()[0], f.Centroid()))}
}

// capOrientation is the cap axis and a direction across it through the
// first top vertex, or the first boundary vertex for a pyramid.
func capOrientation(c polyhedron.Cap) [2]geom.Vec {
	axis := c.Axis()
	ref := c.BoundaryPoints()[0]
	origin := c.Centroid()
	if c.Kind() != polyhedron.Pyramid {
		top := c.Top()
		ref = top[0].Vec()
		origin = c.TopPoint()
	}
	return [2]geom.Vec{axis, geom.Unit(geom.ProjectOnto(r3.Sub(ref, origin), axis))}
}

// mostOpposite returns the index in dirs of the direction at the widest
// angle from d.
func mostOpposite(d geom.Vec, dirs []geom.Vec) int {
	best, angle := -1, -1.0
	for i, o := range dirs {
		if a := geom.Angle(d, o); a > angle {
			best, angle = i, a
		}
	}
	return best
}

func faceIndices(fs []polyhedron.Face) []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f.Index()
	}
	return out
}
