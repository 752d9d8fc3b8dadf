// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// capstone.go: prisms, antiprisms and the pyramids, cupolae and rotundae
// stacked on them.
//
// Layout: the top ring of m = BaseSides vertices lies in z = 0 with vertex 0
// on the +x axis. A prism adds a second ring at z = −1, an antiprism one
// turned by π/m at the antiprism height. The first cap points up from the
// top ring, the second down from the bottom ring; shift 1 turns a cap by one
// base step (gyro, or the right twist). Every cap template has a triangle
// over the base edge (B0, B1).

package builder

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

const capEps = 1e-6

// ringRadius is the circumradius of the unit-edge m-gon.
func ringRadius(m int) float64 { return 0.5 / math.Sin(math.Pi/float64(m)) }

// ring places the unit-edge m-gon at height z, vertex 0 at angle phase.
func ring(m int, phase, z float64) []geom.Vec {
	r := ringRadius(m)
	out := make([]geom.Vec, m)
	for i := range out {
		a := phase + 2*math.Pi*float64(i)/float64(m)
		out[i] = geom.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}
	return out
}

// antiprismHeight separates the two rings of the unit-edge m-antiprism.
func antiprismHeight(m int) float64 {
	d := 2 * ringRadius(m) * math.Sin(math.Pi/float64(2*m))
	return math.Sqrt(1 - d*d)
}

// capTemplate returns the off-base points of a cap standing on the
// unit-edge m-gon in z = 0, apex side up.
func capTemplate(kind polyhedron.CapKind, m int) ([]geom.Vec, error) {
	switch kind {
	case polyhedron.Pyramid:
		if m < 3 || m > 5 {
			break
		}
		r := ringRadius(m)
		return []geom.Vec{{Z: math.Sqrt(1 - r*r)}}, nil
	case polyhedron.Cupola, polyhedron.Fastigium:
		if m%2 != 0 || m < 4 || m > 10 {
			break
		}
		n := m / 2
		rn, rm := ringRadius(n), ringRadius(m)
		half := math.Pi / float64(m)
		h := math.Sqrt(1 - (rn*rn + rm*rm - 2*rn*rm*math.Cos(half)))
		return ring(n, half, h), nil
	case polyhedron.Rotunda:
		if m != 10 {
			break
		}
		return rotundaTemplate()
	}
	return nil, fmt.Errorf("%w: no %s over a %d-gon", ErrNotAugmentable, kind, m)
}

// rotundaTemplate cuts the upper half off the unit-edge icosidodecahedron
// along a decagonal equator.
var rotundaTemplate = sync.OnceValues(func() ([]geom.Vec, error) {
	pts, err := classicalPoints(specs.Classical{Family: 5, Operation: specs.Rectify})
	if err != nil {
		return nil, err
	}
	axis := schwarzTriangle(5).p
	var equator []geom.Vec
	for _, p := range pts {
		if math.Abs(r3.Dot(p, axis)) < capEps {
			equator = append(equator, p)
		}
	}
	b1 := geom.Vec{X: math.Cos(math.Pi / 5), Y: math.Sin(math.Pi / 5)}
	b1 = r3.Scale(ringRadius(10), b1)
	b0 := geom.Vec{X: ringRadius(10)}
	for _, e := range equator {
		frame, err := geom.NewFrame(e, r3.Cross(axis, e))
		if err != nil {
			continue
		}
		var top []geom.Vec
		for _, p := range pts {
			if c := frame.Coords(p); c.Z > capEps {
				top = append(top, c)
			}
		}
		for _, t := range top {
			if math.Abs(geom.Distance(t, b0)-1) < capEps && math.Abs(geom.Distance(t, b1)-1) < capEps {
				return top, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: rotunda template", geom.ErrDegenerate)
})

// placeCap turns the template of kind over an m-gon by phase plus shift
// steps and stands it on height z, pointing up for dir = 1 and down for
// dir = −1.
func placeCap(kind polyhedron.CapKind, m int, phase, z float64, dir float64, shift int) ([]geom.Vec, error) {
	tmpl, err := capTemplate(kind, m)
	if err != nil {
		return nil, err
	}
	turn := phase + float64(shift)*2*math.Pi/float64(m)
	sin, cos := math.Sincos(turn)
	out := make([]geom.Vec, len(tmpl))
	for i, t := range tmpl {
		out[i] = geom.Vec{
			X: t.X*cos - t.Y*sin,
			Y: t.X*sin + t.Y*cos,
			Z: z + dir*t.Z,
		}
	}
	return out, nil
}

// capKinds lists the caps of c, top first.
func capKinds(c specs.Capstone) []polyhedron.CapKind {
	kinds := make([]polyhedron.CapKind, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		switch {
		case c.IsPrimary():
			kinds = append(kinds, polyhedron.Pyramid)
		case i >= c.Count-c.RotundaCount:
			kinds = append(kinds, polyhedron.Rotunda)
		default:
			kinds = append(kinds, polyhedron.Cupola)
		}
	}
	return kinds
}

// capstonePoints assembles the vertex set of c.
func capstonePoints(c specs.Capstone) ([]geom.Vec, error) {
	m := c.BaseSides()
	points := ring(m, 0, 0)
	bottomPhase, bottomZ := 0.0, 0.0
	switch c.Elongation {
	case specs.Prism:
		bottomZ = -1
		points = append(points, ring(m, bottomPhase, bottomZ)...)
	case specs.Antiprism:
		bottomPhase, bottomZ = math.Pi/float64(m), -antiprismHeight(m)
		points = append(points, ring(m, bottomPhase, bottomZ)...)
	}
	for i, kind := range capKinds(c) {
		phase, z, dir, shift := 0.0, 0.0, 1.0, 0
		if i == 1 {
			phase, z, dir = bottomPhase, bottomZ, -1
			if c.Gyration == specs.Gyro || c.Twist == specs.Right {
				shift = 1
			}
		}
		cp, err := placeCap(kind, m, phase, z, dir, shift)
		if err != nil {
			return nil, err
		}
		points = append(points, cp...)
	}
	return points, nil
}

func (b *Builder) capstone(c specs.Capstone) (*polyhedron.Polyhedron, error) {
	pts, err := capstonePoints(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), err)
	}
	p, err := b.hull(c.Name(), pts)
	if err != nil {
		return nil, err
	}
	return p.Centered(), nil
}
