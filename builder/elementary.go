// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// elementary.go: the seven Johnson solids that are not cut from a larger one.
//
// Coordinates are given for edge 2 and halved. The sphenocorona has the
// vertices
//
//	(0, ±1, 2√(1−k²))
//	(±2k, ±1, 0)
//	(0, ±(1 + √(3−4k²)/√(1−k²)), (1−2k²)/√(1−k²))
//	(±1, 0, −√(2+4k−4k²))
//
// for the root k ≈ 0.85273 of 60k⁴ − 48k³ − 100k² + 56k + 23 in (0.8, 0.9).
// The bilunabirotunda and the triangular hebesphenorotunda have closed forms
// in φ. The sphenomegacorona, the hebesphenomegacorona and the
// disphenocingulum are solved for unit edges from a seed near the root.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// sphenocoronaK bisects the quartic on [0.8, 0.9], where it changes sign.
func sphenocoronaK() float64 {
	f := func(x float64) float64 { return (((60*x-48)*x-100)*x+56)*x + 23 }
	lo, hi := 0.8, 0.9
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if (f(lo) > 0) == (f(mid) > 0) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func sphenocoronaPoints() ([]geom.Vec, error) {
	k := sphenocoronaK()
	s := math.Sqrt(1 - k*k)
	y := 1 + math.Sqrt(3-4*k*k)/s
	z := (1 - 2*k*k) / s
	low := -math.Sqrt(2 + 4*k - 4*k*k)
	return []geom.Vec{
		{Y: 1, Z: 2 * s}, {Y: -1, Z: 2 * s},
		{X: 2 * k, Y: 1}, {X: 2 * k, Y: -1}, {X: -2 * k, Y: 1}, {X: -2 * k, Y: -1},
		{Y: y, Z: z}, {Y: -y, Z: z},
		{X: 1, Z: low}, {X: -1, Z: low},
	}, nil
}

// newtonEdges drives residual to zero from x0 with a forward-difference
// Jacobian. residual returns one value per unknown.
func newtonEdges(name string, x0 []float64, residual func(x []float64) []float64) ([]float64, error) {
	const (
		h     = 1e-7
		tol   = 1e-13
		steps = 50
	)
	n := len(x0)
	x := append([]float64(nil), x0...)
	for i := 0; i < steps; i++ {
		r := residual(x)
		if mat.Norm(mat.NewVecDense(n, r), math.Inf(1)) < tol {
			return x, nil
		}
		jac := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			y := append([]float64(nil), x...)
			y[j] += h
			ry := residual(y)
			for k := 0; k < n; k++ {
				jac.Set(k, j, (ry[k]-r[k])/h)
			}
		}
		var step mat.VecDense
		if err := step.SolveVec(jac, mat.NewVecDense(n, r)); err != nil {
			return nil, fmt.Errorf("%w: %s: singular Jacobian: %v", ErrInvalidResult, name, err)
		}
		for j := range x {
			x[j] -= step.AtVec(j)
		}
		for _, v := range x {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%w: %s: solve diverged", ErrInvalidResult, name)
			}
		}
	}
	return nil, fmt.Errorf("%w: %s: no unit-edge solution after %d steps", ErrInvalidResult, name, steps)
}

// edge2 is the deviation of |a−b| from 2.
func edge2(a, b geom.Vec) float64 { return geom.Distance(a, b) - 2 }

// quadrants closes points under the mirrors x = 0 and y = 0.
func quadrants(points ...geom.Vec) []geom.Vec {
	var out []geom.Vec
	for _, p := range points {
		for _, q := range []geom.Vec{p, {X: -p.X, Y: p.Y, Z: p.Z}, {X: p.X, Y: -p.Y, Z: p.Z}, {X: -p.X, Y: -p.Y, Z: p.Z}} {
			if !containsPoint(out, q, orbitTol) {
				out = append(out, q)
			}
		}
	}
	return out
}

// megacorona lays out a wedge top over the shared lower crown: the wedge
// vertex A over the square corner B, the end vertex C, the crown vertex F on
// the plane x = 0 and D on the plane y = 0.
type megacorona struct {
	a, b, c, f, d geom.Vec
}

func (m megacorona) residual() []float64 {
	return []float64{
		edge2(m.a, m.c), edge2(m.b, m.c), edge2(m.c, m.f),
		edge2(m.b, m.f), edge2(m.b, m.d), edge2(m.f, m.d),
	}
}

func (m megacorona) points() []geom.Vec { return quadrants(m.a, m.b, m.c, m.f, m.d) }

// sphenomegacorona has its two squares meeting along the edge through
// (0, ±1): x = (k, yC, zC, yF, zF, zD).
func sphenomegacorona(x []float64) megacorona {
	k := x[0]
	return megacorona{
		a: geom.Vec{Y: 1, Z: 2 * math.Sqrt(1-k*k)},
		b: geom.Vec{X: 2 * k, Y: 1},
		c: geom.Vec{Y: x[1], Z: x[2]},
		f: geom.Vec{Y: x[3], Z: x[4]},
		d: geom.Vec{X: 1, Z: x[5]},
	}
}

// hebesphenomegacorona blunts the wedge with a third square on top:
// x = (xB, yC, zC, yF, zF, zD).
func hebesphenomegacorona(x []float64) megacorona {
	bx := x[0]
	return megacorona{
		a: geom.Vec{X: 1, Y: 1, Z: math.Sqrt(4 - (bx-1)*(bx-1))},
		b: geom.Vec{X: bx, Y: 1},
		c: geom.Vec{Y: x[1], Z: x[2]},
		f: geom.Vec{Y: x[3], Z: x[4]},
		d: geom.Vec{X: 1, Z: x[5]},
	}
}

var (
	sphenomegacoronaSeed     = []float64{0.5946, 2.5662, 0.3642, 1.7095, -1.4430, -1.7217}
	hebesphenomegacoronaSeed = []float64{1.4337, 2.2026, 0.7059, 1.6713, -1.2222, -1.6769}
	disphenocingulumSeed     = []float64{0.7671, 0.9259, 2.2530, 0.6500}
)

func megacoronaPoints(name string, seed []float64, layout func([]float64) megacorona) ([]geom.Vec, error) {
	x, err := newtonEdges(name, seed, func(x []float64) []float64 { return layout(x).residual() })
	if err != nil {
		return nil, err
	}
	return layout(x).points(), nil
}

// s4 turns by a quarter about z and reflects through z = 0.
func s4(p geom.Vec) geom.Vec { return geom.Vec{X: p.Y, Y: -p.X, Z: -p.Z} }

// disphenocingulum stacks two wedges, the lower one the s4 image of the
// upper: x = (k, t, yC, zC) with the upper squares' lower edges at z = t.
func disphenocingulum(x []float64) []geom.Vec {
	k, t := x[0], x[1]
	return quadrants(
		geom.Vec{Y: 1, Z: t + 2*math.Sqrt(1-k*k)},
		geom.Vec{X: 2 * k, Y: 1, Z: t},
		geom.Vec{Y: x[2], Z: x[3]},
	)
}

func disphenocingulumPoints() ([]geom.Vec, error) {
	x, err := newtonEdges(specs.Disphenocingulum, disphenocingulumSeed, func(x []float64) []float64 {
		k, t := x[0], x[1]
		a := geom.Vec{Y: 1, Z: t + 2*math.Sqrt(1-k*k)}
		b := geom.Vec{X: 2 * k, Y: 1, Z: t}
		c := geom.Vec{Y: x[2], Z: x[3]}
		return []float64{
			edge2(a, c), edge2(b, c),
			edge2(b, s4(geom.Vec{X: -2 * k, Y: 1, Z: t})), edge2(b, s4(c)),
		}
	})
	if err != nil {
		return nil, err
	}
	upper := disphenocingulum(x)
	out := append([]geom.Vec(nil), upper...)
	for _, p := range upper {
		out = append(out, s4(p))
	}
	return out, nil
}

// bilunabirotundaPoints: (0, 0, ±φ), (±φ, ±1, ±1), (±1, ±φ², 0).
func bilunabirotundaPoints() ([]geom.Vec, error) {
	pts := []geom.Vec{{Z: phi}, {Z: -phi}}
	pts = append(pts, quadrants(geom.Vec{X: phi, Y: 1, Z: 1}, geom.Vec{X: phi, Y: 1, Z: -1})...)
	pts = append(pts, quadrants(geom.Vec{X: 1, Y: phi * phi})...)
	return pts, nil
}

// c3v closes points under turns by 2π/3 about z and the mirror x = 0.
func c3v(points ...geom.Vec) []geom.Vec {
	var out []geom.Vec
	for _, p := range points {
		for _, q := range []geom.Vec{p, {X: -p.X, Y: p.Y, Z: p.Z}} {
			for i := 0; i < 3; i++ {
				r := geom.Rotate(q, 2*math.Pi*float64(i)/3, geom.Vec{Z: 1})
				if !containsPoint(out, r, orbitTol) {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

// hebesphenorotundaPoints stands the solid on its hexagon of radius 2 in
// z = 0. With s = √3 the other orbits are the top triangle (0, 2/s, 2φ²/s),
// the pentagon vertices next to it (−1, φ³/s, 2φ/s) and the pentagon tips
// (−φ², φ²/s, 2/s).
func hebesphenorotundaPoints() ([]geom.Vec, error) {
	s := math.Sqrt(3)
	pts := make([]geom.Vec, 0, 18)
	for i := 0; i < 6; i++ {
		a := math.Pi * float64(i) / 3
		pts = append(pts, geom.Vec{X: 2 * math.Cos(a), Y: 2 * math.Sin(a)})
	}
	return append(pts, c3v(
		geom.Vec{Y: 2 / s, Z: 2 * phi * phi / s},
		geom.Vec{X: -1, Y: phi * phi * phi / s, Z: 2 * phi / s},
		geom.Vec{X: -phi * phi, Y: phi * phi / s, Z: 2 / s},
	)...), nil
}

func elementaryPoints(b string) ([]geom.Vec, error) {
	switch b {
	case specs.Sphenocorona:
		return sphenocoronaPoints()
	case specs.Sphenomegacorona:
		return megacoronaPoints(b, sphenomegacoronaSeed, sphenomegacorona)
	case specs.Hebesphenomegacorona:
		return megacoronaPoints(b, hebesphenomegacoronaSeed, hebesphenomegacorona)
	case specs.Disphenocingulum:
		return disphenocingulumPoints()
	case specs.Bilunabirotunda:
		return bilunabirotundaPoints()
	case specs.TriangularHebesphenorotunda:
		return hebesphenorotundaPoints()
	}
	return nil, fmt.Errorf("%w: %s", ErrNoRealization, b)
}

func (b *Builder) elementary(e specs.Elementary) (*polyhedron.Polyhedron, error) {
	if e.Base == specs.AugmentedSphenocorona {
		p, err := b.Realize(specs.Elementary{Base: specs.Sphenocorona})
		if err != nil {
			return nil, err
		}
		for _, f := range p.FacesWithSides(4) {
			if q, err := b.Augment(p, f.Index(), polyhedron.Pyramid, 0); err == nil {
				return q.Centered(), nil
			}
		}
		return nil, fmt.Errorf("%w: %s: no square takes a pyramid", ErrInvalidResult, e.Name())
	}
	pts, err := elementaryPoints(e.Base)
	if err != nil {
		return nil, err
	}
	for i, p := range pts {
		pts[i] = r3.Scale(0.5, p)
	}
	p, err := b.solid(e.Name(), pts)
	if err != nil {
		return nil, err
	}
	return p.Centered(), nil
}
