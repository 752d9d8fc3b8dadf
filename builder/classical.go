// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// classical.go: Platonic and Archimedean solids by Wythoff's construction.
//
// Model:
//   • Each family has a Schwarz triangle (P, Q, R) on the unit sphere: the
//     p-fold axis through a face of the regular solid {p,3}, the 3-fold axis
//     through one of that face's vertices and the 2-fold axis through an
//     edge between them. Its three mirrors generate the full symmetry group.
//   • A seed point X inside the triangle with X·n_i ∈ {0, 1} for the inward
//     mirror normals n_i selects the operation; its orbit under the mirrors
//     is the vertex set.
//   • The snub seed has equal distances to its images under the rotations
//     about P, Q and R. It is found by Nelder–Mead and polished by Newton
//     steps; its orbit is taken under rotations only. The right twist is the
//     mirror image of the left one.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

var phi = (1 + math.Sqrt(5)) / 2

// orbitTol separates distinct orbit points on the unit sphere.
const orbitTol = 1e-9

// schwarz is the fundamental triangle of one family.
type schwarz struct {
	p, q, r geom.Vec
	// mirrors opposite p, q and r, normals pointing into the triangle
	mirrors [3]geom.Vec
}

func schwarzTriangle(f specs.Family) schwarz {
	var p, q, r geom.Vec
	switch f {
	case 3:
		p, q, r = geom.Vec{X: 1, Y: 1, Z: -1}, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 1}
	case 4:
		p, q, r = geom.Vec{Z: 1}, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 1, Z: 1}
	default:
		p, q, r = geom.Vec{Y: 1, Z: phi}, geom.Vec{X: phi, Z: 2*phi + 1}, geom.Vec{Z: 1}
	}
	t := schwarz{p: geom.Unit(p), q: geom.Unit(q), r: geom.Unit(r)}
	t.mirrors[0] = inward(t.q, t.r, t.p)
	t.mirrors[1] = inward(t.p, t.r, t.q)
	t.mirrors[2] = inward(t.p, t.q, t.r)
	return t
}

func inward(a, b, toward geom.Vec) geom.Vec {
	n := geom.Unit(r3.Cross(a, b))
	if r3.Dot(n, toward) < 0 {
		n = r3.Scale(-1, n)
	}
	return n
}

func reflect(v, n geom.Vec) geom.Vec { return r3.Sub(v, r3.Scale(2*r3.Dot(v, n), n)) }

// reflections are the mirror maps of the triangle.
func (t schwarz) reflections() []func(geom.Vec) geom.Vec {
	out := make([]func(geom.Vec) geom.Vec, 3)
	for i, n := range t.mirrors {
		n := n
		out[i] = func(v geom.Vec) geom.Vec { return reflect(v, n) }
	}
	return out
}

// rotations are the turns about P, Q and R by twice the triangle angle.
func (t schwarz) rotations() []func(geom.Vec) geom.Vec {
	m := t.mirrors
	pair := func(a, b geom.Vec) func(geom.Vec) geom.Vec {
		return func(v geom.Vec) geom.Vec { return reflect(reflect(v, b), a) }
	}
	return []func(geom.Vec) geom.Vec{pair(m[1], m[2]), pair(m[2], m[0]), pair(m[0], m[1])}
}

// wythoffWeights gives X·n_i for the seed of a non-snub operation.
func wythoffWeights(c specs.Classical) [3]float64 {
	vertex := c.Facet == specs.VertexFacet
	switch c.Operation {
	case specs.Regular:
		if vertex {
			return [3]float64{1, 0, 0}
		}
		return [3]float64{0, 1, 0}
	case specs.Truncate:
		if vertex {
			return [3]float64{1, 0, 1}
		}
		return [3]float64{0, 1, 1}
	case specs.Rectify:
		return [3]float64{0, 0, 1}
	case specs.Cantellate:
		return [3]float64{1, 1, 0}
	default:
		return [3]float64{1, 1, 1}
	}
}

// seed solves N·X = w for the mirror matrix N.
func (t schwarz) seed(w [3]float64) (geom.Vec, error) {
	m := t.mirrors
	n := mat.NewDense(3, 3, []float64{
		m[0].X, m[0].Y, m[0].Z,
		m[1].X, m[1].Y, m[1].Z,
		m[2].X, m[2].Y, m[2].Z,
	})
	var x mat.VecDense
	if err := x.SolveVec(n, mat.NewVecDense(3, w[:])); err != nil {
		return geom.Origin, fmt.Errorf("%w: singular mirror frame: %v", geom.ErrDegenerate, err)
	}
	return geom.Unit(geom.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}), nil
}

// snubSeed finds the point equidistant from its three rotation images.
func (t schwarz) snubSeed() (geom.Vec, error) {
	rots := t.rotations()
	at := func(x []float64) geom.Vec {
		return geom.Unit(r3.Add(t.p, r3.Add(r3.Scale(x[0], t.q), r3.Scale(x[1], t.r))))
	}
	residual := func(x []float64) (float64, float64) {
		v := at(x)
		d0 := geom.Distance(v, rots[0](v))
		d1 := geom.Distance(v, rots[1](v))
		d2 := geom.Distance(v, rots[2](v))
		return d0 - d1, d1 - d2
	}
	problem := optimize.Problem{Func: func(x []float64) float64 {
		a, b := residual(x)
		return a*a + b*b
	}}
	res, err := optimize.Minimize(problem, []float64{1, 1}, nil, &optimize.NelderMead{})
	if res == nil {
		return geom.Origin, fmt.Errorf("%w: snub seed: %v", geom.ErrDegenerate, err)
	}
	x := append([]float64(nil), res.X...)

	const h = 1e-7
	for i := 0; i < 30; i++ {
		a, b := residual(x)
		if math.Hypot(a, b) < 1e-15 {
			break
		}
		ja, jb := residual([]float64{x[0] + h, x[1]})
		ka, kb := residual([]float64{x[0], x[1] + h})
		jac := mat.NewDense(2, 2, []float64{
			(ja - a) / h, (ka - a) / h,
			(jb - b) / h, (kb - b) / h,
		})
		var step mat.VecDense
		if err := step.SolveVec(jac, mat.NewVecDense(2, []float64{a, b})); err != nil {
			break
		}
		x[0] -= step.AtVec(0)
		x[1] -= step.AtVec(1)
	}
	return at(x), nil
}

// orbit closes seed under the generators.
func orbit(seed geom.Vec, gens []func(geom.Vec) geom.Vec) []geom.Vec {
	pts := []geom.Vec{seed}
	for i := 0; i < len(pts); i++ {
		for _, g := range gens {
			q := g(pts[i])
			if !containsPoint(pts, q, orbitTol) {
				pts = append(pts, q)
			}
		}
	}
	return pts
}

func containsPoint(pts []geom.Vec, q geom.Vec, eps float64) bool {
	for _, p := range pts {
		if geom.Near(p, q, eps) {
			return true
		}
	}
	return false
}

// unitEdge scales points about the origin so the shortest distance is 1.
func unitEdge(pts []geom.Vec) []geom.Vec {
	shortest := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := geom.Distance(pts[i], pts[j]); d < shortest {
				shortest = d
			}
		}
	}
	out := make([]geom.Vec, len(pts))
	for i, p := range pts {
		out[i] = r3.Scale(1/shortest, p)
	}
	return out
}

// classicalPoints returns the unit-edge vertex set of c.
func classicalPoints(c specs.Classical) ([]geom.Vec, error) {
	t := schwarzTriangle(c.Family)
	if c.IsSnub() {
		x, err := t.snubSeed()
		if err != nil {
			return nil, err
		}
		if c.Twist == specs.Right {
			x = reflect(x, t.mirrors[2])
		}
		return unitEdge(orbit(x, t.rotations())), nil
	}
	x, err := t.seed(wythoffWeights(c))
	if err != nil {
		return nil, err
	}
	return unitEdge(orbit(x, t.reflections())), nil
}

func (b *Builder) classical(c specs.Classical) (*polyhedron.Polyhedron, error) {
	pts, err := classicalPoints(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return b.hull(c.Name(), pts)
}
