// SPDX-License-Identifier: MIT
package polyhedron_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

const tol = 1e-6

func hull(t *testing.T, pts []geom.Vec) *polyhedron.Polyhedron {
	t.Helper()
	p, err := polyhedron.FromPoints(pts, tol)
	require.NoError(t, err)
	return p
}

func cubePoints() []geom.Vec {
	var pts []geom.Vec
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				pts = append(pts, geom.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

func squarePyramidPoints(baseZ float64) []geom.Vec {
	return []geom.Vec{
		{X: -0.5, Y: -0.5, Z: baseZ}, {X: 0.5, Y: -0.5, Z: baseZ},
		{X: 0.5, Y: 0.5, Z: baseZ}, {X: -0.5, Y: 0.5, Z: baseZ},
		{Z: baseZ + 1/math.Sqrt2},
	}
}

func octahedronPoints() []geom.Vec {
	s := 1 / math.Sqrt2
	return []geom.Vec{{X: s}, {X: -s}, {Y: s}, {Y: -s}, {Z: s}, {Z: -s}}
}

func triangularPrismPoints() []geom.Vec {
	var pts []geom.Vec
	r := 1 / math.Sqrt(3)
	for _, z := range []float64{-0.5, 0.5} {
		for k := 0; k < 3; k++ {
			a := 2 * math.Pi * float64(k) / 3
			pts = append(pts, geom.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z})
		}
	}
	return pts
}

func cuboctahedronPoints() []geom.Vec {
	var pts []geom.Vec
	s := 1 / math.Sqrt2
	for _, a := range []float64{-s, s} {
		for _, b := range []float64{-s, s} {
			pts = append(pts, geom.Vec{X: a, Y: b}, geom.Vec{X: a, Z: b}, geom.Vec{Y: a, Z: b})
		}
	}
	return pts
}

func TestNew_Errors(t *testing.T) {
	vs := []geom.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	_, err := polyhedron.New(vs, [][]int{{0, 1}})
	assert.ErrorIs(t, err, polyhedron.ErrMalformedFace)

	_, err = polyhedron.New(vs, [][]int{{0, 1, 7}})
	assert.ErrorIs(t, err, polyhedron.ErrMalformedFace)

	_, err = polyhedron.New(vs, [][]int{{0, 1, 1}})
	assert.ErrorIs(t, err, polyhedron.ErrMalformedFace)

	// Three faces of a tetrahedron leave an open boundary.
	_, err = polyhedron.New(vs, [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}})
	assert.ErrorIs(t, err, polyhedron.ErrNotClosed)

	p, err := polyhedron.New(vs, [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 6, p.NumEdges())
}

func TestFromPoints_Cube(t *testing.T) {
	p := hull(t, cubePoints())
	assert.Equal(t, 8, p.NumVertices())
	assert.Equal(t, 12, p.NumEdges())
	assert.Equal(t, 6, p.NumFaces())
	assert.Equal(t, map[int]int{4: 6}, p.FaceSizes())
	assert.InDelta(t, 1, p.EdgeLength(), 1e-12)
	require.NoError(t, polyhedron.Validate(p, geom.Precision))
	assert.Empty(t, p.Caps())

	center := p.Centroid()
	for _, f := range p.Faces() {
		out := r3.Sub(f.Centroid(), center)
		assert.Greater(t, r3.Dot(out, f.Normal()), 0.0, "face %d must face outwards", f.Index())
		cyc := f.VertexIndices()
		for _, v := range cyc[1:] {
			assert.Less(t, cyc[0], v, "cycle starts at its smallest index")
		}
		assert.InDelta(t, 0.5, f.Apothem(), 1e-12)
		assert.InDelta(t, 0.5, f.DistanceToCenter(), 1e-12)
	}
	for _, e := range p.Edges() {
		assert.InDelta(t, math.Pi/2, e.DihedralAngle(), 1e-9)
	}
}

func TestFromPoints_TooFew(t *testing.T) {
	_, err := polyhedron.FromPoints([]geom.Vec{{}, {X: 1}, {Y: 1}}, tol)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestVertexViews(t *testing.T) {
	p := hull(t, cubePoints())
	v := p.Vertex(0)
	assert.Equal(t, 3, v.Degree())
	assert.Equal(t, map[int]int{4: 3}, v.Configuration())

	// Consecutive faces around a vertex share an edge through it.
	faces := v.Faces()
	require.Len(t, faces, 3)
	for i, f := range faces {
		g := faces[(i+1)%len(faces)]
		shared := 0
		for _, w := range g.VertexIndices() {
			if f.HasVertex(w) {
				shared++
			}
		}
		assert.Equal(t, 2, shared)
	}
	for _, w := range v.Adjacent() {
		assert.InDelta(t, 1, geom.Distance(v.Vec(), w.Vec()), 1e-12)
	}
}

func TestEdgeViews(t *testing.T) {
	p := hull(t, cubePoints())
	e := p.Edges()[0]
	f, ok := e.Face()
	require.True(t, ok)
	g, ok := e.TwinFace()
	require.True(t, ok)
	assert.NotEqual(t, f.Index(), g.Index())
	assert.True(t, e.Twin().Twin().Equals(e))
	assert.Equal(t, e.V2().Index(), e.Next().V1().Index())
	assert.Equal(t, e.V1().Index(), e.Prev().V2().Index())
	assert.InDelta(t, 1, e.Length(), 1e-12)
}

func TestHitFace(t *testing.T) {
	p := hull(t, cubePoints())
	f, ok := p.HitFace(geom.Vec{Z: 0.51})
	require.True(t, ok)
	assert.InDelta(t, 1, f.Normal().Z, 1e-12)
}

func TestCaps(t *testing.T) {
	pyr := hull(t, squarePyramidPoints(0))
	caps := pyr.Caps()
	require.Len(t, caps, 1)
	c := caps[0]
	assert.Equal(t, polyhedron.Pyramid, c.Kind())
	assert.Equal(t, 4, c.Base())
	assert.Len(t, c.Faces(), 4)
	assert.Greater(t, c.Normal().Z, 0.9)
	assert.Greater(t, c.Axis().Z, 0.9)
	base, ok := c.BoundaryFace()
	require.True(t, ok)
	assert.Equal(t, 4, base.NumSides())

	oct := hull(t, octahedronPoints())
	caps = oct.Caps()
	assert.Len(t, caps, 6)
	_, ok = caps[0].BoundaryFace()
	assert.False(t, ok)

	prism := hull(t, triangularPrismPoints())
	caps = prism.Caps()
	require.Len(t, caps, 3)
	for _, c := range caps {
		assert.Equal(t, polyhedron.Fastigium, c.Kind())
		assert.Equal(t, polyhedron.Cupola, c.CapType())
		assert.Len(t, c.Boundary(), 4)
	}

	co := hull(t, cuboctahedronPoints())
	caps = co.Caps()
	require.Len(t, caps, 8)
	for _, c := range caps {
		assert.Equal(t, polyhedron.Cupola, c.Kind())
		assert.Equal(t, 3, c.Base())
		assert.Len(t, c.Boundary(), 6)
		assert.Len(t, c.Faces(), 7)
	}
	assert.False(t, caps[0].Equals(caps[1]))
	assert.True(t, caps[0].Equals(caps[0]))
}

func TestHitCap(t *testing.T) {
	oct := hull(t, octahedronPoints())
	caps := oct.Caps()
	c, ok := oct.HitCap(caps, geom.Vec{X: 0.3, Y: 0.05, Z: 0.05})
	require.True(t, ok)
	assert.Greater(t, c.TopPoint().X, 0.5)
}

func TestMutators_Augment(t *testing.T) {
	cube := hull(t, cubePoints())
	top, ok := cube.HitFace(geom.Vec{Z: 0.6})
	require.True(t, ok)

	open := cube.WithoutFaces(top.Index())
	assert.ErrorIs(t, open.Check(), polyhedron.ErrNotClosed)

	pyr := hull(t, squarePyramidPoints(0.5))
	base, ok := pyr.FaceWithSides(4)
	require.True(t, ok)

	merged := open.AddPolyhedron(pyr.WithoutFaces(base.Index())).DeduplicateVertices(1e-9)
	require.NoError(t, merged.Check())
	assert.Equal(t, 9, merged.NumVertices())
	assert.Equal(t, 16, merged.NumEdges())
	assert.Equal(t, map[int]int{3: 4, 4: 5}, merged.FaceSizes())
	require.NoError(t, polyhedron.Validate(merged, geom.Precision))
}

func TestValidate_Failures(t *testing.T) {
	box := hull(t, cubePoints()).Transform(func(v geom.Vec) geom.Vec { return geom.Vec{X: v.X, Y: v.Y, Z: 2 * v.Z} })
	require.NoError(t, box.Check())
	assert.ErrorIs(t, polyhedron.Validate(box, geom.Precision), polyhedron.ErrInvalid)

	// Two stacked cubes keep their shared side faces separate: coplanar.
	cube := hull(t, cubePoints())
	top, _ := cube.HitFace(geom.Vec{Z: 0.6})
	upper := hull(t, cubePoints()).Transform(func(v geom.Vec) geom.Vec { return r3.Add(v, geom.Vec{Z: 1}) })
	bottom, _ := upper.HitFace(geom.Vec{Z: 0.4})
	stacked := cube.WithoutFaces(top.Index()).AddPolyhedron(upper.WithoutFaces(bottom.Index())).DeduplicateVertices(1e-9)
	require.NoError(t, stacked.Check())
	assert.ErrorIs(t, polyhedron.Validate(stacked, geom.Precision), polyhedron.ErrInvalid)
}

func TestWithVertices(t *testing.T) {
	p := hull(t, cubePoints())
	_, err := p.WithVertices(nil)
	assert.ErrorIs(t, err, polyhedron.ErrVertexCount)

	q, err := p.WithVertices(p.Scaled(2).Vertices())
	require.NoError(t, err)
	assert.InDelta(t, 2, q.EdgeLength(), 1e-12)
	assert.InDelta(t, 1, p.EdgeLength(), 1e-12, "receiver is untouched")
}

func TestCongruent(t *testing.T) {
	cube := hull(t, cubePoints())
	moved := cube.Transform(func(v geom.Vec) geom.Vec {
		return r3.Add(r3.Scale(3, geom.Rotate(v, 0.7, geom.Vec{X: 1, Y: 2, Z: 3})), geom.Vec{X: 5})
	})
	assert.True(t, polyhedron.Congruent(cube, moved, 1e-6))
	assert.True(t, polyhedron.FingerprintOf(cube).Congruent(polyhedron.FingerprintOf(moved), 1e-6))

	oct := hull(t, octahedronPoints())
	assert.False(t, polyhedron.Congruent(cube, oct, 1e-6))
	assert.False(t, polyhedron.FingerprintOf(cube).Congruent(polyhedron.FingerprintOf(oct), 1e-6))
}
