// SPDX-License-Identifier: MIT
package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

func TestRing(t *testing.T) {
	for m := 2; m <= 10; m++ {
		pts := ring(m, 0.3, -1)
		require.Len(t, pts, m)
		for i := range pts {
			assert.InDelta(t, 1, geom.Distance(pts[i], pts[(i+1)%m]), 1e-12, "m=%d", m)
			assert.Equal(t, -1.0, pts[i].Z)
		}
	}
	// Antiprism rings sit one edge apart.
	for m := 2; m <= 10; m++ {
		top, bottom := ring(m, 0, 0), ring(m, math.Pi/float64(m), -antiprismHeight(m))
		assert.InDelta(t, 1, geom.Distance(top[0], bottom[0]), 1e-12, "m=%d", m)
	}
}

func TestCapTemplate(t *testing.T) {
	base := map[int][]geom.Vec{}
	for _, m := range []int{3, 4, 5, 6, 8, 10} {
		base[m] = ring(m, 0, 0)
	}
	cases := []struct {
		kind polyhedron.CapKind
		m    int
		n    int
	}{
		{polyhedron.Pyramid, 3, 1},
		{polyhedron.Pyramid, 4, 1},
		{polyhedron.Pyramid, 5, 1},
		{polyhedron.Cupola, 4, 2},
		{polyhedron.Cupola, 6, 3},
		{polyhedron.Cupola, 8, 4},
		{polyhedron.Cupola, 10, 5},
		{polyhedron.Rotunda, 10, 10},
	}
	for _, tc := range cases {
		pts, err := capTemplate(tc.kind, tc.m)
		require.NoError(t, err)
		require.Len(t, pts, tc.n, "%s over %d", tc.kind, tc.m)
		// Some template point closes a unit triangle over (B0, B1).
		b0, b1 := ringPoint(tc.m, 0), ringPoint(tc.m, 1)
		found := false
		for _, p := range pts {
			assert.Greater(t, p.Z, 0.0)
			if math.Abs(geom.Distance(p, b0)-1) < 1e-9 && math.Abs(geom.Distance(p, b1)-1) < 1e-9 {
				found = true
			}
		}
		assert.True(t, found, "%s over %d", tc.kind, tc.m)
	}

	for _, bad := range []struct {
		kind polyhedron.CapKind
		m    int
	}{{polyhedron.Pyramid, 6}, {polyhedron.Cupola, 5}, {polyhedron.Cupola, 12}, {polyhedron.Rotunda, 8}} {
		_, err := capTemplate(bad.kind, bad.m)
		assert.ErrorIs(t, err, ErrNotAugmentable)
	}
}

func ringPoint(m, i int) geom.Vec { return ring(m, 0, 0)[i] }

func TestPlaceCap_Turns(t *testing.T) {
	up, err := placeCap(polyhedron.Cupola, 6, 0, 0, 1, 0)
	require.NoError(t, err)
	down, err := placeCap(polyhedron.Cupola, 6, 0, -2, -1, 1)
	require.NoError(t, err)
	for i := range up {
		turned := geom.Rotate(up[i], math.Pi/3, geom.Vec{Z: 1})
		assert.InDelta(t, turned.X, down[i].X, 1e-12)
		assert.InDelta(t, turned.Y, down[i].Y, 1e-12)
		assert.InDelta(t, -2-up[i].Z, down[i].Z, 1e-12)
	}
}

func TestSchwarzTriangle(t *testing.T) {
	for _, f := range specs.Families {
		tri := schwarzTriangle(f)
		for i, v := range []geom.Vec{tri.p, tri.q, tri.r} {
			assert.InDelta(t, 1, r3.Norm(v), 1e-12)
			// Each vertex lies on the two mirrors through it and inside the third.
			for j, n := range tri.mirrors {
				if i == j {
					assert.Greater(t, r3.Dot(v, n), 0.0)
				} else {
					assert.InDelta(t, 0, r3.Dot(v, n), 1e-12)
				}
			}
		}
		// Rotations about P have order f.
		v := tri.q
		rot := tri.rotations()[0]
		for k := 0; k < int(f); k++ {
			v = rot(v)
		}
		assert.InDelta(t, 0, geom.Distance(v, tri.q), 1e-9, "family %d", f)
	}
}

func TestSnubSeed(t *testing.T) {
	for _, f := range specs.Families {
		tri := schwarzTriangle(f)
		x, err := tri.snubSeed()
		require.NoError(t, err)
		rots := tri.rotations()
		d0 := geom.Distance(x, rots[0](x))
		assert.InDelta(t, d0, geom.Distance(x, rots[1](x)), 1e-9, "family %d", f)
		assert.InDelta(t, d0, geom.Distance(x, rots[2](x)), 1e-9, "family %d", f)
	}
}

func TestSphenocoronaK(t *testing.T) {
	k := sphenocoronaK()
	assert.InDelta(t, 0.85273, k, 1e-5)
	assert.InDelta(t, 0, (((60*k-48)*k-100)*k+56)*k+23, 1e-9)
}
