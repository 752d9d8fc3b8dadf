// SPDX-License-Identifier: MIT
package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Two parallel candidates: one pushed out along the target normal, one
// slid sideways past the axis. The sideways one is nearer, but its centroid
// turns away from the target's about the normal.
func TestMatchFace_TurnBeforeDistance(t *testing.T) {
	s, err := specs.Default().GetSpecs("square pyramid")
	require.NoError(t, err)
	p, err := builder.Realize(s)
	require.NoError(t, err)

	tri, ok := p.FaceWithSides(3)
	require.True(t, ok)
	n := tri.Normal()
	ref := geom.ProjectOnto(r3.Sub(tri.Centroid(), p.Centroid()), n)
	require.Greater(t, r3.Norm(ref), 1e-3)

	out := r3.Scale(5*r3.Norm(ref), n)
	side := r3.Scale(-2, ref)
	pushed := p.Transform(func(v geom.Vec) geom.Vec { return r3.Add(v, out) })
	slid := p.Transform(func(v geom.Vec) geom.Vec { return r3.Add(v, side) })
	a, b := pushed.Face(tri.Index()), slid.Face(tri.Index())
	require.Less(t, geom.Distance(b.Centroid(), tri.Centroid()), geom.Distance(a.Centroid(), tri.Centroid()))

	got, ok := matchFace([]polyhedron.Face{b, a}, tri)
	require.True(t, ok)
	assert.Same(t, pushed, got.Polyhedron())
}
