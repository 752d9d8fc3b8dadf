// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/geom"
)

func TestAngle_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, geom.Angle(geom.Vec{}, geom.Vec{X: 1}))
	assert.Equal(t, 0.0, geom.Angle(geom.Vec{X: 1}, geom.Vec{X: 2}))
	assert.InDelta(t, math.Pi, geom.Angle(geom.Vec{X: 1}, geom.Vec{X: -3}), 1e-12)
	assert.InDelta(t, math.Pi/2, geom.Angle(geom.Vec{X: 1}, geom.Vec{Y: 1}), 1e-12)
	assert.False(t, math.IsNaN(geom.Angle(geom.Vec{X: 1e-300}, geom.Vec{X: 1e-300})))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, geom.Origin, geom.Centroid(nil))
	c := geom.Centroid([]geom.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}})
	assert.InDelta(t, 0, c.X, 1e-12)
	assert.InDelta(t, 0, c.Y, 1e-12)
}

func TestFitPlane(t *testing.T) {
	_, err := geom.FitPlane([]geom.Vec{{X: 1}, {Y: 1}})
	require.ErrorIs(t, err, geom.ErrDegenerate)

	_, err = geom.FitPlane([]geom.Vec{{X: 1}, {X: 2}, {X: 3}})
	require.ErrorIs(t, err, geom.ErrDegenerate)

	// Counter-clockwise square in z=2 seen from +z.
	square := []geom.Vec{{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2}}
	pl, err := geom.FitPlane(square)
	require.NoError(t, err)
	assert.InDelta(t, 1, pl.Normal.Z, 1e-12)
	assert.InDelta(t, 2, pl.Offset, 1e-12)
	assert.InDelta(t, 1, pl.Distance(geom.Vec{Z: 3}), 1e-12)
	assert.True(t, geom.IsPlanar(square, geom.Precision))

	bent := append([]geom.Vec{}, square...)
	bent[2].Z = 2.5
	assert.False(t, geom.IsPlanar(bent, geom.Precision))
}

func TestNormal_Winding(t *testing.T) {
	tri := []geom.Vec{{X: 0}, {X: 1}, {Y: 1}}
	n, err := geom.Normal(tri)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Z, 1e-12)

	rev := []geom.Vec{tri[0], tri[2], tri[1]}
	n, err = geom.Normal(rev)
	require.NoError(t, err)
	assert.InDelta(t, -1, n.Z, 1e-12)

	_, err = geom.Normal([]geom.Vec{{X: 1}, {X: 2}, {X: 3}})
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestOrthonormalTransform(t *testing.T) {
	_, err := geom.OrthonormalTransform([2]geom.Vec{{X: 1}, {X: 2}}, [2]geom.Vec{{X: 1}, {Y: 1}})
	require.ErrorIs(t, err, geom.ErrDegenerate)

	// (x, y) onto (y, -x) is a quarter turn about z.
	rot, err := geom.OrthonormalTransform(
		[2]geom.Vec{{X: 1}, {Y: 1}},
		[2]geom.Vec{{Y: 1}, {X: -1}},
	)
	require.NoError(t, err)
	p := rot(geom.Vec{X: 1, Y: 0, Z: 5})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 5, p.Z, 1e-12)
}

func TestSimilarity(t *testing.T) {
	axes := [2]geom.Vec{{Z: 1}, {X: 1}}
	sim, err := geom.NewSimilarity(geom.Vec{X: 1}, 2, axes, geom.Vec{Y: 3}, 1, axes)
	require.NoError(t, err)
	p := sim.Apply(geom.Vec{X: 3, Z: 2})
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)
	assert.InDelta(t, 1, p.Z, 1e-12)

	_, err = geom.NewSimilarity(geom.Origin, 0, axes, geom.Origin, 1, axes)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestProjectOnto(t *testing.T) {
	p := geom.ProjectOnto(geom.Vec{X: 1, Y: 2, Z: 3}, geom.Vec{Z: 10})
	assert.Equal(t, geom.Vec{X: 1, Y: 2, Z: 0}, p)
}

func TestRotate(t *testing.T) {
	p := geom.Rotate(geom.Vec{X: 1}, math.Pi/2, geom.Vec{Z: 2})
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
}
