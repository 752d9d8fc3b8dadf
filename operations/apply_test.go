// SPDX-License-Identifier: MIT
package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

func apply(t *testing.T, name string, f forme.Forme, opts operations.Options) operations.Result {
	t.Helper()
	res, err := op(t, name).Apply(f, opts)
	require.NoError(t, err, "%s %s", name, f.Specs().Name())
	require.NoError(t, polyhedron.Validate(res.Forme.Geom(), geom.Precision))
	require.NotNil(t, res.Animation.Start)
	require.Len(t, res.Animation.EndVertices, res.Animation.Start.NumVertices())
	return res
}

func TestApply_TruncateSharpen(t *testing.T) {
	res := apply(t, "truncate", formeOf(t, "tetrahedron"), operations.Options{})
	assert.Equal(t, "truncated tetrahedron", res.Specs.Name())
	assert.Equal(t, 12, res.Animation.Start.NumVertices())

	back := apply(t, "sharpen", res.Forme, operations.Options{})
	assert.Equal(t, "tetrahedron", back.Specs.Name())
	// The morph still runs on the truncated solid.
	assert.Equal(t, 12, back.Animation.Start.NumVertices())
}

func TestApply_AlignsTheResult(t *testing.T) {
	cube := formeOf(t, "cube")
	res := apply(t, "truncate", cube, operations.Options{})

	// Octagons lie in the planes of the cube's squares.
	for _, sq := range cube.Geom().Faces() {
		var found bool
		for _, oct := range res.Forme.Geom().FacesWithSides(8) {
			if geom.Angle(sq.Normal(), oct.Normal()) < 1e-6 {
				found = true
				assert.InDelta(t, sq.DistanceToCenter(), oct.DistanceToCenter(), 1e-6)
			}
		}
		assert.True(t, found, "face %d", sq.Index())
	}
}

func TestApply_Intermediate(t *testing.T) {
	res := apply(t, "rectify", formeOf(t, "cube"), operations.Options{})
	assert.Equal(t, "cuboctahedron", res.Specs.Name())
	// The morph passes through the truncated cube.
	assert.Equal(t, 24, res.Animation.Start.NumVertices())
	assert.Equal(t, 14, res.Animation.Start.NumFaces())

	res = apply(t, "dual", formeOf(t, "cube"), operations.Options{})
	assert.Equal(t, "octahedron", res.Specs.Name())
	assert.Equal(t, 24, res.Animation.Start.NumVertices())

	res = apply(t, "dual", formeOf(t, "triangular prism"), operations.Options{})
	assert.Equal(t, "triangular bipyramid", res.Specs.Name())
}

func TestApply_SharpenNeedsFacet(t *testing.T) {
	co := formeOf(t, "cuboctahedron")
	_, err := op(t, "sharpen").Apply(co, operations.Options{})
	assert.ErrorIs(t, err, operations.ErrAmbiguousEntry)

	res := apply(t, "sharpen", co, operations.Options{GraphOptions: operations.GraphOptions{Facet: specs.VertexFacet}})
	assert.Equal(t, "octahedron", res.Specs.Name())
}

func TestApply_Chiral(t *testing.T) {
	cube := formeOf(t, "cube")
	left := apply(t, "snub", cube, operations.Options{GraphOptions: operations.GraphOptions{Twist: specs.Left}})
	right := apply(t, "snub", cube, operations.Options{GraphOptions: operations.GraphOptions{Twist: specs.Right}})
	assert.Equal(t, "snub cuboctahedron", left.Specs.Name())
	assert.Equal(t, "snub cuboctahedron (right)", right.Specs.Name())
	assert.False(t, polyhedron.Congruent(left.Forme.Geom(), right.Forme.Geom(), 1e-6))

	_, err := op(t, "snub").Apply(cube, operations.Options{})
	assert.ErrorIs(t, err, operations.ErrAmbiguousEntry)
}

func TestApply_Prismatic(t *testing.T) {
	res := apply(t, "elongate", formeOf(t, "square pyramid"), operations.Options{})
	assert.Equal(t, "elongated square pyramid", res.Specs.Name())
	back := apply(t, "shorten", res.Forme, operations.Options{})
	assert.Equal(t, "square pyramid", back.Specs.Name())

	res = apply(t, "gyroelongate", formeOf(t, "pentagonal orthobicupola"),
		operations.Options{GraphOptions: operations.GraphOptions{Twist: specs.Right}})
	assert.Equal(t, "gyroelongated pentagonal bicupola (right)", res.Specs.Name())

	res = apply(t, "turn", formeOf(t, "pentagonal prism"), operations.Options{})
	assert.Equal(t, "pentagonal antiprism", res.Specs.Name())

	res = apply(t, "increment", formeOf(t, "triangular prism"), operations.Options{})
	assert.Equal(t, "square prism", res.Specs.Name())

	res = apply(t, "double", formeOf(t, "pentagonal pyramid"), operations.Options{})
	assert.Equal(t, "pentagonal cupola", res.Specs.Name())
}

func TestApply_AugmentDiminish(t *testing.T) {
	cupola := formeOf(t, "pentagonal cupola")
	res := apply(t, "augment", cupola, operations.Options{GraphOptions: operations.GraphOptions{Using: specs.Cupola}})
	assert.Equal(t, "pentagonal orthobicupola", res.Specs.Name())
	// The new cupola grows out of the decagon.
	assert.Equal(t, cupola.Geom().NumVertices()+5, res.Animation.Start.NumVertices())

	gyro := apply(t, "augment", cupola, operations.Options{GraphOptions: operations.GraphOptions{
		Using: specs.Cupola, Gyrate: specs.Gyro,
	}})
	assert.Equal(t, "pentagonal gyrobicupola", gyro.Specs.Name())

	caps := res.Forme.Geom().CapsOf(polyhedron.Cupola)
	require.NotEmpty(t, caps)
	back := apply(t, "diminish", res.Forme, operations.Options{Cap: caps[0]})
	assert.Equal(t, "pentagonal cupola", back.Specs.Name())
	assert.True(t, polyhedron.Congruent(back.Forme.Geom(), cupola.Geom(), 1e-6))
}

func TestApply_AugmentComposite(t *testing.T) {
	dodeca := formeOf(t, "dodecahedron")
	res := apply(t, "augment", dodeca, operations.Options{})
	assert.Equal(t, "augmented dodecahedron", res.Specs.Name())

	res = apply(t, "augment", formeOf(t, "sphenocorona"), operations.Options{})
	assert.Equal(t, "augmented sphenocorona", res.Specs.Name())

	res = apply(t, "diminish", formeOf(t, "icosahedron"), operations.Options{})
	assert.Equal(t, "diminished icosahedron", res.Specs.Name())

	res = apply(t, "diminish", formeOf(t, "augmented sphenocorona"), operations.Options{})
	assert.Equal(t, "sphenocorona", res.Specs.Name())
}

func TestApply_Gyrate(t *testing.T) {
	res := apply(t, "gyrate", formeOf(t, "pentagonal orthobicupola"), operations.Options{})
	assert.Equal(t, "pentagonal gyrobicupola", res.Specs.Name())
	back := apply(t, "gyrate", res.Forme, operations.Options{})
	assert.Equal(t, "pentagonal orthobicupola", back.Specs.Name())

	res = apply(t, "gyrate", formeOf(t, "rhombicuboctahedron"), operations.Options{})
	assert.Equal(t, "gyrate rhombicuboctahedron", res.Specs.Name())
}

func TestApply_Errors(t *testing.T) {
	trunc := op(t, "truncate")
	_, err := trunc.Apply(formeOf(t, "truncated cube"), operations.Options{})
	assert.ErrorIs(t, err, operations.ErrNotApplicable)
	_, err = trunc.Apply(nil, operations.Options{})
	assert.ErrorIs(t, err, operations.ErrInvalidOption)

	_, err = op(t, "snub").Apply(formeOf(t, "cube"), operations.Options{GraphOptions: operations.GraphOptions{Facet: specs.VertexFacet}})
	require.ErrorIs(t, err, operations.ErrNoEntry)
	assert.Contains(t, err.Error(), `Could not find matching graph entry for cube with options {"facet":"vertex"}`)

	// A face of another polyhedron.
	other := formeOf(t, "pentagonal cupola")
	decagon, ok := formeOf(t, "pentagonal cupola").Geom().FaceWithSides(10)
	require.True(t, ok)
	_, err = op(t, "augment").Apply(other, operations.Options{Face: decagon})
	assert.ErrorIs(t, err, operations.ErrInvalidOption)
}
