// SPDX-License-Identifier: MIT
package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Every option record of every operation applies to its start solid, gives
// valid geometry and lands on a listed target; every listed target is
// reached by some record.
func TestAllOptionCombos_ApplyEverywhere(t *testing.T) {
	if testing.Short() {
		t.Skip("applies every operation to every start solid")
	}
	for _, o := range operations.Default().All() {
		t.Run(o.Name(), func(t *testing.T) {
			seen := make(map[string]bool)
			for _, e := range o.Graph() {
				s := e.Left
				if seen[s.Name()] {
					continue
				}
				seen[s.Name()] = true
				f, err := forme.FromSpecs(s)
				require.NoError(t, err, s.Name())

				reached := make(map[string]bool)
				for _, tg := range o.Targets(s) {
					reached[tg.Name()] = false
				}
				combos := o.AllOptionCombos(f)
				assert.NotEmpty(t, combos, s.Name())
				for _, c := range combos {
					res, err := o.Apply(f, c)
					if !assert.NoError(t, err, "%s with %s", s.Name(), c.GraphOptions) {
						continue
					}
					_, listed := reached[res.Specs.Name()]
					assert.True(t, listed, "%s gave %s", s.Name(), res.Specs.Name())
					reached[res.Specs.Name()] = true
					assert.NoError(t, polyhedron.Validate(res.Forme.Geom(), geom.Precision), "%s gave %s", s.Name(), res.Specs.Name())
				}
				for name, ok := range reached {
					assert.True(t, ok, "%s never reaches %s", s.Name(), name)
				}
			}
		})
	}
}

// Meta-biaugmenting a cube would leave two triangles coplanar, so only the
// square opposite the pyramid takes another one.
func TestAllOptionCombos_AugmentedCube(t *testing.T) {
	aug := op(t, "augment")
	f := formeOf(t, "augmented cube")
	caps := f.(*forme.CompositeForme).ModifiableCaps()
	require.Len(t, caps, 1)

	combos := aug.AllOptionCombos(f)
	require.Len(t, combos, 1)
	require.True(t, combos[0].HasFace())
	assert.InDelta(t, -1, r3.Dot(combos[0].Face.Normal(), caps[0].Axis()), 1e-6)

	selectable := 0
	for _, st := range aug.FaceSelectionStates(f, operations.Options{}) {
		if st == operations.Selectable {
			selectable++
		}
	}
	assert.Equal(t, 1, selectable)

	// A side square is not offered; the pick keeps the current options.
	for _, sq := range f.Geom().FacesWithSides(4) {
		if sq.Index() != combos[0].Face.Index() {
			assert.False(t, aug.HitOption(f, sq.Centroid(), operations.Options{}).HasFace(), "face %d", sq.Index())
		}
	}
	res := apply(t, "augment", f, combos[0])
	assert.Equal(t, specs.CanonicalName("biaugmented cube"), res.Specs.CanonicalName())
}

// The alignment of a second gyration follows from the cap picked.
func TestHitOption_GyrateDerivesAlign(t *testing.T) {
	g := op(t, "gyrate")
	f := formeOf(t, "gyrate rhombicosidodecahedron")

	byAlign := make(map[specs.Align]operations.Options)
	for _, c := range g.AllOptionCombos(f) {
		require.True(t, c.HasCap())
		if _, ok := byAlign[c.Align]; !ok {
			byAlign[c.Align] = c
		}
	}
	for _, align := range []specs.Align{specs.Para, specs.Meta} {
		c, ok := byAlign[align]
		require.True(t, ok, align)
		got := g.HitOption(f, c.Cap.TopPoint(), operations.Options{})
		require.True(t, got.HasCap())
		assert.True(t, got.Cap.Equals(c.Cap))
		assert.Equal(t, align, got.Align)

		res := apply(t, "gyrate", f, got)
		assert.Contains(t, res.Specs.Name(), string(align)+"bigyrate")
	}
}

// "augmented square prism" and "bigyrate rhombicuboctahedron" name solids
// that another target of the same start already names canonically.
func TestTargets_DropsAliasedResults(t *testing.T) {
	names := func(o *operations.Operation, start string) []string {
		var out []string
		for _, s := range o.Targets(spec(t, start)) {
			out = append(out, s.Name())
		}
		return out
	}
	aug := names(op(t, "augment"), "square prism")
	assert.Contains(t, aug, "elongated square pyramid")
	assert.NotContains(t, aug, "augmented square prism")

	gyr := names(op(t, "gyrate"), "gyrate rhombicuboctahedron")
	assert.Contains(t, gyr, "rhombicuboctahedron")
	assert.NotContains(t, gyr, "bigyrate rhombicuboctahedron")

	g := op(t, "gyrate")
	f := formeOf(t, "gyrate rhombicuboctahedron")
	reached := make(map[string]bool)
	for _, c := range g.AllOptionCombos(f) {
		res := apply(t, "gyrate", f, c)
		reached[res.Specs.Name()] = true
	}
	assert.True(t, reached["rhombicuboctahedron"])
	assert.False(t, reached["bigyrate rhombicuboctahedron"])
}

func TestApply_AugmentedTetrahedron(t *testing.T) {
	res := apply(t, "truncate", formeOf(t, "augmented tetrahedron"), operations.Options{})
	assert.Equal(t, "augmented truncated tetrahedron", res.Specs.Name())
}

// A composite whose geometry lost its cap has no plane to measure from.
func TestApply_DegenerateCapPose(t *testing.T) {
	f, err := forme.CreateForme(spec(t, "augmented dodecahedron"), formeOf(t, "dodecahedron").Geom())
	require.NoError(t, err)
	_, err = op(t, "truncate").Apply(f, operations.Options{})
	assert.ErrorIs(t, err, operations.ErrDegeneratePose)
}
