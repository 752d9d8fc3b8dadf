// SPDX-License-Identifier: MIT
package forme_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

func named(t *testing.T, name string) forme.Forme {
	t.Helper()
	u := specs.Default()
	s, err := u.GetSpecs(name)
	if err != nil {
		s, err = u.GetCanonicalSpecs(name)
	}
	require.NoError(t, err, name)
	f, err := forme.FromSpecs(s)
	require.NoError(t, err, name)
	return f
}

func TestCreateForme_Dispatch(t *testing.T) {
	cases := []struct {
		name string
		want any
	}{
		{"cube", &forme.ClassicalForme{}},
		{"elongated triangular cupola", &forme.CapstoneForme{}},
		{"metabiaugmented dodecahedron", &forme.CompositeForme{}},
		{"sphenocorona", &forme.ElementaryForme{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.IsType(t, tc.want, named(t, tc.name))
		})
	}

	// An unmodified composite binds as its source.
	src := specs.Classical{Family: 5, Operation: specs.Regular, Facet: specs.FaceFacet}
	w, err := specs.Wrap(src)
	require.NoError(t, err)
	p, err := builder.Realize(src)
	require.NoError(t, err)
	f, err := forme.CreateForme(w, p)
	require.NoError(t, err)
	assert.IsType(t, &forme.ClassicalForme{}, f)
	assert.True(t, f.Specs().Equals(src))
}

func TestCreateForme_Errors(t *testing.T) {
	_, err := forme.CreateForme(nil, nil)
	assert.ErrorIs(t, err, forme.ErrNilInput)

	cube := specs.Classical{Family: 4, Operation: specs.Regular, Facet: specs.FaceFacet}
	_, err = forme.CreateForme(cube, nil)
	assert.ErrorIs(t, err, forme.ErrNilInput)

	_, err = forme.FromSpecs(specs.Elementary{Base: "sphenoid"})
	assert.ErrorIs(t, err, builder.ErrNoRealization)
}

// seedCounts are the faces, vertices and edges of the tetrahedron, cube
// and dodecahedron.
var seedCounts = map[specs.Family][3]int{3: {4, 4, 6}, 4: {6, 8, 12}, 5: {12, 20, 30}}

func TestClassical_FacetCounts(t *testing.T) {
	for _, s := range specs.AllClassical() {
		t.Run(s.Name(), func(t *testing.T) {
			f, err := forme.FromSpecs(s)
			require.NoError(t, err)
			c := f.(*forme.ClassicalForme)
			seed := seedCounts[s.Family]
			face, vertex, edge := seed[0], seed[1], seed[2]

			switch s.Operation {
			case specs.Regular:
				if s.IsFace() {
					face, vertex = seed[0], 0
				} else {
					face, vertex = 0, seed[1]
				}
				edge = 0
			case specs.Truncate, specs.Rectify:
				edge = 0
			case specs.Snub:
				edge = 2 * seed[2]
			}
			assert.Len(t, c.FacetFaces(specs.FaceFacet), face)
			assert.Len(t, c.FacetFaces(specs.VertexFacet), vertex)
			assert.Len(t, c.EdgeFaces(), edge)
		})
	}
}

func TestClassical_FacetsAreUniform(t *testing.T) {
	// Every face of one class has the same size and lies at the same
	// distance from the centre.
	for _, s := range specs.AllClassical() {
		t.Run(s.Name(), func(t *testing.T) {
			c := forme.MustFromSpecs(s).(*forme.ClassicalForme)
			for _, faces := range [][]polyhedron.Face{
				c.FacetFaces(specs.FaceFacet),
				c.FacetFaces(specs.VertexFacet),
				c.EdgeFaces(),
			} {
				if len(faces) == 0 {
					continue
				}
				for _, g := range faces[1:] {
					assert.Equal(t, faces[0].NumSides(), g.NumSides())
					assert.InDelta(t, faces[0].DistanceToCenter(), g.DistanceToCenter(), 1e-6)
				}
			}
		})
	}
}

func TestClassical_RectifiedTetrahedronClasses(t *testing.T) {
	// The octahedron as a rectified tetrahedron: each face borders only
	// faces of the other class.
	c := named(t, "tetratetrahedron").(*forme.ClassicalForme)
	for _, g := range c.Geom().Faces() {
		mine, ok := c.FacetOf(g.Index())
		require.True(t, ok)
		for _, h := range g.AdjacentFaces() {
			theirs, _ := c.FacetOf(h.Index())
			assert.Equal(t, mine.Opposite(), theirs)
		}
	}
}

func TestClassical_Directions(t *testing.T) {
	cube := named(t, "cube").(*forme.ClassicalForme)
	assert.Len(t, cube.FacetDirections(specs.FaceFacet), 6)
	// The cube has no vertex-facet faces; its corners stand in.
	assert.Len(t, cube.FacetDirections(specs.VertexFacet), 8)

	o := cube.Orientation()
	assert.InDelta(t, math.Pi/2, geom.Angle(o[0], o[1]), 1e-9)
	assert.InDelta(t, 0.5, cube.Inradius(specs.FaceFacet), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, cube.Midradius(), 1e-9)
	assert.InDelta(t, math.Sqrt(3)/2, cube.Circumradius(), 1e-9)
}

func TestFacet(t *testing.T) {
	rh := named(t, "rhombicuboctahedron")
	edge := rh.(*forme.ClassicalForme).EdgeFaces()[0]
	_, err := forme.Facet(rh, edge.Index())
	assert.ErrorIs(t, err, forme.ErrNoFacet)

	tri := rh.(*forme.ClassicalForme).FacetFaces(specs.VertexFacet)[0]
	facet, err := forme.Facet(rh, tri.Index())
	require.NoError(t, err)
	assert.Equal(t, specs.VertexFacet, facet)

	_, err = forme.Facet(rh, -1)
	assert.ErrorIs(t, err, forme.ErrNoFacet)

	_, err = forme.Facet(named(t, "square pyramid"), 0)
	assert.ErrorIs(t, err, forme.ErrNoFacet)
}

func TestCapstone_Ends(t *testing.T) {
	cases := []struct {
		name  string
		caps  []polyhedron.CapKind
		ends  int
		sides int
	}{
		{"square pyramid", []polyhedron.CapKind{polyhedron.Pyramid}, 1, 4},
		{"elongated triangular cupola", []polyhedron.CapKind{polyhedron.Cupola}, 1, 6},
		{"gyroelongated pentagonal pyramid", []polyhedron.CapKind{polyhedron.Pyramid}, 1, 5},
		{"pentagonal gyrocupolarotunda", []polyhedron.CapKind{polyhedron.Cupola, polyhedron.Rotunda}, 0, 0},
		{"gyrobifastigium", []polyhedron.CapKind{polyhedron.Fastigium, polyhedron.Fastigium}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := named(t, tc.name).(*forme.CapstoneForme)
			caps, err := f.EndCaps()
			require.NoError(t, err)
			got := make([]polyhedron.CapKind, len(caps))
			for i, c := range caps {
				got[i] = c.Kind()
			}
			assert.Equal(t, tc.caps, got)

			ends := f.EndFaces()
			require.Len(t, ends, tc.ends)
			for _, e := range ends {
				assert.Equal(t, tc.sides, e.NumSides())
				// The base faces away from the cap.
				assert.Greater(t, geom.Angle(e.Normal(), caps[0].Axis()), math.Pi-1e-6)
			}
			if len(caps) == 2 {
				assert.Greater(t, geom.Angle(caps[0].Axis(), caps[1].Axis()), math.Pi-1e-6)
			}
		})
	}
}

func TestCapstone_Prismatic(t *testing.T) {
	f := named(t, "hexagonal prism").(*forme.CapstoneForme)
	_, err := f.EndCaps()
	assert.ErrorIs(t, err, forme.ErrNoCap)

	ends := f.EndFaces()
	require.Len(t, ends, 2)
	assert.Equal(t, 6, ends[0].NumSides())
	assert.InDelta(t, math.Pi, geom.Angle(ends[0].Normal(), ends[1].Normal()), 1e-9)
	assert.Len(t, f.SideFaces(), 6)
	assert.InDelta(t, 0, geom.Angle(f.Axis(), ends[0].Normal()), 1e-9)
}

func TestCapstone_SideFaces(t *testing.T) {
	f := named(t, "elongated triangular cupola").(*forme.CapstoneForme)
	sides := f.SideFaces()
	assert.Len(t, sides, 6)
	for _, g := range sides {
		assert.Equal(t, 4, g.NumSides())
		assert.False(t, f.IsEndFace(g.Index()))
	}
}

func TestComposite_Augmented(t *testing.T) {
	f := named(t, "metabiaugmented dodecahedron").(*forme.CompositeForme)
	caps := f.ModifiableCaps()
	require.Len(t, caps, 2)
	for _, c := range caps {
		assert.Equal(t, polyhedron.Pyramid, c.Kind())
		assert.Equal(t, 5, c.Base())
		for _, g := range c.Faces() {
			assert.False(t, f.IsSourceFace(g.Index()))
		}
	}
	faces := f.AugmentFaces()
	assert.Len(t, faces, 10)
	for _, g := range faces {
		assert.True(t, f.CanAugment(g.Index()))
	}
	assert.False(t, f.CanAugment(caps[0].Faces()[0].Index()))

	// The source centroid ignores the added apexes.
	src := f.SourceCentroid()
	assert.Greater(t, r3.Norm(r3.Sub(src, f.Geom().Centroid())), 1e-3)
}

// The bipyramid reads as two pyramids on a triangle; only one of them was
// added to the tetrahedron.
func TestComposite_AugmentedTetrahedron(t *testing.T) {
	f := named(t, "augmented tetrahedron").(*forme.CompositeForme)
	caps := f.ModifiableCaps()
	require.Len(t, caps, 1)
	assert.Equal(t, polyhedron.Pyramid, caps[0].Kind())

	src := f.SourceCentroid()
	assert.Greater(t, r3.Norm(r3.Sub(src, f.Geom().Centroid())), 1e-3)
	pl, err := geom.FitPlane(caps[0].BoundaryPoints())
	require.NoError(t, err)
	assert.Greater(t, math.Abs(pl.Distance(src)), 1e-3)
}

func TestComposite_DiminishedAndGyrate(t *testing.T) {
	tri := named(t, "tridiminished icosahedron").(*forme.CompositeForme)
	assert.Len(t, tri.AugmentFaces(), 8)

	meta := named(t, "metabidiminished icosahedron").(*forme.CompositeForme)
	assert.Len(t, meta.AugmentFaces(), 2)
	assert.NotEmpty(t, meta.ModifiableCaps())

	pg := named(t, "paragyrate diminished rhombicosidodecahedron").(*forme.CompositeForme)
	faces := pg.AugmentFaces()
	require.Len(t, faces, 1)
	assert.Equal(t, 10, faces[0].NumSides())
	for _, c := range pg.ModifiableCaps() {
		assert.Equal(t, polyhedron.Cupola, c.Kind())
		assert.Equal(t, 5, c.Base())
	}
}

func TestElementary(t *testing.T) {
	f := named(t, "augmented sphenocorona").(*forme.ElementaryForme)
	assert.Len(t, f.AugmentFaces(), 1)
	for _, c := range f.ModifiableCaps() {
		assert.Equal(t, 4, c.Base())
	}
}

func TestNormalize(t *testing.T) {
	for _, name := range []string{"snub cube", "elongated pentagonal rotunda", "triaugmented hexagonal prism", "sphenocorona"} {
		t.Run(name, func(t *testing.T) {
			f := named(t, name)
			n := f.Normalize()
			assert.True(t, n.Specs().Equals(f.Specs()))
			assert.Equal(t, f.Geom().Vertices(), n.Geom().Vertices())
			for _, cycle := range n.Geom().FaceCycles() {
				for _, v := range cycle[1:] {
					assert.Less(t, cycle[0], v)
				}
			}
			assert.Equal(t, n.Geom().FaceCycles(), n.Normalize().Geom().FaceCycles())
			// The geometry was already valid; reordering keeps it so.
			assert.NoError(t, polyhedron.Validate(n.Geom(), geom.Precision))
		})
	}
}

func TestOrientation_NonDegenerate(t *testing.T) {
	for _, s := range specs.Default().All() {
		f, err := forme.FromSpecs(s)
		require.NoError(t, err, s.Name())
		o := f.Orientation()
		assert.InDelta(t, 1, r3.Norm(o[0]), 1e-6, s.Name())
		assert.InDelta(t, 1, r3.Norm(o[1]), 1e-6, s.Name())
		assert.Greater(t, r3.Norm(r3.Cross(o[0], o[1])), 1e-3, s.Name())
	}
}
