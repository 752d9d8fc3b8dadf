// SPDX-License-Identifier: MIT
package operations_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

func spec(t *testing.T, name string) specs.Specs {
	t.Helper()
	s, err := specs.Default().GetSpecs(name)
	require.NoError(t, err, name)
	return s
}

func formeOf(t *testing.T, name string) forme.Forme {
	t.Helper()
	f, err := forme.FromSpecs(spec(t, name))
	require.NoError(t, err, name)
	return f
}

func op(t *testing.T, name string) *operations.Operation {
	t.Helper()
	o, err := operations.Default().Get(name)
	require.NoError(t, err)
	return o
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, operations.Right, operations.Left.Opposite())
	assert.Equal(t, operations.Left, operations.Right.Opposite())
	assert.Equal(t, operations.Middle, operations.Middle.Opposite())
}

func TestGraphOptions(t *testing.T) {
	declared := operations.GraphOptions{Using: specs.Cupola, Gyrate: specs.Ortho, FaceType: 10}

	assert.True(t, operations.GraphOptions{}.IsZero())
	assert.False(t, declared.IsZero())
	assert.True(t, operations.GraphOptions{}.Matches(declared))
	assert.True(t, operations.GraphOptions{Using: specs.Cupola}.Matches(declared))
	assert.False(t, operations.GraphOptions{Using: specs.Rotunda}.Matches(declared))
	assert.False(t, operations.GraphOptions{Twist: specs.Left}.Matches(declared))
	assert.Equal(t, `{"gyrate":"ortho","using":"cupola","faceType":10}`, declared.String())
	assert.Equal(t, "{}", operations.GraphOptions{}.String())
}

func TestEntry_Sides(t *testing.T) {
	e := operations.Entry{
		Left:         spec(t, "cube"),
		Right:        spec(t, "cuboctahedron"),
		RightOptions: operations.GraphOptions{Facet: specs.FaceFacet},
	}
	assert.Equal(t, "cube", e.Spec(operations.Left).Name())
	assert.Equal(t, "cuboctahedron", e.Spec(operations.Right).Name())
	assert.True(t, e.Options(operations.Left).IsZero())
	assert.Equal(t, specs.FaceFacet, e.Options(operations.Right).Facet)
}

func testPair(t *testing.T) *operations.Pair {
	t.Helper()
	p, err := operations.NewPair(operations.PairDef{
		Name:   "test rectify",
		Middle: operations.Right,
		Graph: func(u *specs.Universe) []operations.Entry {
			var out []operations.Entry
			for _, name := range []string{"cube", "octahedron"} {
				s, _ := u.GetSpecs(name)
				c := s.(specs.Classical)
				r, _ := u.GetSpecs("cuboctahedron")
				out = append(out, operations.Entry{Left: s, Right: r, RightOptions: operations.GraphOptions{Facet: c.Facet}})
			}
			return out
		},
	})
	require.NoError(t, err)
	return p
}

func TestPair_Lookup(t *testing.T) {
	p := testPair(t)
	co := spec(t, "cuboctahedron")

	assert.Len(t, p.Graph(), 2)
	assert.True(t, p.CanApplyTo(operations.Right, spec(t, "cube")))
	assert.False(t, p.CanApplyTo(operations.Right, co))
	assert.True(t, p.CanApplyTo(operations.Left, co))
	assert.Len(t, p.Entries(operations.Left, co), 2)
	assert.False(t, p.HasOptions(operations.Right, spec(t, "cube")))
	assert.True(t, p.HasOptions(operations.Left, co))
	assert.Equal(t, []operations.GraphOptions{{Facet: specs.FaceFacet}, {Facet: specs.VertexFacet}},
		p.AllOptions(operations.Left, co))

	got, err := p.Opposite(operations.Left, co, operations.GraphOptions{Facet: specs.VertexFacet})
	require.NoError(t, err)
	assert.Equal(t, "octahedron", got.Name())

	got, err = p.Opposite(operations.Right, spec(t, "cube"), operations.GraphOptions{})
	require.NoError(t, err)
	assert.Equal(t, "cuboctahedron", got.Name())
}

func TestPair_LookupErrors(t *testing.T) {
	p := testPair(t)
	co := spec(t, "cuboctahedron")

	_, err := p.FindEntry(operations.Left, co, operations.GraphOptions{})
	assert.ErrorIs(t, err, operations.ErrAmbiguousEntry)

	_, err = p.FindEntry(operations.Right, spec(t, "dodecahedron"), operations.GraphOptions{})
	require.ErrorIs(t, err, operations.ErrNoEntry)
	assert.Contains(t, err.Error(), "Could not find matching graph entry for dodecahedron with options {}")

	_, err = p.FindEntry(operations.Right, spec(t, "cube"), operations.GraphOptions{Twist: specs.Left})
	assert.ErrorIs(t, err, operations.ErrNoEntry)
	_, err = p.FindEntry(operations.Right, nil, operations.GraphOptions{})
	assert.ErrorIs(t, err, operations.ErrNoEntry)
}

func TestPair_ApplyEndAsMiddle(t *testing.T) {
	p := testPair(t)
	cube := formeOf(t, "cube")

	res, err := p.Apply(operations.Right, cube, operations.Options{})
	require.NoError(t, err)
	assert.Equal(t, "cuboctahedron", res.Specs.Name())
	// The morph runs on the cuboctahedron's faces.
	assert.Equal(t, 12, res.Animation.Start.NumVertices())
	assert.Equal(t, 14, res.Animation.Start.NumFaces())
	assert.Len(t, res.Animation.EndVertices, 12)
	assert.Equal(t, res.Forme.Geom().Vertices(), res.Animation.EndVertices)

	_, err = p.Apply(operations.Right, nil, operations.Options{})
	assert.ErrorIs(t, err, operations.ErrInvalidOption)
}

func TestNewPair_Options(t *testing.T) {
	_, err := operations.NewPair(operations.PairDef{Name: "x"}, operations.WithLogger(nil))
	assert.ErrorIs(t, err, operations.ErrOptionViolation)
	_, err = operations.NewPair(operations.PairDef{Name: "x"}, operations.WithBuilder(nil))
	assert.ErrorIs(t, err, operations.ErrOptionViolation)
	_, err = operations.NewPair(operations.PairDef{Name: "x"}, operations.WithUniverse(nil))
	assert.ErrorIs(t, err, operations.ErrOptionViolation)

	p, err := operations.NewPair(operations.PairDef{Name: "empty"}, operations.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	assert.Empty(t, p.Graph())
	assert.Equal(t, "empty", p.Name())
	assert.False(t, p.IsCut())
}
