// SPDX-License-Identifier: MIT
package atlas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/atlas"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

func spec(t *testing.T, name string) specs.Specs {
	t.Helper()
	s, err := specs.Default().GetSpecs(name)
	require.NoError(t, err, name)
	return s
}

func TestWalk_Errors(t *testing.T) {
	cat := operations.Default()
	cube := spec(t, "cube")

	_, err := atlas.Walk(nil, cube)
	assert.ErrorIs(t, err, atlas.ErrCatalogueNil)
	_, err = atlas.Walk(cat, nil)
	assert.ErrorIs(t, err, atlas.ErrStartNil)
	_, err = atlas.Walk(cat, cube, atlas.WithMaxDepth(-1))
	assert.ErrorIs(t, err, atlas.ErrOptionViolation)
	_, err = atlas.Walk(cat, cube, atlas.WithOperations())
	assert.ErrorIs(t, err, atlas.ErrOptionViolation)
	_, err = atlas.Walk(cat, cube, atlas.WithLogger(nil))
	assert.ErrorIs(t, err, atlas.ErrOptionViolation)
	_, err = atlas.Walk(cat, cube, atlas.WithOperations("explode"))
	assert.ErrorIs(t, err, operations.ErrUnknownOperation)
	_, err = atlas.Route(cat, cube, nil)
	assert.ErrorIs(t, err, atlas.ErrStartNil)
}

func TestWalk_OneStep(t *testing.T) {
	res, err := atlas.Walk(operations.Default(), spec(t, "cube"), atlas.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Equal(t, "cube", res.Order[0])
	assert.Equal(t, 0, res.Depth["cube"])
	for _, name := range []string{"truncated cube", "cuboctahedron", "octahedron", "rhombicuboctahedron"} {
		assert.Equal(t, 1, res.Depth[name], name)
		assert.Equal(t, "cube", res.Parent[name].From, name)
	}
	assert.Equal(t, "truncate", res.Parent["truncated cube"].Op)
	assert.Equal(t, "dual", res.Parent["octahedron"].Op)
	assert.False(t, res.Reached("truncated octahedron"))
	for _, d := range res.Depth {
		assert.LessOrEqual(t, d, 1)
	}
}

func TestWalk_DepthsGrow(t *testing.T) {
	res, err := atlas.Walk(operations.Default(), spec(t, "tetrahedron"), atlas.WithMaxDepth(3))
	require.NoError(t, err)

	prev := 0
	for _, name := range res.Order {
		d := res.Depth[name]
		assert.GreaterOrEqual(t, d, prev, name)
		prev = d
		if d > 0 {
			p := res.Parent[name]
			assert.Equal(t, name, p.To)
			assert.Equal(t, d-1, res.Depth[p.From], name)
		}
	}
}

func TestRoute(t *testing.T) {
	cat := operations.Default()

	steps, err := atlas.Route(cat, spec(t, "cube"), spec(t, "truncated octahedron"))
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "cube", steps[0].From)
	assert.Equal(t, steps[0].To, steps[1].From)
	assert.Equal(t, "truncated octahedron", steps[1].To)

	steps, err = atlas.Route(cat, spec(t, "cube"), spec(t, "cube"))
	require.NoError(t, err)
	assert.Empty(t, steps)

	steps, err = atlas.Route(cat, spec(t, "pentagonal cupola"), spec(t, "elongated pentagonal gyrobicupola"))
	require.NoError(t, err)
	assert.Len(t, steps, 2)
}

func TestRoute_Restricted(t *testing.T) {
	cat := operations.Default()
	cube, oct := spec(t, "cube"), spec(t, "octahedron")

	_, err := atlas.Route(cat, cube, oct, atlas.WithOperations("truncate"))
	assert.ErrorIs(t, err, atlas.ErrUnreachable)

	_, err = atlas.Route(cat, cube, spec(t, "truncated octahedron"), atlas.WithMaxDepth(1))
	assert.ErrorIs(t, err, atlas.ErrUnreachable)

	noDual := atlas.WithFilter(func(op string, _, _ specs.Specs) bool { return op != "dual" })
	steps, err := atlas.Route(cat, cube, oct, noDual)
	require.NoError(t, err)
	assert.Len(t, steps, 2)
	for _, st := range steps {
		assert.NotEqual(t, "dual", st.Op)
	}
}

func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := atlas.Walk(operations.Default(), spec(t, "cube"), atlas.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStep_String(t *testing.T) {
	st := atlas.Step{Op: "dual", From: "cube", To: "octahedron"}
	assert.Equal(t, "cube -dual-> octahedron", st.String())
}
