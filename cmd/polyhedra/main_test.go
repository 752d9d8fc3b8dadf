// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func runYAML(t *testing.T, into any, args ...string) {
	t.Helper()
	out, err := run(t, append(args, "--output", "yaml")...)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), into), out)
}

func TestList(t *testing.T) {
	var rows []listRow
	runYAML(t, &rows, "list", "--kind", "classical")
	assert.Len(t, rows, specs.Default().Classical.Len())
	for _, r := range rows {
		assert.Equal(t, "classical", r.Kind)
	}

	out, err := run(t, "list", "--kind", "capstone")
	require.NoError(t, err)
	assert.Contains(t, out, "Pentagonal Orthobicupola")

	_, err = run(t, "list", "--kind", "curved")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	var doc showDoc
	runYAML(t, &doc, "show", "cube")
	assert.Equal(t, "cube", doc.Name)
	assert.Equal(t, specs.GroupPlatonic, doc.Group)
	require.NotNil(t, doc.Geometry)
	assert.Equal(t, 8, doc.Geometry.Vertices)
	assert.Equal(t, 12, doc.Geometry.Edges)
	assert.Equal(t, 6, doc.Geometry.Faces)
	assert.Contains(t, doc.Operations, "truncate")
	assert.Contains(t, doc.Operations, "dual")

	runYAML(t, &doc, "show", "elongated square gyrobicupola")
	assert.Equal(t, 37, doc.Johnson)

	_, err := run(t, "show", "sphere")
	assert.ErrorIs(t, err, specs.ErrUnknownName)
}

func TestApply(t *testing.T) {
	var doc applyDoc
	runYAML(t, &doc, "apply", "truncate", "cube")
	assert.Equal(t, "truncated cube", doc.Result)
	assert.True(t, doc.Valid)
	assert.Equal(t, 24, doc.Geometry.Vertices)

	runYAML(t, &doc, "apply", "augment", "pentagonal cupola")
	assert.Equal(t, "pentagonal gyrobicupola", doc.Result)

	runYAML(t, &doc, "apply", "augment", "pentagonal cupola", "--opt", "gyrate=ortho", "--opt", "using=cupola")
	assert.Equal(t, "pentagonal orthobicupola", doc.Result)

	runYAML(t, &doc, "apply", "sharpen", "cuboctahedron", "--opt", "facet=vertex")
	assert.Equal(t, "octahedron", doc.Result)
}

func TestApply_Errors(t *testing.T) {
	_, err := run(t, "apply", "explode", "cube")
	assert.ErrorIs(t, err, operations.ErrUnknownOperation)

	_, err = run(t, "apply", "snub", "triangular prism")
	assert.ErrorIs(t, err, operations.ErrNotApplicable)

	_, err = run(t, "apply", "truncate", "cube", "--opt", "colour=red")
	assert.Error(t, err)

	_, err = run(t, "apply", "augment", "pentagonal cupola", "--opt", "face=999")
	assert.Error(t, err)

	_, err = run(t, "list", "--output", "html")
	assert.Error(t, err)
}

func TestRoute(t *testing.T) {
	var steps []struct{ Op, From, To string }
	runYAML(t, &steps, "route", "cube", "truncated octahedron")
	require.Len(t, steps, 2)
	assert.Equal(t, "cube", steps[0].From)
	assert.Equal(t, "truncated octahedron", steps[1].To)

	_, err := run(t, "route", "cube", "octahedron", "--ops", "truncate")
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables", "--output", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Truncated Cube")
	assert.Contains(t, out, "Elongated Pentagonal Rotunda")
	assert.Contains(t, out, "Pentagonal Antiprism")

	var tables []catalogueTable
	runYAML(t, &tables, "tables")
	require.Len(t, tables, 3)
	assert.Len(t, tables[0].Rows, len(specs.Operations))
}

func TestParseOptions(t *testing.T) {
	req, err := parseOptions([]string{"using=cupola", "faceType=10", "pick=1"})
	require.NoError(t, err)
	assert.Equal(t, specs.Cupola, req.graph.Using)
	assert.Equal(t, 10, req.graph.FaceType)
	assert.Equal(t, 1, req.pick)
	assert.Equal(t, -1, req.face)

	for _, bad := range []string{"using", "faceType=two", "face=-1", "size=3"} {
		_, err := parseOptions([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("realizes the whole catalogue")
	}
	var rows []verifyRow
	runYAML(t, &rows, "verify", "--parallel", "4", "--apply")
	assert.Len(t, rows, 19)
	for _, r := range rows {
		assert.Empty(t, r.Problems, r.Operation)
		assert.Positive(t, r.Entries, r.Operation)
		assert.Zero(t, r.Unrealized, r.Operation)
		assert.Positive(t, r.Applied, r.Operation)
	}
}
