// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// hull.go: face recovery for convex point sets with one edge length.
//
// Every face of such a solid contains a path i–j–k of two edges, so the
// candidate planes are spanned by edge-length paths only; a candidate is a
// face when every point lies on or behind it. Coplanar points collapse into
// one face which is then ordered counter-clockwise seen from outside.
//
// Complexity: O(V·d²·V) plane tests for vertex degree d.

package polyhedron

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
)

// FromPoints recovers the faces of the convex hull of points. tol is
// relative to the shortest pairwise distance, which is taken as the edge
// length. Points that end up on no face are dropped.
func FromPoints(points []geom.Vec, tol float64) (*Polyhedron, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("%w: hull needs 4 points, got %d", geom.ErrDegenerate, n)
	}
	edge := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := geom.Distance(points[i], points[j]); d < edge {
				edge = d
			}
		}
	}
	if edge <= 1e-12 {
		return nil, fmt.Errorf("%w: coincident points", geom.ErrDegenerate)
	}
	eps := tol * edge
	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && math.Abs(geom.Distance(points[i], points[j])-edge) <= eps {
				nbrs[i] = append(nbrs[i], j)
			}
		}
	}

	center := geom.Centroid(points)
	seen := make(map[string]bool)
	var faces [][]int
	for i := 0; i < n; i++ {
		for _, j := range nbrs[i] {
			for _, k := range nbrs[j] {
				if k == i {
					continue
				}
				normal := geom.Unit(r3.Cross(r3.Sub(points[j], points[i]), r3.Sub(points[k], points[i])))
				if r3.Norm(normal) == 0 {
					continue
				}
				if r3.Dot(normal, r3.Sub(center, points[i])) > 0 {
					normal = r3.Scale(-1, normal)
				}
				onPlane, ok := supportingSet(points, points[i], normal, eps)
				if !ok || len(onPlane) < 3 {
					continue
				}
				key := faceKey(onPlane)
				if seen[key] {
					continue
				}
				seen[key] = true
				faces = append(faces, orderCycle(points, onPlane, normal))
			}
		}
	}
	return New(points, faces)
}

// supportingSet returns the points on the plane (anchor, normal) when no
// point lies in front of it.
func supportingSet(points []geom.Vec, anchor, normal geom.Vec, eps float64) ([]int, bool) {
	var on []int
	for idx, q := range points {
		d := r3.Dot(normal, r3.Sub(q, anchor))
		if d > eps {
			return nil, false
		}
		if d >= -eps {
			on = append(on, idx)
		}
	}
	return on, true
}

func faceKey(indices []int) string {
	s := append([]int(nil), indices...)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// orderCycle sorts coplanar indices counter-clockwise about normal and
// rotates the cycle to start at its smallest index.
func orderCycle(points []geom.Vec, indices []int, normal geom.Vec) []int {
	pts := make([]geom.Vec, len(indices))
	for i, v := range indices {
		pts[i] = points[v]
	}
	c := geom.Centroid(pts)
	u := geom.Unit(r3.Sub(pts[0], c))
	w := r3.Cross(normal, u)
	type polar struct {
		idx int
		ang float64
	}
	ps := make([]polar, len(indices))
	for i, v := range indices {
		d := r3.Sub(points[v], c)
		ps[i] = polar{idx: v, ang: math.Atan2(r3.Dot(d, w), r3.Dot(d, u))}
	}
	sort.Slice(ps, func(a, b int) bool { return ps[a].ang < ps[b].ang })
	start := 0
	for i := range ps {
		if ps[i].idx < ps[start].idx {
			start = i
		}
	}
	out := make([]int, len(ps))
	for i := range ps {
		out[i] = ps[(start+i)%len(ps)].idx
	}
	return out
}
