// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// morph.go: vertex correspondence between an intermediate solid and an end.
//
// Every target face claims the intermediate face whose normal points the
// same way (ties go by the turn between centroids about that normal). The
// claimed face's vertices move to their nearest vertex of the target face.
// Vertices left unclaimed move to the nearest target vertex, so the map is
// total.

package operations

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

const angleTie = 1e-6

func morph(middle, target forme.Forme, def MorphDef) []geom.Vec {
	from := middle.Geom().Faces()
	if def.Intermediate != nil {
		from = def.Intermediate(middle)
	}
	to := target.Geom().Faces()
	if def.Target != nil {
		to = def.Target(target)
	}
	src := middle.Geom().Vertices()
	out := make([]geom.Vec, len(src))
	set := make([]bool, len(src))
	for _, t := range to {
		s, ok := matchFace(from, t)
		if !ok {
			continue
		}
		pts := t.Points()
		for _, v := range s.VertexIndices() {
			if !set[v] {
				out[v] = nearest(src[v], pts)
				set[v] = true
			}
		}
	}
	all := target.Geom().Vertices()
	for v := range out {
		if !set[v] {
			out[v] = nearest(src[v], all)
		}
	}
	return out
}

// matchFace picks the face of from whose normal is closest to t's. Ties
// go to the face whose centroid, seen from the solid's centre and projected
// onto the plane orthogonal to t's normal, points closest to t's centroid;
// remaining ties to the nearer centroid.
func matchFace(from []polyhedron.Face, t polyhedron.Face) (polyhedron.Face, bool) {
	n, c := t.Normal(), t.Centroid()
	o := t.Polyhedron().Centroid()
	ref := geom.ProjectOnto(r3.Sub(c, o), n)
	best := -1
	var bestAngle, bestTurn, bestDist float64
	for i, f := range from {
		a := geom.Angle(f.Normal(), n)
		turn := geom.Angle(geom.ProjectOnto(r3.Sub(f.Centroid(), o), n), ref)
		d := geom.Distance(f.Centroid(), c)
		switch {
		case best < 0, a < bestAngle-angleTie:
		case a > bestAngle+angleTie:
			continue
		case turn < bestTurn-angleTie:
		case turn > bestTurn+angleTie, d >= bestDist:
			continue
		}
		best, bestAngle, bestTurn, bestDist = i, a, turn, d
	}
	if best < 0 {
		return polyhedron.Face{}, false
	}
	return from[best], true
}

func nearest(p geom.Vec, pts []geom.Vec) geom.Vec {
	best, dist := p, math.Inf(1)
	for _, q := range pts {
		if d := geom.Distance(p, q); d < dist {
			best, dist = q, d
		}
	}
	return best
}
