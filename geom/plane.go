// SPDX-License-Identifier: MIT
// Package: polyhedra/geom
//
// plane.go: plane fitting and planarity tests.

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is the set {p : Normal·p = Offset} with a unit Normal.
type Plane struct {
	Normal Vec
	Offset float64
}

// minArea is the smallest parallelogram area accepted when fitting.
const minArea = 1e-9

// FitPlane fits a plane through three well-spread points of the input.
// The first point anchors the fit, the second is the farthest point from
// it and the third maximizes the spanned area. When the points wind as a
// polygon the normal follows that winding.
func FitPlane(points []Vec) (Plane, error) {
	if len(points) < 3 {
		return Plane{}, fmt.Errorf("%w: plane needs 3 points, got %d", ErrDegenerate, len(points))
	}
	a := points[0]
	b, best := a, -1.0
	for _, p := range points[1:] {
		if d := Distance(a, p); d > best {
			b, best = p, d
		}
	}
	var n Vec
	area := -1.0
	for _, p := range points[1:] {
		c := r3.Cross(r3.Sub(b, a), r3.Sub(p, a))
		if s := r3.Norm(c); s > area {
			n, area = c, s
		}
	}
	if area < minArea {
		return Plane{}, fmt.Errorf("%w: points are collinear or coincident", ErrDegenerate)
	}
	n = Unit(n)
	if newell, err := Normal(points); err == nil && r3.Dot(newell, n) < 0 {
		n = r3.Scale(-1, n)
	}
	return Plane{Normal: n, Offset: r3.Dot(n, a)}, nil
}

// Distance returns the signed distance of q from the plane (positive on
// the side the normal points to).
func (p Plane) Distance(q Vec) float64 { return r3.Dot(p.Normal, q) - p.Offset }

// Contains reports whether q lies on the plane within eps.
func (p Plane) Contains(q Vec, eps float64) bool { return math.Abs(p.Distance(q)) <= eps }

// Project returns the foot of the perpendicular from q onto the plane.
func (p Plane) Project(q Vec) Vec {
	return r3.Sub(q, r3.Scale(p.Distance(q), p.Normal))
}

// IsPlanar reports whether all points lie within eps of one plane.
// Up to three points are always planar; degenerate sets of more points
// (all collinear) are planar as well.
func IsPlanar(points []Vec, eps float64) bool {
	if len(points) <= 3 {
		return true
	}
	pl, err := FitPlane(points)
	if err != nil {
		return true
	}
	for _, q := range points {
		if !pl.Contains(q, eps) {
			return false
		}
	}
	return true
}
