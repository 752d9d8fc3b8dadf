// SPDX-License-Identifier: MIT
// Package: polyhedra/geom
//
// vec.go: vector helpers over r3.Vec.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3-space.
type Vec = r3.Vec

// Precision is the shared tolerance for planarity, validity and hit tests.
const Precision = 1e-3

// Origin is the zero vector.
var Origin = Vec{}

// Centroid returns the arithmetic mean of points (Origin for none).
func Centroid(points []Vec) Vec {
	if len(points) == 0 {
		return Origin
	}
	var sum Vec
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// Angle returns the angle between a and b in [0, π].
// Degenerate input yields 0 instead of NaN.
func Angle(a, b Vec) float64 {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	c := r3.Dot(a, b) / (na * nb)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	ang := math.Acos(c)
	if math.IsNaN(ang) {
		return 0
	}
	return ang
}

// Distance is |a − b|.
func Distance(a, b Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// Near reports whether a and b coincide within eps.
func Near(a, b Vec, eps float64) bool { return Distance(a, b) <= eps }

// Unit returns the normalized v, or Origin for the zero vector.
func Unit(v Vec) Vec {
	n := r3.Norm(v)
	if n == 0 {
		return Origin
	}
	return r3.Scale(1/n, v)
}

// ProjectOnto removes the component of v along the normal n, leaving the
// projection of v onto the plane through the origin orthogonal to n.
func ProjectOnto(v, n Vec) Vec {
	u := Unit(n)
	return r3.Sub(v, r3.Scale(r3.Dot(v, u), u))
}

// Normal returns the unit normal of the polygon through points (Newell's
// method, so the sign follows the winding). Fewer than three points, or a
// zero-area polygon, yields ErrDegenerate.
func Normal(points []Vec) (Vec, error) {
	if len(points) < 3 {
		return Origin, ErrDegenerate
	}
	var n Vec
	for i, p := range points {
		q := points[(i+1)%len(points)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	if r3.Norm(n) < 1e-12 {
		return Origin, ErrDegenerate
	}
	return Unit(n), nil
}

// Rotate turns p by alpha radians about the axis through the origin
// (right-handed).
func Rotate(p Vec, alpha float64, axis Vec) Vec {
	return r3.Rotate(p, alpha, Unit(axis))
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b Vec, t float64) Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
