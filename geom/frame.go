// SPDX-License-Identifier: MIT
// Package: polyhedra/geom
//
// frame.go: orthonormal frames and the similarity transform between poses.

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a right-handed orthonormal triple.
type Frame [3]Vec

// NewFrame spans a frame from a primary axis a and a secondary vector b that
// must not be parallel to a: u = â, w = unit(a×b), v = w×u.
func NewFrame(a, b Vec) (Frame, error) {
	u := Unit(a)
	w := r3.Cross(u, b)
	if r3.Norm(w) < 1e-9 {
		return Frame{}, fmt.Errorf("%w: frame axes are parallel", ErrDegenerate)
	}
	w = Unit(w)
	return Frame{u, r3.Cross(w, u), w}, nil
}

// Coords expresses p in the frame.
func (f Frame) Coords(p Vec) Vec {
	return Vec{X: r3.Dot(p, f[0]), Y: r3.Dot(p, f[1]), Z: r3.Dot(p, f[2])}
}

// Point is the inverse of Coords.
func (f Frame) Point(c Vec) Vec {
	return r3.Add(r3.Add(r3.Scale(c.X, f[0]), r3.Scale(c.Y, f[1])), r3.Scale(c.Z, f[2]))
}

// OrthonormalTransform returns the rotation taking the frame of the ordered
// pair from onto the frame of the ordered pair to.
func OrthonormalTransform(from, to [2]Vec) (func(Vec) Vec, error) {
	f, err := NewFrame(from[0], from[1])
	if err != nil {
		return nil, err
	}
	g, err := NewFrame(to[0], to[1])
	if err != nil {
		return nil, err
	}
	return func(p Vec) Vec { return g.Point(f.Coords(p)) }, nil
}

// Similarity maps one pose onto another:
// p ↦ ToOrigin + k·R(p − FromOrigin), with k the scale ratio.
type Similarity struct {
	fromOrigin Vec
	toOrigin   Vec
	ratio      float64
	from, to   Frame
}

// NewSimilarity builds the similarity taking the pose (fromOrigin,
// fromScale, fromAxes) onto (toOrigin, toScale, toAxes).
func NewSimilarity(fromOrigin Vec, fromScale float64, fromAxes [2]Vec,
	toOrigin Vec, toScale float64, toAxes [2]Vec) (Similarity, error) {
	if fromScale <= 0 || toScale <= 0 {
		return Similarity{}, fmt.Errorf("%w: non-positive pose scale", ErrDegenerate)
	}
	f, err := NewFrame(fromAxes[0], fromAxes[1])
	if err != nil {
		return Similarity{}, err
	}
	g, err := NewFrame(toAxes[0], toAxes[1])
	if err != nil {
		return Similarity{}, err
	}
	return Similarity{
		fromOrigin: fromOrigin,
		toOrigin:   toOrigin,
		ratio:      toScale / fromScale,
		from:       f,
		to:         g,
	}, nil
}

// Apply transforms a point.
func (s Similarity) Apply(p Vec) Vec {
	local := s.from.Coords(r3.Sub(p, s.fromOrigin))
	return r3.Add(s.toOrigin, r3.Scale(s.ratio, s.to.Point(local)))
}

// ApplyAll transforms every point into a fresh slice.
func (s Similarity) ApplyAll(points []Vec) []Vec {
	out := make([]Vec, len(points))
	for i, p := range points {
		out[i] = s.Apply(p)
	}
	return out
}
