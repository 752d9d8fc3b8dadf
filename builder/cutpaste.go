// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// cutpaste.go: adding, removing and turning caps on realized solids.
//
// Every step rebuilds the hull of the moved point set and keeps the result
// only when it is still a convex solid with regular faces.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// CapAlignments is the number of distinct turns a cap of kind can take on
// a fitting face: one for pyramids, two for cupolae and rotundae.
func CapAlignments(kind polyhedron.CapKind) int {
	if kind == polyhedron.Pyramid {
		return 1
	}
	return 2
}

// capPoints returns the off-face points of a cap of kind standing on face f
// of p, turned by shift steps.
func capPoints(p *polyhedron.Polyhedron, face int, kind polyhedron.CapKind, shift int) ([]geom.Vec, error) {
	if face < 0 || face >= p.NumFaces() {
		return nil, fmt.Errorf("%w: face %d of %d", ErrNotAugmentable, face, p.NumFaces())
	}
	f := p.Face(face)
	local, err := placeCap(kind, f.NumSides(), 0, 0, 1, shift)
	if err != nil {
		return nil, err
	}
	c := f.Centroid()
	e1 := r3.Sub(f.Points()[0], c)
	frame, err := geom.NewFrame(e1, r3.Cross(f.Normal(), e1))
	if err != nil {
		return nil, fmt.Errorf("%w: face %d: %v", ErrNotAugmentable, face, err)
	}
	k := f.SideLength()
	out := make([]geom.Vec, len(local))
	for i, t := range local {
		out[i] = r3.Add(c, r3.Scale(k, frame.Point(t)))
	}
	return out, nil
}

// CanAugment reports whether a cap of kind fits on face of p turned by
// shift: every new point lies strictly inside the plane of each face around
// face, so no base edge folds flat or inward.
func CanAugment(p *polyhedron.Polyhedron, face int, kind polyhedron.CapKind, shift int) bool {
	extra, err := capPoints(p, face, kind, shift)
	if err != nil {
		return false
	}
	eps := geom.Precision * p.Face(face).SideLength()
	for _, g := range p.Face(face).AdjacentFaces() {
		pl, err := g.Plane()
		if err != nil {
			return false
		}
		for _, q := range extra {
			if pl.Distance(q) > -eps {
				return false
			}
		}
	}
	return true
}

// solid hulls points and accepts only a valid convex regular-faced result.
func (b *Builder) solid(what string, points []geom.Vec) (*polyhedron.Polyhedron, error) {
	q, err := b.hull(what, points)
	if err != nil {
		return nil, err
	}
	if err := polyhedron.Validate(q, geom.Precision); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidResult, what, err)
	}
	return q, nil
}

// Augment stands a cap of kind on face of p, turned by shift steps
// (0 ≤ shift < CapAlignments(kind)).
//
// Errors:
//   - ErrNotAugmentable: the face is out of range or has the wrong size.
//   - ErrInvalidResult: the result is not convex with regular faces.
func (b *Builder) Augment(p *polyhedron.Polyhedron, face int, kind polyhedron.CapKind, shift int) (*polyhedron.Polyhedron, error) {
	extra, err := capPoints(p, face, kind, shift)
	if err != nil {
		return nil, err
	}
	q, err := b.solid(fmt.Sprintf("augment face %d with %s", face, kind), append(p.Vertices(), extra...))
	if err != nil {
		return nil, err
	}
	b.cfg.logger.Debug("augmented", "face", face, "cap", kind, "shift", shift)
	return q, nil
}

// Diminish cuts cp off p, leaving its boundary as a new face.
//
// Errors:
//   - ErrInvalidResult: the result is not convex with regular faces.
func (b *Builder) Diminish(p *polyhedron.Polyhedron, cp polyhedron.Cap) (*polyhedron.Polyhedron, error) {
	q, err := b.solid(fmt.Sprintf("diminish %s", cp.Kind()), withoutPoints(p.Vertices(), cp.InnerIndices()))
	if err != nil {
		return nil, err
	}
	b.cfg.logger.Debug("diminished", "cap", cp.Kind(), "inner", len(cp.InnerIndices()))
	return q, nil
}

// GyrateCap turns cp one boundary step about its axis.
//
// Errors:
//   - ErrNotGyrateable: cap is a pyramid.
//   - ErrInvalidResult: the result is not convex with regular faces.
func (b *Builder) GyrateCap(p *polyhedron.Polyhedron, cp polyhedron.Cap) (*polyhedron.Polyhedron, error) {
	if cp.Kind() == polyhedron.Pyramid {
		return nil, fmt.Errorf("%w: pyramid", ErrNotGyrateable)
	}
	q, err := b.solid(fmt.Sprintf("gyrate %s", cp.Kind()), gyratedPoints(p.Vertices(), cp))
	if err != nil {
		return nil, err
	}
	b.cfg.logger.Debug("gyrated", "cap", cp.Kind(), "boundary", len(cp.BoundaryIndices()))
	return q, nil
}

// GyratedVertices returns the vertices of p, in order, with the inner
// vertices of cp turned one boundary step. The faces are not rebuilt.
func GyratedVertices(p *polyhedron.Polyhedron, cp polyhedron.Cap) []geom.Vec {
	return gyratedPoints(p.Vertices(), cp)
}

// gyratedPoints turns the inner vertices of cp by 2π/|boundary| in place.
func gyratedPoints(points []geom.Vec, cp polyhedron.Cap) []geom.Vec {
	out := append([]geom.Vec(nil), points...)
	o, n := cp.Centroid(), cp.Normal()
	alpha := 2 * math.Pi / float64(len(cp.BoundaryIndices()))
	for _, v := range cp.InnerIndices() {
		out[v] = r3.Add(o, geom.Rotate(r3.Sub(points[v], o), alpha, n))
	}
	return out
}

// withoutPoints drops the given indices.
func withoutPoints(points []geom.Vec, drop []int) []geom.Vec {
	gone := make(map[int]bool, len(drop))
	for _, v := range drop {
		gone[v] = true
	}
	out := make([]geom.Vec, 0, len(points))
	for i, p := range points {
		if !gone[i] {
			out = append(out, p)
		}
	}
	return out
}
