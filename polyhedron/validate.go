// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// validate.go: geometric validity of a convex regular-faced solid.

package polyhedron

import (
	"fmt"
	"math"
)

// Validate checks, with eps relative to the edge length:
//   - closure (Check),
//   - Euler's formula V − E + F = 2,
//   - equal edge lengths,
//   - regular (planar, equilateral, equiradial) faces,
//   - strict convexity: every dihedral angle < π − eps.
//
// The first failure is returned wrapped in ErrInvalid.
func Validate(p *Polyhedron, eps float64) error {
	if err := p.Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	v, e, f := p.NumVertices(), p.NumEdges(), p.NumFaces()
	if v-e+f != 2 {
		return fmt.Errorf("%w: Euler characteristic V−E+F = %d−%d+%d = %d", ErrInvalid, v, e, f, v-e+f)
	}
	length := p.EdgeLength()
	for _, edge := range p.Edges() {
		if math.Abs(edge.Length()-length) > eps*length {
			return fmt.Errorf("%w: edge %v has length %.6f, want %.6f", ErrInvalid, edge.Key(), edge.Length(), length)
		}
		if d := edge.DihedralAngle(); d >= math.Pi-eps {
			return fmt.Errorf("%w: edge %v has dihedral angle %.6f", ErrInvalid, edge.Key(), d)
		}
	}
	for _, face := range p.Faces() {
		if !face.IsRegular(eps) {
			return fmt.Errorf("%w: face %d (%d sides) is not regular", ErrInvalid, face.Index(), face.NumSides())
		}
	}
	return nil
}
