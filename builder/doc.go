// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// Package builder realizes symbolic solids (package specs) as unit-edge
// geometry (package polyhedron), and performs the cut/paste steps that
// relate them.
//
// Constructions:
//   - Classical: Wythoff's construction on the Schwarz triangle of the
//     family; snubs solve for the equidistant seed numerically
//     (gonum optimize, gonum mat).
//   - Capstone: rings of unit-edge polygons with pyramid, cupola and
//     rotunda templates stacked on them; the rotunda is cut from the
//     icosidodecahedron.
//   - Composite: the source is realized and modified face by face or cap
//     by cap; faces and caps are chosen by a depth-first search that keeps
//     every prefix a valid solid and honours para/meta alignment.
//   - Elementary: closed coordinates for the sphenocorona, the
//     bilunabirotunda and the triangular hebesphenorotunda; the two
//     megacoronae and the disphenocingulum are solved for unit edges
//     (gonum mat). The augmented sphenocorona is cut from its source.
//
// Cut/paste:
//   - Augment stands a pyramid, cupola or rotunda on a fitting face.
//   - Diminish removes a cap, GyrateCap turns it one boundary step.
//   - Every step re-hulls the point set and validates the result
//     (ErrInvalidResult otherwise).
//
// Concurrency:
//   - A Builder is safe for concurrent use. Realize memoizes by solid name;
//     concurrent requests for one solid share a single construction
//     (golang.org/x/sync/singleflight) and every caller receives its own
//     copy.
//
// Configuration is functional (WithLogger, WithTolerance); invalid option
// values surface from New as ErrOptionViolation instead of panicking.
package builder
