// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// Package forme binds a symbolic solid (package specs) to one realization of
// it (package polyhedron) and answers the questions that need both: which
// face descends from a face or a vertex of the seed solid, where the caps
// of a capstone sit, which caps of a composite can be removed or turned.
//
// Variants:
//   - ClassicalForme: facet classification of every face (face, vertex or
//     edge faces) computed from the face adjacency alone, so it holds for
//     any pose of the geometry.
//   - CapstoneForme: end caps, end faces, side faces and the axis.
//   - CompositeForme: modifiable caps and the faces that take a new cap.
//   - ElementaryForme: the square faces and pyramids of the sphenocorona
//     pair.
//
// A Forme never changes its geometry. Normalize returns a new Forme whose
// face cycles start at their smallest vertex index.
package forme
