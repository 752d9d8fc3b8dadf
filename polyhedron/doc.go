// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// Package polyhedron is the mesh kernel: an immutable polyhedron over a flat
// vertex array and ordered face cycles, with lightweight Vertex, Edge, Face
// and Cap views over it.
//
// Model:
//   - Faces are vertex-index cycles, counter-clockwise seen from outside.
//   - Every directed edge a→b of a closed polyhedron has exactly one twin
//     b→a in another face (closed 2-manifold).
//   - Adjacency (directed edges, vertex→faces in rotational order,
//     vertex→vertices) is derived once on first use and cached.
//
// Construction:
//   - New validates cycles and closure (ErrMalformedFace, ErrNotClosed).
//   - FromPoints recovers the faces of a convex point set whose edges share
//     one length (every convex regular-faced solid).
//   - WithVertices, WithFaces, WithoutFaces and AddPolyhedron are pure and
//     may yield open meshes; DeduplicateVertices and
//     RemoveExtraneousVertices close the seams after cut/paste work, and
//     Check confirms the result.
//
// Queries:
//   - Caps discovers pyramid, fastigium, cupola and rotunda caps.
//   - HitFace returns the face whose plane is closest to a point.
//   - Validate checks regular faces, equal edges, strict convexity and
//     Euler's formula.
//   - Fingerprint and Congruent compare solids up to similarity; Congruent
//     only accepts proper rotations, so mirror images differ.
//
// Views hold a pointer to their polyhedron and are cheap to copy. A view is
// only meaningful together with the polyhedron that produced it.
package polyhedron
