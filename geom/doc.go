// SPDX-License-Identifier: MIT
// Package: polyhedra/geom
//
// Package geom holds the numeric layer every other package is built on:
// 3-D vectors (an alias of gonum's r3.Vec), centroids, NaN-safe angles,
// plane fitting and orthonormal frames used to align two solids.
//
// Conventions:
//   - All helpers are pure; inputs are never mutated.
//   - Precision is the tolerance for planarity, validity and hit tests.
//     Construction code may use a tighter tolerance of its own.
//   - Angle never returns NaN: degenerate (zero or collinear) input
//     collapses to 0, callers may rely on that.
//   - FitPlane fails with ErrDegenerate for fewer than three points or
//     collinear/coincident input.
//
// Alignment:
//
//	A Frame is the orthonormal triple spanned by two non-parallel vectors
//	(u = â, w = unit(a×b), v = w×u). Aligning frame F onto frame G maps
//	p ↦ Σ (p·F_i) G_i, the unique rotation taking one ordered pair onto the
//	other. Similarity composes it with the translation and uniform scale of
//	two poses.
package geom
