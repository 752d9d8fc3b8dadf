// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// errors.go: sentinel errors for the polyhedron package.

package polyhedron

import "errors"

// ErrMalformedFace indicates a face cycle with fewer than three indices, an
// out-of-range index or a repeated index.
var ErrMalformedFace = errors.New("polyhedron: malformed face")

// ErrNotClosed indicates a directed edge without exactly one twin.
var ErrNotClosed = errors.New("polyhedron: surface is not closed")

// ErrInvalid indicates a failed geometric validity check (Validate).
var ErrInvalid = errors.New("polyhedron: invalid geometry")

// ErrVertexCount indicates a replacement vertex array of the wrong length.
var ErrVertexCount = errors.New("polyhedron: vertex count mismatch")
