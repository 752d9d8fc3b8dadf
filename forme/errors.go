// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// errors.go: sentinel errors for the forme package.

package forme

import "errors"

// ErrNoFacet indicates a facet query on a forme without facets, on an edge
// face, or geometry whose faces could not be classified.
var ErrNoFacet = errors.New("forme: no facet")

// ErrNoCap indicates a cap query the forme cannot answer, such as the end
// caps of a prism.
var ErrNoCap = errors.New("forme: no cap")

// ErrNilInput indicates a nil specs value or a nil polyhedron.
var ErrNilInput = errors.New("forme: nil specs or geometry")
