// SPDX-License-Identifier: MIT
// Package: polyhedra/geom
//
// errors.go: sentinel errors for the geom package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package geom

import "errors"

// ErrDegenerate indicates too few points, or collinear/coincident points,
// where a plane, normal or frame is required.
var ErrDegenerate = errors.New("geom: degenerate geometry")
