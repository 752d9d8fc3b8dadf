// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (solid name, face index, cap kind) is attached with %w at the
//     failure site, never baked into the sentinel.
//   • Nothing in this package panics at runtime, option constructors
//     included: invalid option values surface from New as ErrOptionViolation.

package builder

import "errors"

// ErrNoRealization indicates a solid for which no geometry can be built:
// a nil spec or a name outside the catalogue.
var ErrNoRealization = errors.New("builder: no realization")

// ErrOptionViolation indicates a meaningless option value (WithLogger(nil),
// a non-positive or oversized tolerance).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNotAugmentable indicates a face that cannot carry the requested cap
// (wrong number of sides, or a face index out of range).
var ErrNotAugmentable = errors.New("builder: face cannot carry cap")

// ErrNotGyrateable indicates a cap that has no distinct turned position
// (pyramids).
var ErrNotGyrateable = errors.New("builder: cap cannot be gyrated")

// ErrInvalidResult indicates that a cut/paste step or a composite selection
// produced no convex regular-faced solid.
var ErrInvalidResult = errors.New("builder: result is not a convex regular-faced solid")
