// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// errors.go: sentinel errors for the operations package.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Lookup failures carry the solid name and the options as JSON.
//   • A failure here means the caller offered an operation the graph does
//     not declare, or a declared result could not be reproduced. Nothing
//     is retried.

package operations

import "errors"

// ErrNoEntry indicates that no graph entry matches a solid and options.
var ErrNoEntry = errors.New("operations: no graph entry")

// ErrAmbiguousEntry indicates several graph entries with different results
// for one solid and options.
var ErrAmbiguousEntry = errors.New("operations: ambiguous graph entry")

// ErrInvalidOption indicates an option value that cannot apply to the
// forme, such as a face of another polyhedron.
var ErrInvalidOption = errors.New("operations: invalid option")

// ErrNotApplicable indicates an operation none of whose graphs contain the
// solid.
var ErrNotApplicable = errors.New("operations: operation does not apply")

// ErrUnrecognizedResult indicates cut/paste geometry that matches none of
// the declared results.
var ErrUnrecognizedResult = errors.New("operations: result matches no declared solid")

// ErrDegeneratePose indicates a forme whose pose cannot be measured, such
// as a cap plane through the centre it is measured from.
var ErrDegeneratePose = errors.New("operations: degenerate pose")

// ErrUnknownOperation indicates a catalogue lookup by a name it lacks.
var ErrUnknownOperation = errors.New("operations: unknown operation")

// ErrOptionViolation indicates a meaningless option value (WithLogger(nil),
// WithBuilder(nil)).
var ErrOptionViolation = errors.New("operations: invalid option value")
