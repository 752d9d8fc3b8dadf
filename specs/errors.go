// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// errors.go: sentinel errors for the specs package.

package specs

import "errors"

var (
	// ErrUnknownName indicates a name that resolves to no enumerated solid.
	ErrUnknownName = errors.New("specs: unknown solid name")

	// ErrNoMatch indicates an exact-data lookup with no enumerated match.
	ErrNoMatch = errors.New("specs: no solid matches data")

	// ErrAmbiguousMatch indicates an exact-data lookup with several matches.
	ErrAmbiguousMatch = errors.New("specs: several solids match data")

	// ErrInvalidData indicates a request that the record cannot answer,
	// such as the cap type of a prism.
	ErrInvalidData = errors.New("specs: invalid data for solid")
)
