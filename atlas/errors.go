// SPDX-License-Identifier: MIT
// Package: polyhedra/atlas
//
// errors.go: sentinel errors.

package atlas

import "errors"

var (
	// ErrCatalogueNil is returned when a nil catalogue is passed.
	ErrCatalogueNil = errors.New("atlas: catalogue is nil")

	// ErrStartNil is returned when the start or destination solid is nil.
	ErrStartNil = errors.New("atlas: solid is nil")

	// ErrUnreachable is returned by Route when no operation sequence within
	// the configured limits leads to the destination.
	ErrUnreachable = errors.New("atlas: destination unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("atlas: invalid option supplied")
)
