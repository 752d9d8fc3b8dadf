// SPDX-License-Identifier: MIT
// Package: polyhedra/atlas
//
// Package atlas walks the combined operation graph breadth-first: which
// solids an operation sequence reaches from a start, how far each one is,
// and the shortest route between two named solids.
//
// What
//
//   - Vertices are solids keyed by name; an edge s → t exists when some
//     catalogue operation lists t among its targets from s.
//   - Walk returns a Result with:
//   - Order: visit sequence
//   - Depth: solid name → number of operations from the start
//   - Parent: solid name → the Step that first reached it
//   - Route returns the operations of one shortest sequence.
//
// Determinism
//
//	Operations are tried in menu order and targets in graph order, so the
//	visit sequence and every route are reproducible.
//
// Options
//
//   - WithContext: cancellation, checked once per dequeued solid.
//   - WithMaxDepth: stop expanding past d operations (0 = unlimited).
//   - WithOperations: restrict the walk to the named operations.
//   - WithFilter: veto single edges.
//   - WithLogger: debug records of every expanded solid.
//
// Usage
//
//	from, _ := specs.Default().GetSpecs("cube")
//	to, _ := specs.Default().GetSpecs("truncated octahedron")
//	steps, err := atlas.Route(operations.Default(), from, to)
//	// steps[0].Op == "dual", steps[1].Op == "truncate"
package atlas
