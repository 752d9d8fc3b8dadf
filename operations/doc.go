// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// Package operations turns one solid into another along named operations.
//
// A Pair declares a bidirectional graph between two families of solids
// (regular ↔ truncated, shortened ↔ elongated, one cap fewer ↔ one more),
// how to pose each end for alignment, and how the vertices morph between
// them. An Operation unions several pair directions under a user-facing
// name; the Catalogue holds the nineteen named operations:
//
//	truncate  sharpen  rectify  dual  expand  contract  snub  twist
//	elongate  gyroelongate  shorten  turn  double  halve
//	increment  decrement  augment  diminish  gyrate
//
// Symbolic operations realize the result with the builder and align it to
// the start. Cut/paste operations (augment, diminish, gyrate) edit the start
// geometry and identify the result by congruence with the declared graph
// neighbours.
//
// Typical use:
//
//	cat := operations.Default()
//	op, _ := cat.Get("truncate")
//	s, _ := specs.Default().GetSpecs("cube")
//	res, err := op.Apply(forme.MustFromSpecs(s), operations.Options{})
//	// res.Specs.Name() == "truncated cube"
//
// Every apply returns fresh values; nothing is shared between calls.
package operations
