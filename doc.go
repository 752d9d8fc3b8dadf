// SPDX-License-Identifier: MIT
// Package: polyhedra
//
// Package polyhedra names, builds and transforms the convex regular-faced
// solids: the five Platonic and thirteen Archimedean solids (with chiral
// twins), the prisms and antiprisms, and the 92 Johnson solids.
//
// What is in the module?
//
//	geom/          vectors over gonum r3, planes, frames, similarities
//	polyhedron/    the mesh kernel: faces, edges, caps, hulls, validity, congruence
//	specs/         the symbolic taxonomy: Classical, Capstone, Composite, Elementary
//	builder/       geometry for every realizable specs value, memoized
//	forme/         specs and geometry together: orientation, facets, end caps
//	operations/    truncate, dual, augment, gyrate ... as bidirectional graphs
//	atlas/         breadth-first routes through the operation graph
//	cmd/polyhedra  the command-line browser
//
// Quick start
//
//	s, _ := specs.Default().GetSpecs("pentagonal cupola")
//	op, _ := operations.Default().Get("augment")
//	f := forme.MustFromSpecs(s)
//	res, err := op.Apply(f, op.AllOptionCombos(f)[0])
//	// res.Specs.Name() == "pentagonal orthobicupola"
//
// Every package is safe for concurrent use once constructed; results are
// fresh values.
package polyhedra
