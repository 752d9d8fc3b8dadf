// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// Package specs is the combinatorial taxonomy of convex regular-faced
// solids. A Specs value is one of four comparable value types:
//
//   - Classical:  Platonic and Archimedean solids by family and operation
//   - Capstone:   pyramids, cupolae and rotundae, their elongations and
//     doublings, and prisms/antiprisms (no caps)
//   - Composite:  augmented, diminished and gyrate derivatives of a
//     classical or prismatic source
//   - Elementary: seven named Johnson solids outside the other families
//
// Every family enumerates its legal members (AllClassical, AllCapstone,
// AllComposite, AllElementary). Universe indexes the union by exact data,
// by display name and by canonical name; Default returns the index built
// once for the process.
//
// Values are immutable. WithData normalizes a record (drops fields that are
// meaningless for it, fills the default twist) and resolves it against the
// enumeration, so a successful WithData always yields an enumerated value.
//
// Names are generated from the data alone. For every enumerated s:
//
//	u.GetSpecs(s.Name()) equals s
//
// Chiral pairs are told apart by a trailing "(right)" on the right-handed
// member. Alternate names ("square prism" for the cube) are resolved by
// CanonicalName.
package specs
