// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// specs.go: the Specs sum type, the exhaustive Match visitor and the
// vocabulary shared by all kinds.

package specs

// Kind tags the four members of the sum type.
type Kind string

// Kinds.
const (
	KindClassical  Kind = "classical"
	KindCapstone   Kind = "capstone"
	KindComposite  Kind = "composite"
	KindElementary Kind = "elementary"
)

// Specs is a symbolic description of one solid. The interface is sealed:
// only Classical, Capstone, Composite and Elementary implement it.
type Specs interface {
	Kind() Kind

	// Name is the display name generated from the data.
	Name() string
	// CanonicalName resolves alternate names ("square prism" -> "cube").
	CanonicalName() string
	// AlternateNames lists the synonyms of the canonical name.
	AlternateNames() []string

	Symmetry() Symmetry
	Group() string
	ConwaySymbol() string
	IsChiral() bool
	IsHoneycomb() bool

	// Equals is structural equality of kind and data.
	Equals(o Specs) bool
	// Equivalent compares unwrapped values: a composite without
	// modifications is its source.
	Equivalent(o Specs) bool
	Unwrap() Specs

	sealed()
}

// MatchCases holds one handler per kind for Match.
type MatchCases[T any] struct {
	Classical  func(Classical) T
	Capstone   func(Capstone) T
	Composite  func(Composite) T
	Elementary func(Elementary) T
}

// Match dispatches s to the handler of its kind. A nil handler yields the
// zero value of T.
func Match[T any](s Specs, c MatchCases[T]) T {
	var zero T
	switch v := s.(type) {
	case Classical:
		if c.Classical != nil {
			return c.Classical(v)
		}
	case Capstone:
		if c.Capstone != nil {
			return c.Capstone(v)
		}
	case Composite:
		if c.Composite != nil {
			return c.Composite(v)
		}
	case Elementary:
		if c.Elementary != nil {
			return c.Elementary(v)
		}
	}
	return zero
}

// Twist is the handedness of a chiral solid.
type Twist string

// Twists.
const (
	Left  Twist = "left"
	Right Twist = "right"
)

// Twists lists both handednesses, left first.
var Twists = []Twist{Left, Right}

// Opposite returns the other handedness.
func (t Twist) Opposite() Twist {
	if t == Left {
		return Right
	}
	return Left
}

// polygonPrefixes names n-gons in solid names.
var polygonPrefixes = map[int]string{
	2:  "digonal",
	3:  "triangular",
	4:  "square",
	5:  "pentagonal",
	6:  "hexagonal",
	8:  "octagonal",
	10: "decagonal",
}

// PolygonPrefix returns the adjective for an n-gon ("pentagonal").
func PolygonPrefix(n int) string { return polygonPrefixes[n] }

// PolygonSides is the inverse of PolygonPrefix.
func PolygonSides(prefix string) (int, bool) {
	for n, p := range polygonPrefixes {
		if p == prefix {
			return n, true
		}
	}
	return 0, false
}

func equal(a, b Specs) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a == b
}

func equivalent(a, b Specs) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equal(a.Unwrap(), b.Unwrap())
}
