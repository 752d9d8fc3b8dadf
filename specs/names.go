// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// names.go: display names generated from data, and the alternate-name table.

package specs

import "strings"

// rightSuffix marks the right-handed member of a chiral pair.
const rightSuffix = " (right)"

var countPrefixes = map[int]string{1: "", 2: "bi", 3: "tri"}

func countString(count int, base string) string {
	if count == 0 {
		return ""
	}
	return countPrefixes[count] + base
}

func wordJoin(words ...string) string {
	var parts []string
	for _, w := range words {
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}

func withTwist(name string, t Twist) string {
	if t == Right {
		return name + rightSuffix
	}
	return name
}

var rectifiedNames = map[Family]string{
	3: "tetratetrahedron",
	4: "cuboctahedron",
	5: "icosidodecahedron",
}

func regularName(f Family, facet Facet) string {
	switch f {
	case 3:
		if facet == VertexFacet {
			return "tetrahedron dual"
		}
		return "tetrahedron"
	case 4:
		if facet == VertexFacet {
			return "octahedron"
		}
		return "cube"
	default:
		if facet == VertexFacet {
			return "icosahedron"
		}
		return "dodecahedron"
	}
}

func classicalName(c Classical) string {
	var base string
	if HasFacet(c.Operation) {
		base = regularName(c.Family, c.Facet)
	} else {
		base = rectifiedNames[c.Family]
	}
	if c.Operation == Cantellate {
		base = strings.Replace("rhombi"+base, "ii", "i", 1)
	}
	var snub, truncated string
	if c.Operation == Snub {
		snub = "snub"
	}
	if c.Operation == Truncate || c.Operation == Bevel {
		truncated = "truncated"
	}
	return withTwist(wordJoin(snub, truncated, base), c.Twist)
}

var elongationWords = map[Elongation]string{
	None:      "",
	Prism:     "elongated",
	Antiprism: "gyroelongated",
}

func capstoneName(c Capstone) string {
	if c.IsPrismatic() {
		return wordJoin(PolygonPrefix(c.BaseSides()), string(c.Elongation))
	}
	t, _ := c.CapType()
	count := c.Count
	if t == Cupolarotunda {
		count = 1
	}
	caps := string(c.Gyration) + countString(count, string(t))
	return withTwist(wordJoin(elongationWords[c.Elongation], PolygonPrefix(c.Base), caps), c.Twist)
}

func compositeName(c Composite) string {
	if c.Source == nil {
		return ""
	}
	return string(c.Align) + wordJoin(
		countString(c.Augmented, "augmented"),
		countString(c.Gyrate, "gyrate"),
		countString(c.Diminished, "diminished"),
		c.Source.Name(),
	)
}

// alternateTable maps canonical names onto their synonyms.
var alternateTable = map[string][]string{
	"tetrahedron": {
		"tetrahedron dual",
		"triangular pyramid",
		"digonal antiprism",
		"disphenoid",
	},
	"truncated tetrahedron": {"truncated tetrahedron dual"},
	"cube":                  {"square prism"},
	"octahedron":            {"tetratetrahedron", "triangular antiprism", "square bipyramid"},
	"icosahedron": {
		"snub tetrahedron",
		"snub tetratetrahedron",
		"gyroelongated pentagonal bipyramid",
		"snub triangular antiprism",
	},
	"cuboctahedron":        {"rhombitetratetrahedron", "triangular gyrobicupola"},
	"truncated octahedron": {"truncated tetratetrahedron"},
	"rhombicuboctahedron":  {"elongated square orthobicupola", "bigyrate rhombicuboctahedron"},
	"snub cube":            {"snub cuboctahedron"},
	"icosidodecahedron":    {"pentagonal gyrobirotunda"},
	"snub dodecahedron":    {"snub icosidodecahedron"},

	"triangular prism": {"fastigium", "digonal cupola"},
	"gyrobifastigium":  {"digonal gyrobicupola"},

	"triangular bipyramid":       {"augmented tetrahedron"},
	"elongated square pyramid":   {"augmented cube", "augmented square prism"},
	"elongated square bipyramid": {"biaugmented cube", "biaugmented square prism"},

	"square pyramid":                   {"diminished octahedron"},
	"pentagonal antiprism":             {"parabidiminished icosahedron"},
	"gyroelongated pentagonal pyramid": {"diminished icosahedron"},

	"triangular orthobicupola": {"gyrate rhombitetratetrahedron"},
	"triangular cupola":        {"diminished rhombitetratetrahedron"},
	"elongated square gyrobicupola": {
		"pseudorhombicuboctahedron",
		"gyrate rhombicuboctahedron",
	},
	"elongated square cupola": {
		"diminished rhombicuboctahedron",
		"gyrate diminished rhombicuboctahedron",
	},
	"octagonal prism": {"bidiminished rhombicuboctahedron"},
}

var canonicalTable = func() map[string]string {
	m := make(map[string]string)
	for canonical, alts := range alternateTable {
		for _, alt := range alts {
			m[alt] = canonical
		}
	}
	return m
}()

// canonicalName resolves an alternate name. The "(right)" qualifier is kept
// across the lookup.
func canonicalName(name string) string {
	base, right := strings.CutSuffix(name, rightSuffix)
	if c, ok := canonicalTable[base]; ok {
		base = c
	}
	if right {
		return base + rightSuffix
	}
	return base
}

func alternateNames(canonical string) []string {
	base, right := strings.CutSuffix(canonical, rightSuffix)
	alts := alternateTable[base]
	out := make([]string, len(alts))
	for i, a := range alts {
		if right {
			a += rightSuffix
		}
		out[i] = a
	}
	return out
}

// IsAlternateName reports whether name is a synonym of another solid.
func IsAlternateName(name string) bool {
	base, _ := strings.CutSuffix(name, rightSuffix)
	_, ok := canonicalTable[base]
	return ok
}

// CanonicalName resolves a name through the alternate-name table; names
// that are already canonical are returned unchanged.
func CanonicalName(name string) string { return canonicalName(name) }
