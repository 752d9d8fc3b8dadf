// SPDX-License-Identifier: MIT
// Package: polyhedra/specs
//
// conway.go: group labels, Conway symbols, Johnson numbers and the
// space-filling predicate.

package specs

import (
	"fmt"
	"strconv"
	"strings"
)

// Group labels.
const (
	GroupPlatonic    = "Platonic solid"
	GroupArchimedean = "Archimedean solid"
	GroupPrism       = "Prism"
	GroupAntiprism   = "Antiprism"
	GroupJohnson     = "Johnson solid"
)

var platonicSymbols = map[string]string{
	"tetrahedron":  "T",
	"cube":         "C",
	"octahedron":   "O",
	"dodecahedron": "D",
	"icosahedron":  "I",
}

var archimedeanSymbols = map[string]string{
	"truncated tetrahedron":       "tT",
	"cuboctahedron":               "aC",
	"truncated cube":              "tC",
	"truncated octahedron":        "tO",
	"rhombicuboctahedron":         "eC",
	"truncated cuboctahedron":     "bC",
	"snub cube":                   "sC",
	"icosidodecahedron":           "aD",
	"truncated dodecahedron":      "tD",
	"truncated icosahedron":       "tI",
	"rhombicosidodecahedron":      "eD",
	"truncated icosidodecahedron": "bD",
	"snub dodecahedron":           "sD",
}

// johnsonSolids lists the 92 Johnson solids by number (J1 first).
var johnsonSolids = []string{
	"square pyramid",
	"pentagonal pyramid",
	"triangular cupola",
	"square cupola",
	"pentagonal cupola",
	"pentagonal rotunda",
	"elongated triangular pyramid",
	"elongated square pyramid",
	"elongated pentagonal pyramid",
	"gyroelongated square pyramid",
	"gyroelongated pentagonal pyramid",
	"triangular bipyramid",
	"pentagonal bipyramid",
	"elongated triangular bipyramid",
	"elongated square bipyramid",
	"elongated pentagonal bipyramid",
	"gyroelongated square bipyramid",
	"elongated triangular cupola",
	"elongated square cupola",
	"elongated pentagonal cupola",
	"elongated pentagonal rotunda",
	"gyroelongated triangular cupola",
	"gyroelongated square cupola",
	"gyroelongated pentagonal cupola",
	"gyroelongated pentagonal rotunda",
	"gyrobifastigium",
	"triangular orthobicupola",
	"square orthobicupola",
	"square gyrobicupola",
	"pentagonal orthobicupola",
	"pentagonal gyrobicupola",
	"pentagonal orthocupolarotunda",
	"pentagonal gyrocupolarotunda",
	"pentagonal orthobirotunda",
	"elongated triangular orthobicupola",
	"elongated triangular gyrobicupola",
	"elongated square gyrobicupola",
	"elongated pentagonal orthobicupola",
	"elongated pentagonal gyrobicupola",
	"elongated pentagonal orthocupolarotunda",
	"elongated pentagonal gyrocupolarotunda",
	"elongated pentagonal orthobirotunda",
	"elongated pentagonal gyrobirotunda",
	"gyroelongated triangular bicupola",
	"gyroelongated square bicupola",
	"gyroelongated pentagonal bicupola",
	"gyroelongated pentagonal cupolarotunda",
	"gyroelongated pentagonal birotunda",
	"augmented triangular prism",
	"biaugmented triangular prism",
	"triaugmented triangular prism",
	"augmented pentagonal prism",
	"biaugmented pentagonal prism",
	"augmented hexagonal prism",
	"parabiaugmented hexagonal prism",
	"metabiaugmented hexagonal prism",
	"triaugmented hexagonal prism",
	"augmented dodecahedron",
	"parabiaugmented dodecahedron",
	"metabiaugmented dodecahedron",
	"triaugmented dodecahedron",
	"metabidiminished icosahedron",
	"tridiminished icosahedron",
	"augmented tridiminished icosahedron",
	"augmented truncated tetrahedron",
	"augmented truncated cube",
	"biaugmented truncated cube",
	"augmented truncated dodecahedron",
	"parabiaugmented truncated dodecahedron",
	"metabiaugmented truncated dodecahedron",
	"triaugmented truncated dodecahedron",
	"gyrate rhombicosidodecahedron",
	"parabigyrate rhombicosidodecahedron",
	"metabigyrate rhombicosidodecahedron",
	"trigyrate rhombicosidodecahedron",
	"diminished rhombicosidodecahedron",
	"paragyrate diminished rhombicosidodecahedron",
	"metagyrate diminished rhombicosidodecahedron",
	"bigyrate diminished rhombicosidodecahedron",
	"parabidiminished rhombicosidodecahedron",
	"metabidiminished rhombicosidodecahedron",
	"gyrate bidiminished rhombicosidodecahedron",
	"tridiminished rhombicosidodecahedron",
	"snub disphenoid",
	"snub square antiprism",
	"sphenocorona",
	"augmented sphenocorona",
	"sphenomegacorona",
	"hebesphenomegacorona",
	"disphenocingulum",
	"bilunabirotunda",
	"triangular hebesphenorotunda",
}

// JohnsonNumber returns n for the canonical name of Jn.
func JohnsonNumber(name string) (int, bool) {
	base, _ := strings.CutSuffix(canonicalName(name), rightSuffix)
	for i, j := range johnsonSolids {
		if j == base {
			return i + 1, true
		}
	}
	return 0, false
}

// JohnsonName returns the name of Jn.
func JohnsonName(n int) (string, bool) {
	if n < 1 || n > len(johnsonSolids) {
		return "", false
	}
	return johnsonSolids[n-1], true
}

// conwaySymbol looks the canonical name up: Platonic and Archimedean
// symbols, Jn for Johnson solids, Pn and An for prisms and antiprisms.
func conwaySymbol(s Specs) string {
	name, _ := strings.CutSuffix(s.CanonicalName(), rightSuffix)
	if sym, ok := platonicSymbols[name]; ok {
		return sym
	}
	if sym, ok := archimedeanSymbols[name]; ok {
		return sym
	}
	if n, ok := JohnsonNumber(name); ok {
		return fmt.Sprintf("J%d", n)
	}
	prefix, kind, ok := strings.Cut(name, " ")
	if !ok {
		return ""
	}
	n, ok := PolygonSides(prefix)
	if !ok {
		return ""
	}
	switch kind {
	case "prism":
		return fmt.Sprintf("P%d", n)
	case "antiprism":
		return fmt.Sprintf("A%d", n)
	}
	return ""
}

// FromConwaySymbol is the inverse of ConwaySymbol on canonical names.
func FromConwaySymbol(sym string) (string, bool) {
	for name, s := range platonicSymbols {
		if s == sym {
			return name, true
		}
	}
	for name, s := range archimedeanSymbols {
		if s == sym {
			return name, true
		}
	}
	if len(sym) < 2 {
		return "", false
	}
	n, err := strconv.Atoi(sym[1:])
	if err != nil {
		return "", false
	}
	switch sym[0] {
	case 'J':
		return JohnsonName(n)
	case 'P':
		if p := PolygonPrefix(n); p != "" {
			return p + " prism", true
		}
	case 'A':
		if p := PolygonPrefix(n); p != "" {
			return p + " antiprism", true
		}
	}
	return "", false
}

var honeycombs = map[string]bool{
	"cube":                 true,
	"truncated octahedron": true,
	"triangular prism":     true,
	"hexagonal prism":      true,
	"gyrobifastigium":      true,
}

func isHoneycomb(s Specs) bool { return honeycombs[s.CanonicalName()] }
