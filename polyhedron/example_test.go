// SPDX-License-Identifier: MIT
package polyhedron_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// ExampleFromPoints recovers the faces of an octahedron and lists its caps.
func ExampleFromPoints() {
	s := 1 / math.Sqrt2
	p, err := polyhedron.FromPoints([]geom.Vec{{X: s}, {X: -s}, {Y: s}, {Y: -s}, {Z: s}, {Z: -s}}, 1e-6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.NumVertices(), p.NumEdges(), p.NumFaces())
	fmt.Println(len(p.CapsOf(polyhedron.Pyramid)), "pyramids")
	fmt.Println(polyhedron.Validate(p, geom.Precision) == nil)
	// Output:
	// 6 12 8
	// 6 pyramids
	// true
}
