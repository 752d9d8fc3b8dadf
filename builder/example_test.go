// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// ExampleRealize builds the left snub cube.
func ExampleRealize() {
	p, err := builder.Realize(specs.Classical{Family: 4, Operation: specs.Snub, Twist: specs.Left})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.NumVertices(), p.NumEdges(), p.NumFaces())
	fmt.Println(p.FaceSizes()[3], "triangles,", p.FaceSizes()[4], "squares")
	// Output:
	// 24 60 38
	// 32 triangles, 6 squares
}

// ExampleBuilder_Augment stands a square pyramid on a cube.
func ExampleBuilder_Augment() {
	b, err := builder.New(builder.WithTolerance(1e-6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cube, err := b.Realize(specs.Classical{Family: 4, Operation: specs.Regular, Facet: specs.FaceFacet})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := b.Augment(cube, 0, polyhedron.Pyramid, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.NumVertices(), p.NumFaces())
	// Output:
	// 9 9
}
