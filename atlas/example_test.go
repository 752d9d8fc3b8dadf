// SPDX-License-Identifier: MIT
package atlas_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/atlas"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

func ExampleRoute() {
	from, _ := specs.Default().GetSpecs("cube")
	to, _ := specs.Default().GetSpecs("truncated octahedron")

	steps, err := atlas.Route(operations.Default(), from, to)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, st := range steps {
		fmt.Println(st)
	}
	// Output:
	// cube -dual-> octahedron
	// octahedron -truncate-> truncated octahedron
}

func ExampleWalk() {
	start, _ := specs.Default().GetSpecs("pentagonal pyramid")
	res, _ := atlas.Walk(operations.Default(), start, atlas.WithMaxDepth(1), atlas.WithOperations("elongate"))
	fmt.Println(res.Order)
	// Output: [pentagonal pyramid elongated pentagonal pyramid]
}
