// SPDX-License-Identifier: MIT
package specs_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/specs"
)

func ExampleUniverse_GetSpecs() {
	s, err := specs.Default().GetSpecs("elongated pentagonal gyrobirotunda")
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Kind(), s.ConwaySymbol(), s.Symmetry())
	// Output: capstone J43 D_5d
}

func ExampleCapstone_Gyrate() {
	s, _ := specs.Default().GetSpecs("square orthobicupola")
	g, err := s.(specs.Capstone).Gyrate()
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Name())
	// Output: square gyrobicupola
}

func ExampleMatch() {
	describe := specs.MatchCases[string]{
		Classical: func(c specs.Classical) string { return fmt.Sprintf("family %d %s", c.Family, c.Operation) },
		Capstone:  func(c specs.Capstone) string { return fmt.Sprintf("%d caps on a %d-gon", c.Count, c.BaseSides()) },
	}
	for _, name := range []string{"truncated icosahedron", "pentagonal bipyramid", "sphenocorona"} {
		s, _ := specs.Default().GetSpecs(name)
		fmt.Printf("%q\n", specs.Match(s, describe))
	}
	// Output:
	// "family 5 truncate"
	// "2 caps on a 5-gon"
	// ""
}
