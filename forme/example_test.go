// SPDX-License-Identifier: MIT
package forme_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/specs"
)

func ExampleClassicalForme_FacetFaces() {
	s, err := specs.Default().GetCanonicalSpecs("snub cube")
	if err != nil {
		fmt.Println(err)
		return
	}
	f := forme.MustFromSpecs(s).(*forme.ClassicalForme)
	fmt.Println(len(f.FacetFaces(specs.FaceFacet)), len(f.FacetFaces(specs.VertexFacet)), len(f.EdgeFaces()))
	// Output: 6 8 24
}

func ExampleCapstoneForme_EndCaps() {
	s, err := specs.Default().GetSpecs("pentagonal orthocupolarotunda")
	if err != nil {
		fmt.Println(err)
		return
	}
	f := forme.MustFromSpecs(s).(*forme.CapstoneForme)
	caps, _ := f.EndCaps()
	for _, c := range caps {
		fmt.Println(c.Kind(), c.Base())
	}
	// Output:
	// cupola 5
	// rotunda 5
}
