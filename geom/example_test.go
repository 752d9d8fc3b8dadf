// SPDX-License-Identifier: MIT
package geom_test

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/geom"
)

// ExampleFitPlane fits the plane of a unit square lifted to z = 1.
func ExampleFitPlane() {
	pl, err := geom.FitPlane([]geom.Vec{{Z: 1}, {X: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {Y: 1, Z: 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("normal.z=%.0f offset=%.0f\n", pl.Normal.Z, pl.Offset)
	// Output:
	// normal.z=1 offset=1
}
