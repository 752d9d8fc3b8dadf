// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// poses.go: where a forme sits, how large it is and which way it faces.

package operations

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/specs"
)

// defaultPose uses the centroid (of the source, for composites), the edge
// length and the forme orientation.
func defaultPose(f forme.Forme, _ Side, _ Entry) (Pose, error) {
	origin := f.Geom().Centroid()
	if c, ok := f.(*forme.CompositeForme); ok {
		origin = c.SourceCentroid()
	}
	return Pose{Origin: origin, Scale: f.Geom().EdgeLength(), Orientation: f.Orientation()}, nil
}

// entryFacet is the facet an entry is oriented by: the declared facet of a
// classical end, else the facet option, else face.
func entryFacet(e Entry) specs.Facet {
	for _, s := range []specs.Specs{e.Left, e.Right} {
		if c, ok := s.(specs.Classical); ok && c.HasFacet() {
			return c.Facet
		}
	}
	for _, o := range []GraphOptions{e.LeftOptions, e.RightOptions} {
		if o.Facet != "" {
			return o.Facet
		}
	}
	return specs.FaceFacet
}

// classicalPose orients a classical forme by the entry facet and measures
// it with scale.
func classicalPose(scale func(c *forme.ClassicalForme, facet specs.Facet) float64) PoseFunc {
	return func(f forme.Forme, side Side, e Entry) (Pose, error) {
		c, ok := f.(*forme.ClassicalForme)
		if !ok {
			return defaultPose(f, side, e)
		}
		facet := entryFacet(e)
		return Pose{Origin: c.Geom().Centroid(), Scale: scale(c, facet), Orientation: c.AdjacentDirections(facet)}, nil
	}
}

var (
	inradiusPose  = classicalPose(func(c *forme.ClassicalForme, facet specs.Facet) float64 { return c.Inradius(facet) })
	midradiusPose = classicalPose(func(c *forme.ClassicalForme, _ specs.Facet) float64 { return c.Midradius() })
)

// capPlanePose measures a composite by the distance from its source centre
// to the plane of its first modifiable cap's boundary.
func capPlanePose(f forme.Forme, side Side, e Entry) (Pose, error) {
	c, ok := f.(*forme.CompositeForme)
	if !ok {
		return inradiusPose(f, side, e)
	}
	pose, _ := defaultPose(f, side, e)
	caps := c.ModifiableCaps()
	if len(caps) == 0 {
		return Pose{}, fmt.Errorf("%w: %s has no cap to measure", ErrDegeneratePose, f.Specs().Name())
	}
	pl, err := geom.FitPlane(caps[0].BoundaryPoints())
	if err != nil {
		return Pose{}, fmt.Errorf("%w: %s: %v", ErrDegeneratePose, f.Specs().Name(), err)
	}
	d := math.Abs(pl.Distance(pose.Origin))
	if d < geom.Precision*pose.Scale {
		return Pose{}, fmt.Errorf("%w: %s: cap plane passes through the centre", ErrDegeneratePose, f.Specs().Name())
	}
	pose.Scale = d
	return pose, nil
}
