// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// congruence.go: comparing solids up to similarity.
//
// Fingerprint is rotation- and reflection-invariant, cheap to compare and
// used as a prefilter. Congruent searches a proper rotation mapping one
// vertex set onto the other, so a chiral solid is not congruent to its
// mirror image.

package polyhedron

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
)

// Fingerprint summarizes a solid independently of pose and scale.
type Fingerprint struct {
	Vertices  int
	Edges     int
	FaceSizes map[int]int
	Distances []float64 // sorted pairwise distances over the edge length
}

// FingerprintOf computes the fingerprint of p.
func FingerprintOf(p *Polyhedron) Fingerprint {
	length := p.EdgeLength()
	if length == 0 {
		length = 1
	}
	n := p.NumVertices()
	ds := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ds = append(ds, geom.Distance(p.vertices[i], p.vertices[j])/length)
		}
	}
	sort.Float64s(ds)
	return Fingerprint{
		Vertices:  n,
		Edges:     p.NumEdges(),
		FaceSizes: p.FaceSizes(),
		Distances: ds,
	}
}

// Congruent reports equal fingerprints within tol.
func (f Fingerprint) Congruent(o Fingerprint, tol float64) bool {
	if f.Vertices != o.Vertices || f.Edges != o.Edges || !sameConfig(f.FaceSizes, o.FaceSizes) {
		return false
	}
	if len(f.Distances) != len(o.Distances) {
		return false
	}
	for i := range f.Distances {
		if math.Abs(f.Distances[i]-o.Distances[i]) > tol {
			return false
		}
	}
	return true
}

// Congruent reports whether b is a, up to translation, uniform scale and a
// proper rotation. tol is relative to the edge length.
func Congruent(a, b *Polyhedron, tol float64) bool {
	if !FingerprintOf(a).Congruent(FingerprintOf(b), tol) {
		return false
	}
	pa := normalized(a)
	pb := normalized(b)
	if len(pa) == 0 {
		return true
	}
	a0 := pa[0]
	a1 := pa[a.adjacencyOf().neighbors[0][0]]
	for i, b0 := range pb {
		if math.Abs(r3.Norm(b0)-r3.Norm(a0)) > tol {
			continue
		}
		for _, j := range b.adjacencyOf().neighbors[i] {
			b1 := pb[j]
			if math.Abs(r3.Norm(b1)-r3.Norm(a1)) > tol {
				continue
			}
			rot, err := geom.OrthonormalTransform([2]geom.Vec{a0, a1}, [2]geom.Vec{b0, b1})
			if err != nil {
				continue
			}
			if mapsOnto(pa, pb, rot, tol) {
				return true
			}
		}
	}
	return false
}

// normalized centers p on its centroid and scales it to unit edges.
func normalized(p *Polyhedron) []geom.Vec {
	length := p.EdgeLength()
	if length == 0 {
		length = 1
	}
	c := p.Centroid()
	out := make([]geom.Vec, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = r3.Scale(1/length, r3.Sub(v, c))
	}
	return out
}

func mapsOnto(from, to []geom.Vec, rot func(geom.Vec) geom.Vec, tol float64) bool {
	used := make([]bool, len(to))
	for _, p := range from {
		q := rot(p)
		hit := false
		for j, t := range to {
			if !used[j] && geom.Near(q, t, tol) {
				used[j] = true
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
