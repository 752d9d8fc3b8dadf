// SPDX-License-Identifier: MIT
// Package: polyhedra/forme
//
// classical.go: facet classification of Platonic and Archimedean solids.
//
// The face-facet polygon of family p is the p-gon, the vertex-facet
// polygon the triangle. When sizes alone decide nothing (the tetrahedral
// family, the squares of a rhombicuboctahedron) the classes come from the
// face adjacency, and the class holding the lowest face index is the face
// facet.

package forme

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// ClassicalForme is a Platonic or Archimedean solid with classified faces.
type ClassicalForme struct {
	base
	spec specs.Classical

	// facets[i] is the facet of face i, "" for an edge face.
	facets []specs.Facet
}

func newClassical(c specs.Classical, p *polyhedron.Polyhedron) (*ClassicalForme, error) {
	facets, err := classify(c, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return &ClassicalForme{base: base{s: c, p: p}, spec: c, facets: facets}, nil
}

// Classical returns the typed specs.
func (f *ClassicalForme) Classical() specs.Classical { return f.spec }

// Normalize implements Forme.
func (f *ClassicalForme) Normalize() Forme {
	return &ClassicalForme{base: base{s: f.s, p: normalizedGeom(f.p)}, spec: f.spec, facets: f.facets}
}

// FacetOf returns the facet of face; false for edge faces and indices out
// of range.
func (f *ClassicalForme) FacetOf(face int) (specs.Facet, bool) {
	if face < 0 || face >= len(f.facets) || f.facets[face] == "" {
		return "", false
	}
	return f.facets[face], true
}

// IsEdgeFace reports a face descending from an edge of the seed.
func (f *ClassicalForme) IsEdgeFace(face int) bool {
	return face >= 0 && face < len(f.facets) && f.facets[face] == ""
}

// FacetFaces returns the faces carrying facet.
func (f *ClassicalForme) FacetFaces(facet specs.Facet) []polyhedron.Face {
	var out []polyhedron.Face
	for i, g := range f.facets {
		if g == facet {
			out = append(out, f.p.Face(i))
		}
	}
	return out
}

// EdgeFaces returns the faces descending from edges.
func (f *ClassicalForme) EdgeFaces() []polyhedron.Face { return f.FacetFaces("") }

// FacetDirections are the unit normals of the facet faces. A regular solid
// has no faces of the opposite facet; its vertices stand in for them.
func (f *ClassicalForme) FacetDirections(facet specs.Facet) []geom.Vec {
	faces := f.FacetFaces(facet)
	if len(faces) == 0 {
		c := f.p.Centroid()
		out := make([]geom.Vec, f.p.NumVertices())
		for i, v := range f.p.Vertices() {
			out[i] = geom.Unit(r3.Sub(v, c))
		}
		return out
	}
	out := make([]geom.Vec, len(faces))
	for i, g := range faces {
		out[i] = g.Normal()
	}
	return out
}

// AdjacentDirections returns the first facet direction and the facet
// direction angularly closest to it.
func (f *ClassicalForme) AdjacentDirections(facet specs.Facet) [2]geom.Vec {
	dirs := f.FacetDirections(facet)
	if len(dirs) < 2 {
		return fallbackOrientation(f.p)
	}
	best, angle := -1, math.Inf(1)
	for i := 1; i < len(dirs); i++ {
		a := geom.Angle(dirs[0], dirs[i])
		if a > 1e-6 && a < math.Pi-1e-6 && a < angle-1e-9 {
			best, angle = i, a
		}
	}
	if best < 0 {
		return fallbackOrientation(f.p)
	}
	return [2]geom.Vec{dirs[0], dirs[best]}
}

// Orientation implements Forme: adjacent face-facet directions.
func (f *ClassicalForme) Orientation() [2]geom.Vec { return f.AdjacentDirections(specs.FaceFacet) }

// Inradius is the mean distance from the centre to the planes of the facet
// faces, or the circumradius when the facet has no faces.
func (f *ClassicalForme) Inradius(facet specs.Facet) float64 {
	faces := f.FacetFaces(facet)
	if len(faces) == 0 {
		return f.Circumradius()
	}
	sum := 0.0
	for _, g := range faces {
		sum += g.DistanceToCenter()
	}
	return sum / float64(len(faces))
}

// Midradius is the distance from the centre to the first edge midpoint.
func (f *ClassicalForme) Midradius() float64 {
	es := f.p.Edges()
	if len(es) == 0 {
		return 0
	}
	return geom.Distance(f.p.Centroid(), es[0].Midpoint())
}

// Circumradius is the distance from the centre to the first vertex.
func (f *ClassicalForme) Circumradius() float64 {
	if f.p.NumVertices() == 0 {
		return 0
	}
	return geom.Distance(f.p.Centroid(), f.p.Vertices()[0])
}

// classify assigns a facet to every face of p.
func classify(c specs.Classical, p *polyhedron.Polyhedron) ([]specs.Facet, error) {
	n := p.NumFaces()
	out := make([]specs.Facet, n)
	sides := make([]int, n)
	largest := 0
	for i := range out {
		sides[i] = p.Face(i).NumSides()
		largest = max(largest, sides[i])
	}
	family := int(c.Family)
	bySize := func(face, vertex int) {
		for i, s := range sides {
			switch s {
			case face:
				out[i] = specs.FaceFacet
			case vertex:
				out[i] = specs.VertexFacet
			}
		}
	}

	switch c.Operation {
	case specs.Regular:
		for i := range out {
			out[i] = c.Facet
		}
	case specs.Truncate:
		for i, s := range sides {
			if s == largest {
				out[i] = c.Facet
			} else {
				out[i] = c.Facet.Opposite()
			}
		}
	case specs.Rectify:
		if family != 3 {
			bySize(family, 3)
			break
		}
		return colourByAdjacency(p, out, allFaces(n))
	case specs.Bevel:
		if family != 3 {
			bySize(2*family, 6)
			break
		}
		return colourByAdjacency(p, out, facesWithSides(sides, 6))
	case specs.Cantellate:
		switch family {
		case 3:
			return colourThroughSquares(p, out)
		case 4:
			for i, s := range sides {
				if s == 3 {
					out[i] = specs.VertexFacet
				} else if allNeighboursHave(p, i, 4) {
					out[i] = specs.FaceFacet
				}
			}
		default:
			bySize(family, 3)
		}
	case specs.Snub:
		if family == 3 {
			return classifySnubTetrahedron(p, out)
		}
		for i, s := range sides {
			switch {
			case s == family:
				out[i] = specs.FaceFacet
			case !anyNeighbourHas(p, i, family):
				out[i] = specs.VertexFacet
			}
		}
	default:
		return nil, fmt.Errorf("%w: operation %q", ErrNoFacet, c.Operation)
	}
	return out, nil
}

func allFaces(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func facesWithSides(sides []int, n int) []int {
	var out []int
	for i, s := range sides {
		if s == n {
			out = append(out, i)
		}
	}
	return out
}

func allNeighboursHave(p *polyhedron.Polyhedron, face, n int) bool {
	for _, g := range p.Face(face).AdjacentFaces() {
		if g.NumSides() != n {
			return false
		}
	}
	return true
}

func anyNeighbourHas(p *polyhedron.Polyhedron, face, n int) bool {
	for _, g := range p.Face(face).AdjacentFaces() {
		if g.NumSides() == n {
			return true
		}
	}
	return false
}

// twoColour colours nodes so that linked nodes differ, starting every
// component from its lowest node with the face facet.
func twoColour(out []specs.Facet, nodes []int, links map[int][]int) ([]specs.Facet, error) {
	colour := make(map[int]specs.Facet, len(nodes))
	for _, start := range nodes {
		if _, seen := colour[start]; seen {
			continue
		}
		colour[start] = specs.FaceFacet
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range links[v] {
				c, seen := colour[w]
				switch {
				case !seen:
					colour[w] = colour[v].Opposite()
					queue = append(queue, w)
				case c == colour[v]:
					return nil, fmt.Errorf("%w: faces %d and %d fall in one class", ErrNoFacet, v, w)
				}
			}
		}
	}
	for v, c := range colour {
		out[v] = c
	}
	return out, nil
}

// colourByAdjacency two-colours the given faces by shared edges.
func colourByAdjacency(p *polyhedron.Polyhedron, out []specs.Facet, nodes []int) ([]specs.Facet, error) {
	in := make(map[int]bool, len(nodes))
	for _, v := range nodes {
		in[v] = true
	}
	links := make(map[int][]int, len(nodes))
	for _, v := range nodes {
		for _, g := range p.Face(v).AdjacentFaces() {
			if in[g.Index()] {
				links[v] = append(links[v], g.Index())
			}
		}
	}
	return twoColour(out, nodes, links)
}

// colourThroughSquares two-colours the triangles of a cuboctahedron:
// consecutive triangles around a square belong to different facets.
func colourThroughSquares(p *polyhedron.Polyhedron, out []specs.Facet) ([]specs.Facet, error) {
	var triangles []int
	links := make(map[int][]int)
	for _, f := range p.Faces() {
		switch f.NumSides() {
		case 3:
			triangles = append(triangles, f.Index())
		case 4:
			ns := f.AdjacentFaces()
			for i := range ns {
				a, b := ns[i].Index(), ns[(i+1)%len(ns)].Index()
				links[a] = append(links[a], b)
				links[b] = append(links[b], a)
			}
		}
	}
	return twoColour(out, triangles, links)
}

// classifySnubTetrahedron finds, on an icosahedron, the eight triangles
// that descend from the faces and vertices of a tetrahedron: no two share
// an edge, every other triangle borders exactly two of them and every
// vertex touches exactly two. The eight split into two classes of four
// vertex-disjoint triangles.
func classifySnubTetrahedron(p *polyhedron.Polyhedron, out []specs.Facet) ([]specs.Facet, error) {
	n := p.NumFaces()
	adjacent := make([][]int, n)
	for i := range adjacent {
		adjacent[i] = faceIndices(p.Face(i).AdjacentFaces())
	}
	chosen := make([]bool, n)
	var picked []int

	valid := func() bool {
		for i := 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			k := 0
			for _, j := range adjacent[i] {
				if chosen[j] {
					k++
				}
			}
			if k != 2 {
				return false
			}
		}
		for v := 0; v < p.NumVertices(); v++ {
			k := 0
			for _, g := range p.Vertex(v).Faces() {
				if chosen[g.Index()] {
					k++
				}
			}
			if k != 2 {
				return false
			}
		}
		return true
	}

	colour := func() ([]specs.Facet, error) {
		links := make(map[int][]int)
		for _, a := range picked {
			for _, b := range picked {
				if a != b && shareVertex(p, a, b) {
					links[a] = append(links[a], b)
				}
			}
		}
		return twoColour(append([]specs.Facet(nil), out...), picked, links)
	}

	var result []specs.Facet
	var search func(start int) bool
	search = func(start int) bool {
		if len(picked) == 8 {
			if !valid() {
				return false
			}
			classes, err := colour()
			if err != nil {
				return false
			}
			result = classes
			return true
		}
		for i := start; i < n; i++ {
			free := true
			for _, j := range adjacent[i] {
				if chosen[j] {
					free = false
					break
				}
			}
			if !free {
				continue
			}
			chosen[i] = true
			picked = append(picked, i)
			if search(i + 1) {
				return true
			}
			chosen[i] = false
			picked = picked[:len(picked)-1]
		}
		return false
	}
	if n != 20 || !search(0) {
		return nil, fmt.Errorf("%w: no snub structure on %d faces", ErrNoFacet, n)
	}
	return result, nil
}

func shareVertex(p *polyhedron.Polyhedron, a, b int) bool {
	for _, v := range p.Face(a).VertexIndices() {
		if p.Face(b).HasVertex(v) {
			return true
		}
	}
	return false
}
