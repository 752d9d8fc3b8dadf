// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// cap.go: discovery of pyramid, fastigium, cupola and rotunda caps.
//
// A cap is the set of faces around a group of inner vertices that all share
// one face configuration, whose outer boundary is a single planar ring:
//   - pyramid:   one vertex surrounded by d triangles ({3:d})
//   - fastigium: an edge between two squares whose ends are {3:1, 4:2}
//   - cupola:    an n-gon bordered by squares, its vertices {3:1, 4:2, n:1}
//   - rotunda:   a pentagon bordered by triangles plus its neighbour ring,
//     all {3:2, 5:2}
//
// Caps() returns pyramids if any exist, otherwise fastigia, otherwise cupolae
// and rotundae together.

package polyhedron

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
)

// CapKind names the cap shape.
type CapKind string

// Cap kinds.
const (
	Pyramid   CapKind = "pyramid"
	Fastigium CapKind = "fastigium"
	Cupola    CapKind = "cupola"
	Rotunda   CapKind = "rotunda"
)

// Cap is a discovered cluster of faces forming one end of a solid.
type Cap struct {
	p        *Polyhedron
	kind     CapKind
	top      []int
	inner    []int
	faces    []int
	boundary []int
}

// Kind returns the cap shape.
func (c Cap) Kind() CapKind { return c.kind }

// CapType maps the kind onto the three augmentee types; a fastigium is a
// digonal cupola.
func (c Cap) CapType() CapKind {
	if c.kind == Fastigium {
		return Cupola
	}
	return c.kind
}

// Base is the size of the cap's top: the apex degree of a pyramid, 2 for a
// fastigium, the top polygon for cupolae and rotundae.
func (c Cap) Base() int {
	switch c.kind {
	case Pyramid:
		return len(c.boundary)
	case Fastigium:
		return 2
	default:
		return len(c.top)
	}
}

// Polyhedron returns the owning polyhedron.
func (c Cap) Polyhedron() *Polyhedron { return c.p }

// Top returns the apex, top edge or top polygon vertices.
func (c Cap) Top() []Vertex { return c.views(c.top) }

// Inner returns every vertex of the cap off its boundary.
func (c Cap) Inner() []Vertex { return c.views(c.inner) }

// InnerIndices returns copies of the inner vertex indices.
func (c Cap) InnerIndices() []int { return append([]int(nil), c.inner...) }

// Boundary returns the boundary ring, wound like the cap faces (so its
// Newell normal points away from the solid).
func (c Cap) Boundary() []Vertex { return c.views(c.boundary) }

// BoundaryIndices returns a copy of the ring.
func (c Cap) BoundaryIndices() []int { return append([]int(nil), c.boundary...) }

// BoundaryPoints returns the ring positions.
func (c Cap) BoundaryPoints() []geom.Vec {
	out := make([]geom.Vec, len(c.boundary))
	for i, v := range c.boundary {
		out[i] = c.p.vertices[v]
	}
	return out
}

// Faces returns the cap faces.
func (c Cap) Faces() []Face {
	out := make([]Face, len(c.faces))
	for i, f := range c.faces {
		out[i] = c.p.Face(f)
	}
	return out
}

// TopPoint is the apex, the top edge midpoint or the top face centroid.
func (c Cap) TopPoint() geom.Vec {
	pts := make([]geom.Vec, len(c.top))
	for i, v := range c.top {
		pts[i] = c.p.vertices[v]
	}
	return geom.Centroid(pts)
}

// Centroid is the boundary centroid.
func (c Cap) Centroid() geom.Vec { return geom.Centroid(c.BoundaryPoints()) }

// Normal is the outward unit normal of the boundary ring.
func (c Cap) Normal() geom.Vec {
	n, err := geom.Normal(c.BoundaryPoints())
	if err != nil {
		return geom.Unit(r3.Sub(c.TopPoint(), c.Centroid()))
	}
	return n
}

// Axis is the unit vector from the boundary centroid to the top.
func (c Cap) Axis() geom.Vec { return geom.Unit(r3.Sub(c.TopPoint(), c.Centroid())) }

// BoundaryFace returns the face of the rest of the solid that exactly
// covers the boundary ring, when there is one (a bipyramid has none, a
// pyramid's base does).
func (c Cap) BoundaryFace() (Face, bool) {
	key := faceKey(c.boundary)
	for i, f := range c.p.faces {
		if faceKey(f) == key {
			return c.p.Face(i), true
		}
	}
	return Face{}, false
}

// Equals compares the kind and the inner vertex sets.
func (c Cap) Equals(o Cap) bool {
	return c.kind == o.kind && faceKey(c.inner) == faceKey(o.inner)
}

// HasFace reports whether face index f belongs to the cap.
func (c Cap) HasFace(f int) bool { return indexOf(c.faces, f) >= 0 }

func (c Cap) views(idx []int) []Vertex {
	out := make([]Vertex, len(idx))
	for i, v := range idx {
		out[i] = c.p.Vertex(v)
	}
	return out
}

// Caps discovers the caps of the polyhedron.
func (p *Polyhedron) Caps() []Cap {
	if caps := p.pyramids(); len(caps) > 0 {
		return caps
	}
	if caps := p.fastigia(); len(caps) > 0 {
		return caps
	}
	return append(p.cupolae(), p.rotundae()...)
}

// CapsOf filters Caps by kind.
func (p *Polyhedron) CapsOf(kind CapKind) []Cap {
	var out []Cap
	for _, c := range p.Caps() {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// HitCap returns the cap containing the hit face that lies closest to the
// point.
func (p *Polyhedron) HitCap(caps []Cap, point geom.Vec) (Cap, bool) {
	f, ok := p.HitFace(point)
	if !ok {
		return Cap{}, false
	}
	best, dist := -1, 0.0
	for i, c := range caps {
		if !c.HasFace(f.index) {
			continue
		}
		if d := geom.Distance(c.TopPoint(), point); best < 0 || d < dist {
			best, dist = i, d
		}
	}
	if best < 0 {
		return Cap{}, false
	}
	return caps[best], true
}

func (p *Polyhedron) pyramids() []Cap {
	var out []Cap
	for v := range p.vertices {
		deg := p.Vertex(v).Degree()
		if deg < 3 {
			continue
		}
		if c, ok := p.newCap(Pyramid, []int{v}, []int{v}, map[int]int{3: deg}); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *Polyhedron) fastigia() []Cap {
	var out []Cap
	for _, e := range p.Edges() {
		inner := []int{e.v1, e.v2}
		if !p.acrossAll(inner, 4) {
			continue
		}
		if c, ok := p.newCap(Fastigium, inner, inner, map[int]int{3: 1, 4: 2}); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *Polyhedron) cupolae() []Cap {
	var out []Cap
	for _, f := range p.faces {
		if !p.acrossAll(f, 4) {
			continue
		}
		config := map[int]int{3: 1, 4: 2}
		config[len(f)]++
		if c, ok := p.newCap(Cupola, f, f, config); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *Polyhedron) rotundae() []Cap {
	var out []Cap
	for _, f := range p.faces {
		if len(f) != 5 || !p.acrossAll(f, 3) {
			continue
		}
		var inner []int
		seen := make(map[int]bool)
		for _, v := range f {
			for _, w := range append([]int{v}, p.adjacencyOf().neighbors[v]...) {
				if !seen[w] {
					seen[w] = true
					inner = append(inner, w)
				}
			}
		}
		if c, ok := p.newCap(Rotunda, f, inner, map[int]int{3: 2, 5: 2}); ok {
			out = append(out, c)
		}
	}
	return out
}

// newCap validates the configuration, collects the faces and walks the
// boundary.
func (p *Polyhedron) newCap(kind CapKind, top, inner []int, config map[int]int) (Cap, bool) {
	a := p.adjacencyOf()
	for _, v := range inner {
		if !sameConfig(p.Vertex(v).Configuration(), config) {
			return Cap{}, false
		}
	}
	faceSet := make(map[int]bool)
	var faces []int
	for _, v := range inner {
		for _, f := range a.vertexFaces[v] {
			if !faceSet[f] {
				faceSet[f] = true
				faces = append(faces, f)
			}
		}
	}
	sort.Ints(faces)
	ring, ok := p.boundaryOf(faceSet)
	if !ok {
		return Cap{}, false
	}
	innerSet := make(map[int]bool, len(inner))
	for _, v := range inner {
		innerSet[v] = true
	}
	pts := make([]geom.Vec, len(ring))
	for i, v := range ring {
		if innerSet[v] {
			return Cap{}, false
		}
		pts[i] = p.vertices[v]
	}
	if !geom.IsPlanar(pts, geom.Precision) {
		return Cap{}, false
	}
	return Cap{
		p:        p,
		kind:     kind,
		top:      append([]int(nil), top...),
		inner:    append([]int(nil), inner...),
		faces:    faces,
		boundary: ring,
	}, true
}

// boundaryOf returns the single ring of directed edges of faceSet whose
// twins lie outside it.
func (p *Polyhedron) boundaryOf(faceSet map[int]bool) ([]int, bool) {
	a := p.adjacencyOf()
	next := make(map[int]int)
	first := -1
	for f := range faceSet {
		cyc := p.faces[f]
		for i, v := range cyc {
			w := cyc[(i+1)%len(cyc)]
			tf, ok := a.halfEdges[[2]int{w, v}]
			if ok && faceSet[tf] {
				continue
			}
			if _, dup := next[v]; dup {
				return nil, false
			}
			next[v] = w
			if first < 0 || v < first {
				first = v
			}
		}
	}
	if first < 0 {
		return nil, false
	}
	ring := []int{first}
	for cur := next[first]; cur != first; cur = next[cur] {
		if len(ring) > len(next) {
			return nil, false
		}
		ring = append(ring, cur)
		if _, ok := next[cur]; !ok {
			return nil, false
		}
	}
	if len(ring) != len(next) {
		return nil, false
	}
	return ring, true
}

// acrossAll reports whether every face across an edge of the path or
// cycle top has the given number of sides. A two-vertex top is one edge
// seen from both sides.
func (p *Polyhedron) acrossAll(top []int, sides int) bool {
	a := p.adjacencyOf()
	for i, v := range top {
		w := top[(i+1)%len(top)]
		for _, key := range [][2]int{{v, w}, {w, v}} {
			f, ok := a.halfEdges[key]
			if !ok {
				return false
			}
			if len(top) > 2 && faceKey(p.faces[f]) == faceKey(top) {
				continue
			}
			if len(p.faces[f]) != sides {
				return false
			}
		}
	}
	return true
}

func sameConfig(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
