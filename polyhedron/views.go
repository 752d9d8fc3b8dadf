// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// views.go: Vertex, Edge and Face views.
//
// Views are (polyhedron, index) pairs. Equality is by index, comparing views
// of different polyhedra is meaningless.

package polyhedron

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
)

// Vertex is a view of one vertex.
type Vertex struct {
	p     *Polyhedron
	index int
}

// Index returns the vertex index.
func (v Vertex) Index() int { return v.index }

// Vec returns the vertex position.
func (v Vertex) Vec() geom.Vec { return v.p.vertices[v.index] }

// Adjacent returns the neighbouring vertices in rotational order.
func (v Vertex) Adjacent() []Vertex {
	ns := v.p.adjacencyOf().neighbors[v.index]
	out := make([]Vertex, len(ns))
	for i, n := range ns {
		out[i] = v.p.Vertex(n)
	}
	return out
}

// Faces returns the incident faces in rotational order.
func (v Vertex) Faces() []Face {
	fs := v.p.adjacencyOf().vertexFaces[v.index]
	out := make([]Face, len(fs))
	for i, f := range fs {
		out[i] = v.p.Face(f)
	}
	return out
}

// Degree is the number of incident edges.
func (v Vertex) Degree() int { return len(v.p.adjacencyOf().neighbors[v.index]) }

// Configuration counts the incident faces by number of sides.
func (v Vertex) Configuration() map[int]int {
	out := make(map[int]int)
	for _, f := range v.p.adjacencyOf().vertexFaces[v.index] {
		out[len(v.p.faces[f])]++
	}
	return out
}

// Equals compares indices.
func (v Vertex) Equals(o Vertex) bool { return v.index == o.index }

// Edge is a directed edge V1→V2. Its Face owns V1→V2, its twin owns V2→V1.
type Edge struct {
	p      *Polyhedron
	v1, v2 int
}

// V1 returns the tail vertex.
func (e Edge) V1() Vertex { return e.p.Vertex(e.v1) }

// V2 returns the head vertex.
func (e Edge) V2() Vertex { return e.p.Vertex(e.v2) }

// Key returns the undirected key (smaller index first).
func (e Edge) Key() [2]int {
	if e.v1 < e.v2 {
		return [2]int{e.v1, e.v2}
	}
	return [2]int{e.v2, e.v1}
}

// Twin reverses the edge.
func (e Edge) Twin() Edge { return Edge{p: e.p, v1: e.v2, v2: e.v1} }

// Face returns the face owning V1→V2.
func (e Edge) Face() (Face, bool) {
	fi, ok := e.p.adjacencyOf().halfEdges[[2]int{e.v1, e.v2}]
	if !ok {
		return Face{}, false
	}
	return e.p.Face(fi), true
}

// TwinFace returns the face across the edge.
func (e Edge) TwinFace() (Face, bool) { return e.Twin().Face() }

// Next returns the edge following e in its face.
func (e Edge) Next() Edge {
	f, ok := e.Face()
	if !ok {
		return e
	}
	cyc := e.p.faces[f.index]
	k := indexOf(cyc, e.v2)
	return Edge{p: e.p, v1: e.v2, v2: cyc[(k+1)%len(cyc)]}
}

// Prev returns the edge preceding e in its face.
func (e Edge) Prev() Edge {
	f, ok := e.Face()
	if !ok {
		return e
	}
	cyc := e.p.faces[f.index]
	k := indexOf(cyc, e.v1)
	return Edge{p: e.p, v1: cyc[(k-1+len(cyc))%len(cyc)], v2: e.v1}
}

// Length is |V2 − V1|.
func (e Edge) Length() float64 { return geom.Distance(e.V1().Vec(), e.V2().Vec()) }

// Midpoint is the edge midpoint.
func (e Edge) Midpoint() geom.Vec { return geom.Lerp(e.V1().Vec(), e.V2().Vec(), 0.5) }

// Direction is the unit vector V1→V2.
func (e Edge) Direction() geom.Vec { return geom.Unit(r3.Sub(e.V2().Vec(), e.V1().Vec())) }

// DihedralAngle is the interior angle between the two faces at the edge;
// π for coplanar faces. Open edges report 0.
func (e Edge) DihedralAngle() float64 {
	f, ok1 := e.Face()
	g, ok2 := e.TwinFace()
	if !ok1 || !ok2 {
		return 0
	}
	return math.Pi - geom.Angle(f.Normal(), g.Normal())
}

// Equals matches the same directed edge.
func (e Edge) Equals(o Edge) bool { return e.v1 == o.v1 && e.v2 == o.v2 }

// Face is a view of one face cycle.
type Face struct {
	p     *Polyhedron
	index int
}

// Index returns the face index.
func (f Face) Index() int { return f.index }

// Polyhedron returns the owning polyhedron.
func (f Face) Polyhedron() *Polyhedron { return f.p }

// NumSides is the cycle length.
func (f Face) NumSides() int { return len(f.p.faces[f.index]) }

// VertexIndices returns a copy of the cycle.
func (f Face) VertexIndices() []int { return append([]int(nil), f.p.faces[f.index]...) }

// Vertices returns the vertex views in cycle order.
func (f Face) Vertices() []Vertex {
	cyc := f.p.faces[f.index]
	out := make([]Vertex, len(cyc))
	for i, v := range cyc {
		out[i] = f.p.Vertex(v)
	}
	return out
}

// Points returns the vertex positions in cycle order.
func (f Face) Points() []geom.Vec {
	cyc := f.p.faces[f.index]
	out := make([]geom.Vec, len(cyc))
	for i, v := range cyc {
		out[i] = f.p.vertices[v]
	}
	return out
}

// Edges returns the directed edges of the cycle.
func (f Face) Edges() []Edge {
	cyc := f.p.faces[f.index]
	out := make([]Edge, len(cyc))
	for i, v := range cyc {
		out[i] = Edge{p: f.p, v1: v, v2: cyc[(i+1)%len(cyc)]}
	}
	return out
}

// AdjacentFaces returns the face across each edge, in edge order. Open
// edges are skipped.
func (f Face) AdjacentFaces() []Face {
	var out []Face
	for _, e := range f.Edges() {
		if g, ok := e.TwinFace(); ok {
			out = append(out, g)
		}
	}
	return out
}

// Centroid is the mean of the face vertices.
func (f Face) Centroid() geom.Vec { return geom.Centroid(f.Points()) }

// Normal is the outward unit normal (Origin for a degenerate face).
func (f Face) Normal() geom.Vec {
	n, err := geom.Normal(f.Points())
	if err != nil {
		return geom.Origin
	}
	return n
}

// Plane is the plane through the centroid with the face normal.
func (f Face) Plane() (geom.Plane, error) {
	n, err := geom.Normal(f.Points())
	if err != nil {
		return geom.Plane{}, err
	}
	return geom.Plane{Normal: n, Offset: r3.Dot(n, f.Centroid())}, nil
}

// SideLength is the mean edge length.
func (f Face) SideLength() float64 {
	es := f.Edges()
	sum := 0.0
	for _, e := range es {
		sum += e.Length()
	}
	return sum / float64(len(es))
}

// Apothem is the distance from the centroid to the first edge midpoint.
func (f Face) Apothem() float64 { return geom.Distance(f.Centroid(), f.Edges()[0].Midpoint()) }

// Radius is the distance from the centroid to the first vertex.
func (f Face) Radius() float64 { return geom.Distance(f.Centroid(), f.Points()[0]) }

// IsPlanar reports all vertices within eps of one plane.
func (f Face) IsPlanar(eps float64) bool { return geom.IsPlanar(f.Points(), eps) }

// IsRegular reports a planar face with equal sides and equal radii, all
// within eps relative to the side length.
func (f Face) IsRegular(eps float64) bool {
	side := f.SideLength()
	tol := eps * math.Max(side, 1e-12)
	if !f.IsPlanar(tol) {
		return false
	}
	for _, e := range f.Edges() {
		if math.Abs(e.Length()-side) > tol {
			return false
		}
	}
	c := f.Centroid()
	r := f.Radius()
	for _, v := range f.Points() {
		if math.Abs(geom.Distance(c, v)-r) > tol {
			return false
		}
	}
	return true
}

// DistanceToCenter is the distance from the polyhedron centroid to the face
// plane.
func (f Face) DistanceToCenter() float64 {
	pl, err := f.Plane()
	if err != nil {
		return 0
	}
	return math.Abs(pl.Distance(f.p.Centroid()))
}

// Equals compares indices.
func (f Face) Equals(o Face) bool { return f.index == o.index }

// InSet reports whether f is among faces.
func (f Face) InSet(faces []Face) bool {
	for _, g := range faces {
		if g.index == f.index {
			return true
		}
	}
	return false
}

// HasVertex reports whether vertex index v lies on the face.
func (f Face) HasVertex(v int) bool { return indexOf(f.p.faces[f.index], v) >= 0 }
