// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// polyhedron.go: the Polyhedron type, validated construction and cached
// adjacency.

package polyhedron

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/geom"
)

// Polyhedron is an immutable mesh of vertex positions and face cycles.
type Polyhedron struct {
	vertices []geom.Vec
	faces    [][]int

	once sync.Once
	adj  *adjacency
}

// adjacency is derived lazily from the face cycles.
type adjacency struct {
	halfEdges   map[[2]int]int // directed edge → owning face
	vertexFaces [][]int        // faces around each vertex, rotational when closed
	neighbors   [][]int        // adjacent vertices in the same rotation
	edges       []Edge         // unique edges with V1 < V2
}

// New builds a closed polyhedron, copying its inputs.
//
// Errors:
//   - ErrMalformedFace: a cycle with < 3 indices, an index out of range or a
//     repeated index inside one cycle.
//   - ErrNotClosed: a directed edge owned twice or without a twin.
func New(vertices []geom.Vec, faces [][]int) (*Polyhedron, error) {
	p := newRaw(vertices, faces)
	if err := p.checkFaces(); err != nil {
		return nil, err
	}
	if err := p.checkClosed(); err != nil {
		return nil, err
	}
	return p, nil
}

// newRaw copies the inputs without validation. Mutators use it so seams may
// be open until they are merged.
func newRaw(vertices []geom.Vec, faces [][]int) *Polyhedron {
	vs := make([]geom.Vec, len(vertices))
	copy(vs, vertices)
	fs := make([][]int, len(faces))
	for i, f := range faces {
		fs[i] = append([]int(nil), f...)
	}
	return &Polyhedron{vertices: vs, faces: fs}
}

func (p *Polyhedron) checkFaces() error {
	n := len(p.vertices)
	for fi, f := range p.faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrMalformedFace, fi, len(f))
		}
		seen := make(map[int]bool, len(f))
		for _, v := range f {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrMalformedFace, fi, v, n)
			}
			if seen[v] {
				return fmt.Errorf("%w: face %d repeats vertex %d", ErrMalformedFace, fi, v)
			}
			seen[v] = true
		}
	}
	return nil
}

func (p *Polyhedron) checkClosed() error {
	owned := make(map[[2]int]int)
	for fi, f := range p.faces {
		for i, a := range f {
			key := [2]int{a, f[(i+1)%len(f)]}
			if prev, ok := owned[key]; ok {
				return fmt.Errorf("%w: edge %v owned by faces %d and %d", ErrNotClosed, key, prev, fi)
			}
			owned[key] = fi
		}
	}
	for key := range owned {
		if _, ok := owned[[2]int{key[1], key[0]}]; !ok {
			return fmt.Errorf("%w: edge %v has no twin", ErrNotClosed, key)
		}
	}
	return nil
}

// Check re-runs the validation New performs. Use it after a chain of
// mutators to confirm the seams are closed.
func (p *Polyhedron) Check() error {
	if err := p.checkFaces(); err != nil {
		return err
	}
	return p.checkClosed()
}

// adjacencyOf builds the adjacency tables once.
func (p *Polyhedron) adjacencyOf() *adjacency {
	p.once.Do(func() {
		a := &adjacency{
			halfEdges:   make(map[[2]int]int),
			vertexFaces: make([][]int, len(p.vertices)),
			neighbors:   make([][]int, len(p.vertices)),
		}
		for fi, f := range p.faces {
			for i, v := range f {
				w := f[(i+1)%len(f)]
				a.halfEdges[[2]int{v, w}] = fi
				a.vertexFaces[v] = append(a.vertexFaces[v], fi)
				if v < w {
					a.edges = append(a.edges, Edge{p: p, v1: v, v2: w})
				}
			}
		}
		for v := range p.vertices {
			ring, nbrs, ok := p.rotation(a, v)
			if ok {
				a.vertexFaces[v], a.neighbors[v] = ring, nbrs
				continue
			}
			a.neighbors[v] = p.scanNeighbors(v, a.vertexFaces[v])
		}
		p.adj = a
	})
	return p.adj
}

// rotation walks the faces around v. It fails on open or non-manifold fans.
func (p *Polyhedron) rotation(a *adjacency, v int) (faces, nbrs []int, ok bool) {
	fs := a.vertexFaces[v]
	if len(fs) == 0 {
		return nil, nil, false
	}
	start := fs[0]
	cur := start
	for steps := 0; steps <= len(fs); steps++ {
		f := p.faces[cur]
		k := indexOf(f, v)
		prev := f[(k-1+len(f))%len(f)]
		faces = append(faces, cur)
		nbrs = append(nbrs, f[(k+1)%len(f)])
		next, found := a.halfEdges[[2]int{v, prev}]
		if !found {
			return nil, nil, false
		}
		if next == start {
			return faces, nbrs, len(faces) == len(fs)
		}
		cur = next
	}
	return nil, nil, false
}

func (p *Polyhedron) scanNeighbors(v int, faces []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, fi := range faces {
		f := p.faces[fi]
		k := indexOf(f, v)
		for _, w := range []int{f[(k+1)%len(f)], f[(k-1+len(f))%len(f)]} {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

func indexOf(xs []int, x int) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return -1
}

// NumVertices returns |V|.
func (p *Polyhedron) NumVertices() int { return len(p.vertices) }

// NumFaces returns |F|.
func (p *Polyhedron) NumFaces() int { return len(p.faces) }

// NumEdges returns |E| (unique undirected edges).
func (p *Polyhedron) NumEdges() int { return len(p.adjacencyOf().edges) }

// Vertices returns a copy of the vertex positions.
func (p *Polyhedron) Vertices() []geom.Vec {
	out := make([]geom.Vec, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// FaceCycles returns a copy of the face cycles.
func (p *Polyhedron) FaceCycles() [][]int {
	out := make([][]int, len(p.faces))
	for i, f := range p.faces {
		out[i] = append([]int(nil), f...)
	}
	return out
}

// Vertex returns the view of vertex i.
func (p *Polyhedron) Vertex(i int) Vertex { return Vertex{p: p, index: i} }

// Face returns the view of face i.
func (p *Polyhedron) Face(i int) Face { return Face{p: p, index: i} }

// AllVertices returns a view of every vertex.
func (p *Polyhedron) AllVertices() []Vertex {
	out := make([]Vertex, len(p.vertices))
	for i := range out {
		out[i] = p.Vertex(i)
	}
	return out
}

// Faces returns a view of every face.
func (p *Polyhedron) Faces() []Face {
	out := make([]Face, len(p.faces))
	for i := range out {
		out[i] = p.Face(i)
	}
	return out
}

// Edges returns the unique edges (V1 < V2) in face order.
func (p *Polyhedron) Edges() []Edge {
	es := p.adjacencyOf().edges
	out := make([]Edge, len(es))
	copy(out, es)
	return out
}

// EdgeLength returns the length of the first edge (0 for an empty mesh).
func (p *Polyhedron) EdgeLength() float64 {
	es := p.adjacencyOf().edges
	if len(es) == 0 {
		return 0
	}
	return es[0].Length()
}

// Centroid is the mean of all vertex positions.
func (p *Polyhedron) Centroid() geom.Vec { return geom.Centroid(p.vertices) }

// FacesWithSides returns the faces with exactly n sides.
func (p *Polyhedron) FacesWithSides(n int) []Face {
	var out []Face
	for i, f := range p.faces {
		if len(f) == n {
			out = append(out, p.Face(i))
		}
	}
	return out
}

// FaceWithSides returns the first face with n sides.
func (p *Polyhedron) FaceWithSides(n int) (Face, bool) {
	fs := p.FacesWithSides(n)
	if len(fs) == 0 {
		return Face{}, false
	}
	return fs[0], true
}

// FaceSizes returns the face-size histogram (sides → count).
func (p *Polyhedron) FaceSizes() map[int]int {
	out := make(map[int]int)
	for _, f := range p.faces {
		out[len(f)]++
	}
	return out
}

// HitFace returns the face whose plane lies closest to point.
func (p *Polyhedron) HitFace(point geom.Vec) (Face, bool) {
	best, bestDist := -1, 0.0
	for i := range p.faces {
		f := p.Face(i)
		pl, err := f.Plane()
		if err != nil {
			continue
		}
		d := pl.Distance(point)
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Face{}, false
	}
	return p.Face(best), true
}

// Clone returns an independent copy.
func (p *Polyhedron) Clone() *Polyhedron { return newRaw(p.vertices, p.faces) }

// Transform maps every vertex through fn, keeping the faces.
func (p *Polyhedron) Transform(fn func(geom.Vec) geom.Vec) *Polyhedron {
	vs := make([]geom.Vec, len(p.vertices))
	for i, v := range p.vertices {
		vs[i] = fn(v)
	}
	return newRaw(vs, p.faces)
}

// Scaled returns a copy scaled about the origin by k.
func (p *Polyhedron) Scaled(k float64) *Polyhedron {
	return p.Transform(func(v geom.Vec) geom.Vec { return r3.Scale(k, v) })
}

// Centered returns a copy translated so its centroid sits at the origin.
func (p *Polyhedron) Centered() *Polyhedron {
	c := p.Centroid()
	return p.Transform(func(v geom.Vec) geom.Vec { return r3.Sub(v, c) })
}
