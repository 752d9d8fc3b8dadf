// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// mutate.go: pure mutators and the seam-closing passes.
//
// Contract:
//   • Every mutator returns a new Polyhedron; the receiver is untouched.
//   • Results may be open meshes. Cut/paste code MUST run
//     DeduplicateVertices (which also drops extraneous vertices) and then
//     Check before handing the result on.

package polyhedron

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/geom"
)

// WithVertices keeps the faces and replaces every vertex position.
func (p *Polyhedron) WithVertices(vertices []geom.Vec) (*Polyhedron, error) {
	if len(vertices) != len(p.vertices) {
		return nil, fmt.Errorf("%w: have %d, got %d", ErrVertexCount, len(p.vertices), len(vertices))
	}
	return newRaw(vertices, p.faces), nil
}

// WithFaces keeps the vertices and replaces the face cycles.
func (p *Polyhedron) WithFaces(faces [][]int) *Polyhedron { return newRaw(p.vertices, faces) }

// WithoutFaces drops the faces with the given indices.
func (p *Polyhedron) WithoutFaces(indices ...int) *Polyhedron {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	kept := make([][]int, 0, len(p.faces))
	for i, f := range p.faces {
		if !drop[i] {
			kept = append(kept, f)
		}
	}
	return newRaw(p.vertices, kept)
}

// AddFaces appends face cycles.
func (p *Polyhedron) AddFaces(faces ...[]int) *Polyhedron {
	all := append(p.FaceCycles(), faces...)
	return newRaw(p.vertices, all)
}

// AddPolyhedron appends the vertices and faces of q, offsetting its indices.
func (p *Polyhedron) AddPolyhedron(q *Polyhedron) *Polyhedron {
	offset := len(p.vertices)
	vs := append(p.Vertices(), q.vertices...)
	fs := p.FaceCycles()
	for _, f := range q.faces {
		g := make([]int, len(f))
		for i, v := range f {
			g[i] = v + offset
		}
		fs = append(fs, g)
	}
	return newRaw(vs, fs)
}

// DeduplicateVertices merges vertices that coincide within tol onto the
// earliest of them, drops the repeated indices this leaves inside cycles,
// drops cycles shorter than three and removes unreferenced vertices.
func (p *Polyhedron) DeduplicateVertices(tol float64) *Polyhedron {
	target := make([]int, len(p.vertices))
	for i, v := range p.vertices {
		target[i] = i
		for j := 0; j < i; j++ {
			if target[j] == j && geom.Near(v, p.vertices[j], tol) {
				target[i] = j
				break
			}
		}
	}
	faces := make([][]int, 0, len(p.faces))
	for _, f := range p.faces {
		var g []int
		for _, v := range f {
			t := target[v]
			if len(g) > 0 && g[len(g)-1] == t {
				continue
			}
			g = append(g, t)
		}
		for len(g) > 1 && g[0] == g[len(g)-1] {
			g = g[:len(g)-1]
		}
		if len(g) >= 3 {
			faces = append(faces, g)
		}
	}
	return newRaw(p.vertices, faces).RemoveExtraneousVertices()
}

// RemoveExtraneousVertices drops vertices no face references and reindexes
// the cycles, keeping the relative vertex order.
func (p *Polyhedron) RemoveExtraneousVertices() *Polyhedron {
	used := make([]bool, len(p.vertices))
	for _, f := range p.faces {
		for _, v := range f {
			used[v] = true
		}
	}
	remap := make([]int, len(p.vertices))
	var vs []geom.Vec
	for i, v := range p.vertices {
		if used[i] {
			remap[i] = len(vs)
			vs = append(vs, v)
		} else {
			remap[i] = -1
		}
	}
	fs := make([][]int, len(p.faces))
	for i, f := range p.faces {
		g := make([]int, len(f))
		for j, v := range f {
			g[j] = remap[v]
		}
		fs[i] = g
	}
	return newRaw(vs, fs)
}
