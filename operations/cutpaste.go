// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// cutpaste.go: candidate moves for augment, diminish and gyrate.
//
// A move is one concrete edit of the start geometry: a cap kind and turn on
// a face, or one cap to cut off or turn. Moves are keyed so an apply that
// tries several entries builds each candidate once.

package operations

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// CutFunc lists the moves from f towards to under the start options an
// entry declares and the caller's selection.
type CutFunc func(b *builder.Builder, f forme.Forme, to Side, declared GraphOptions, opts Options) []move

type candidate struct {
	geom *polyhedron.Polyhedron
	anim Animation
}

// move is one edit; sel holds the face or cap it acts on.
type move struct {
	key string
	sel Options
	run func() (candidate, error)
}

// capCut augments towards Right and diminishes towards Left.
func capCut(b *builder.Builder, f forme.Forme, to Side, declared GraphOptions, opts Options) []move {
	if to == Right {
		return augmentMoves(b, f, declared, opts)
	}
	return diminishMoves(b, f, declared, opts)
}

// gyrateCut turns a cap whichever way the entry points.
func gyrateCut(b *builder.Builder, f forme.Forme, _ Side, declared GraphOptions, opts Options) []move {
	var out []move
	for _, cp := range pickCaps(f, declared, opts) {
		if cp.Kind() == polyhedron.Pyramid {
			continue
		}
		cp := cp
		p := f.Geom()
		out = append(out, move{
			key: "gyrate " + capKey(cp),
			sel: Options{Cap: cp},
			run: func() (candidate, error) {
				q, err := b.GyrateCap(p, cp)
				if err != nil {
					return candidate{}, err
				}
				return candidate{geom: q, anim: Animation{Start: p.Clone(), EndVertices: builder.GyratedVertices(p, cp)}}, nil
			},
		})
	}
	return out
}

func augmentMoves(b *builder.Builder, f forme.Forme, declared GraphOptions, opts Options) []move {
	p := f.Geom()
	faces := []polyhedron.Face{opts.Face}
	if !opts.HasFace() {
		faces = augmentableFaces(f, declared.FaceType)
	}
	var out []move
	for _, face := range faces {
		kind, ok := capKindFor(declared.Using, face.NumSides())
		if !ok {
			continue
		}
		for shift := 0; shift < builder.CapAlignments(kind); shift++ {
			if !builder.CanAugment(p, face.Index(), kind, shift) {
				continue
			}
			face, shift := face, shift
			out = append(out, move{
				key: fmt.Sprintf("augment %d %s %d", face.Index(), kind, shift),
				sel: Options{Face: face},
				run: func() (candidate, error) {
					q, err := b.Augment(p, face.Index(), kind, shift)
					if err != nil {
						return candidate{}, err
					}
					return candidate{geom: q, anim: growAnimation(p, q, face)}, nil
				},
			})
		}
	}
	return out
}

func diminishMoves(b *builder.Builder, f forme.Forme, declared GraphOptions, opts Options) []move {
	p := f.Geom()
	var out []move
	for _, cp := range pickCaps(f, declared, opts) {
		cp := cp
		out = append(out, move{
			key: "diminish " + capKey(cp),
			sel: Options{Cap: cp},
			run: func() (candidate, error) {
				q, err := b.Diminish(p, cp)
				if err != nil {
					return candidate{}, err
				}
				return candidate{geom: q, anim: Animation{Start: p.Clone(), EndVertices: flattenCap(p, cp)}}, nil
			},
		})
	}
	return out
}

// augmentableFaces lists the faces of size n that take a cap.
func augmentableFaces(f forme.Forme, n int) []polyhedron.Face {
	if n == 0 {
		return nil
	}
	var out []polyhedron.Face
	for _, face := range f.Geom().FacesWithSides(n) {
		if c, ok := f.(*forme.CompositeForme); ok && !c.IsSourceFace(face.Index()) {
			continue
		}
		out = append(out, face)
	}
	return out
}

// pickCaps is the selected cap, or every modifiable cap of the declared
// type.
func pickCaps(f forme.Forme, declared GraphOptions, opts Options) []polyhedron.Cap {
	if opts.HasCap() {
		return []polyhedron.Cap{opts.Cap}
	}
	var out []polyhedron.Cap
	for _, cp := range modifiableCaps(f) {
		if declared.Using == "" || capTypeOf(cp) == declared.Using {
			out = append(out, cp)
		}
	}
	return out
}

// modifiableCaps are the caps an operation may cut off or turn.
func modifiableCaps(f forme.Forme) []polyhedron.Cap {
	switch v := f.(type) {
	case *forme.CompositeForme:
		return v.ModifiableCaps()
	case *forme.ElementaryForme:
		return v.ModifiableCaps()
	case *forme.CapstoneForme:
		caps, err := v.EndCaps()
		if err != nil {
			return nil
		}
		return caps
	}
	return f.Caps()
}

func capKindFor(t specs.CapType, sides int) (polyhedron.CapKind, bool) {
	switch t {
	case specs.Pyramid:
		return polyhedron.Pyramid, sides <= 5
	case specs.Cupola:
		if sides == 4 {
			return polyhedron.Fastigium, true
		}
		return polyhedron.Cupola, sides%2 == 0
	case specs.Rotunda:
		return polyhedron.Rotunda, sides == 10
	}
	return "", false
}

func capTypeOf(cp polyhedron.Cap) specs.CapType {
	switch cp.CapType() {
	case polyhedron.Pyramid:
		return specs.Pyramid
	case polyhedron.Rotunda:
		return specs.Rotunda
	}
	return specs.Cupola
}

func capKey(cp polyhedron.Cap) string { return fmt.Sprint(cp.Kind(), cp.InnerIndices()) }

// growAnimation starts the new cap flat on the face it stands on.
func growAnimation(p, q *polyhedron.Polyhedron, face polyhedron.Face) Animation {
	end := q.Vertices()
	start := append([]geom.Vec(nil), end...)
	if pl, err := face.Plane(); err == nil {
		for v := p.NumVertices(); v < len(start); v++ {
			start[v] = pl.Project(start[v])
		}
	}
	s, err := q.WithVertices(start)
	if err != nil {
		s = q.Clone()
	}
	return Animation{Start: s, EndVertices: end}
}

// flattenCap moves the inner vertices of cp onto its boundary plane.
func flattenCap(p *polyhedron.Polyhedron, cp polyhedron.Cap) []geom.Vec {
	out := p.Vertices()
	pl, err := geom.FitPlane(cp.BoundaryPoints())
	if err != nil {
		return out
	}
	for _, v := range cp.InnerIndices() {
		out[v] = pl.Project(out[v])
	}
	return out
}
