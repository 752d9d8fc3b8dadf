// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// composite.go: augmented, diminished and gyrate solids.
//
// The source is realized first, then the modified faces or caps are chosen
// by depth-first search: each prefix must already be a valid solid, and a
// pair of modifications must match the record's alignment (para when the
// two directions are opposite, meta otherwise). The candidates of every
// source are equivalent under its symmetry, so the first pick is fixed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

const paraAngle = math.Pi - 1e-3

// aligned reports whether the directions of a complete pair satisfy a.
func aligned(dirs []geom.Vec, a specs.Align) bool {
	if a == "" || len(dirs) != 2 {
		return true
	}
	para := geom.Angle(dirs[0], dirs[1]) > paraAngle
	return para == (a == specs.Para)
}

func (b *Builder) composite(c specs.Composite) (*polyhedron.Polyhedron, error) {
	if c.Source == nil {
		return nil, fmt.Errorf("%w: composite without source", ErrNoRealization)
	}
	src, err := b.Realize(c.Source)
	if err != nil {
		return nil, err
	}
	var p *polyhedron.Polyhedron
	switch {
	case c.TotalCount() == 0:
		return src, nil
	case c.IsAugmentedSolid():
		p, err = b.augmented(c, src)
	case c.IsDiminishedSolid():
		p, err = b.diminished(c, src)
	case c.IsGyrateSolid():
		p, err = b.gyrated(c, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoRealization, c.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return p.Centered(), nil
}

// augmented stands c.Augmented caps on faces of the augment face type.
func (b *Builder) augmented(c specs.Composite, src *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) {
	sides, err := c.AugmentFaceType()
	if err != nil {
		return nil, err
	}
	kind := polyhedron.Cupola
	if sides <= 5 {
		kind = polyhedron.Pyramid
	}
	faces := src.FacesWithSides(sides)
	base := src.Vertices()

	var (
		dirs   []geom.Vec
		result *polyhedron.Polyhedron
	)
	var search func(start int, extra []geom.Vec) bool
	search = func(start int, extra []geom.Vec) bool {
		if len(dirs) == c.Augmented {
			return true
		}
		for i := start; i < len(faces); i++ {
			if len(dirs) == 0 && i > 0 {
				break
			}
			f := faces[i]
			dirs = append(dirs, f.Normal())
			if aligned(dirs, c.Align) {
				for shift := 0; shift < CapAlignments(kind); shift++ {
					pts, err := capPoints(src, f.Index(), kind, shift)
					if err != nil {
						continue
					}
					next := append(append([]geom.Vec(nil), extra...), pts...)
					q, err := b.solid(c.Name(), append(append([]geom.Vec(nil), base...), next...))
					if err != nil {
						continue
					}
					result = q
					if search(i+1, next) {
						return true
					}
				}
			}
			dirs = dirs[:len(dirs)-1]
		}
		return false
	}
	if !search(0, nil) {
		return nil, fmt.Errorf("%w: no face selection", ErrInvalidResult)
	}
	b.cfg.logger.Debug("composite selection", "solid", c.Name(), "faces", len(dirs), "cap", kind)
	return result, nil
}

// diminished removes c.Diminished pyramids, then for the augmented
// tridiminished icosahedron stands a pyramid on the first triangle that
// takes one.
func (b *Builder) diminished(c specs.Composite, src *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) {
	caps := src.CapsOf(polyhedron.Pyramid)
	p, err := b.selectCaps(c, caps, c.Diminished, func(chosen []polyhedron.Cap) []geom.Vec {
		var drop []int
		for _, cp := range chosen {
			drop = append(drop, cp.InnerIndices()...)
		}
		return withoutPoints(src.Vertices(), drop)
	})
	if err != nil || c.Augmented == 0 {
		return p, err
	}
	for _, f := range p.FacesWithSides(3) {
		if q, err := b.Augment(p, f.Index(), polyhedron.Pyramid, 0); err == nil {
			return q, nil
		}
	}
	return nil, fmt.Errorf("%w: no triangle takes a pyramid", ErrInvalidResult)
}

// gyrated turns the first c.Gyrate of the chosen cupolae and removes the
// remaining c.Diminished.
func (b *Builder) gyrated(c specs.Composite, src *polyhedron.Polyhedron) (*polyhedron.Polyhedron, error) {
	caps := src.CapsOf(polyhedron.Cupola)
	return b.selectCaps(c, caps, c.Gyrate+c.Diminished, func(chosen []polyhedron.Cap) []geom.Vec {
		pts := src.Vertices()
		var drop []int
		for i, cp := range chosen {
			if i < c.Gyrate {
				pts = gyratedPoints(pts, cp)
			} else {
				drop = append(drop, cp.InnerIndices()...)
			}
		}
		return withoutPoints(pts, drop)
	})
}

// selectCaps searches for n pairwise disjoint caps whose modified point set
// (apply) hulls to a valid solid.
func (b *Builder) selectCaps(c specs.Composite, caps []polyhedron.Cap, n int,
	apply func([]polyhedron.Cap) []geom.Vec) (*polyhedron.Polyhedron, error) {
	var (
		chosen []polyhedron.Cap
		result *polyhedron.Polyhedron
	)
	disjoint := func(cp polyhedron.Cap) bool {
		for _, o := range chosen {
			for _, f := range cp.Faces() {
				if o.HasFace(f.Index()) {
					return false
				}
			}
		}
		return true
	}
	var search func(start int) bool
	search = func(start int) bool {
		if len(chosen) == n {
			return true
		}
		for i := start; i < len(caps); i++ {
			if len(chosen) == 0 && i > 0 {
				break
			}
			if !disjoint(caps[i]) {
				continue
			}
			chosen = append(chosen, caps[i])
			dirs := make([]geom.Vec, len(chosen))
			for j, cp := range chosen {
				dirs[j] = cp.Normal()
			}
			if aligned(dirs, c.Align) {
				if q, err := b.solid(c.Name(), apply(chosen)); err == nil {
					result = q
					if search(i + 1) {
						return true
					}
				}
			}
			chosen = chosen[:len(chosen)-1]
		}
		return false
	}
	if !search(0) {
		return nil, fmt.Errorf("%w: no cap selection among %d caps of %s", ErrInvalidResult, len(caps), c.Source.Name())
	}
	b.cfg.logger.Debug("composite selection", "solid", c.Name(), "caps", len(chosen))
	return result, nil
}
