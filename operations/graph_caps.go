// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// graph_caps.go: cut/paste pairs. The left side of every entry carries one
// cap fewer than the right, or the same caps unturned.

package operations

import (
	"github.com/katalvlaran/polyhedra/specs"
)

func capTypesFor(c specs.Capstone) []specs.CapType {
	if c.IsPrimary() {
		return []specs.CapType{specs.Pyramid}
	}
	if c.IsPentagonal() {
		return []specs.CapType{specs.Cupola, specs.Rotunda}
	}
	return []specs.CapType{specs.Cupola}
}

// withCap adds one cap of type t to c, expanding the gyrations or twists
// the result distinguishes.
func withCap(c specs.Capstone, t specs.CapType) []specs.Capstone {
	d := c
	d.Count++
	if t == specs.Rotunda {
		d.RotundaCount++
	}
	d.Gyration, d.Twist = "", ""
	var out []specs.Capstone
	switch {
	case d.HasGyrate():
		for _, g := range specs.Gyrations {
			d.Gyration = g
			out = append(out, d)
		}
	case d.IsChiral():
		for _, tw := range specs.Twists {
			d.Twist = tw
			out = append(out, d)
		}
	default:
		out = append(out, d)
	}
	return out
}

func capstoneAugments(u *specs.Universe) []Entry {
	var out []Entry
	for _, c := range capstones(u, func(c specs.Capstone) bool { return c.Count < 2 }) {
		for _, t := range capTypesFor(c) {
			for _, d := range withCap(c, t) {
				if !exists(u, d) {
					continue
				}
				out = append(out, Entry{
					Left:         c,
					Right:        d,
					LeftOptions:  GraphOptions{Using: t, FaceType: c.BaseSides(), Gyrate: d.Gyration, Twist: d.Twist},
					RightOptions: GraphOptions{Using: t},
				})
			}
		}
	}
	return out
}

func compositeAugments(u *specs.Universe) []Entry {
	var out []Entry
	for _, c := range u.Composite.Where(func(c specs.Composite) bool { return c.IsAugmentedSolid() && c.Augmented > 0 }) {
		left, err := c.Diminish()
		if err != nil {
			continue
		}
		n, err := c.AugmentFaceType()
		if err != nil {
			continue
		}
		using := specs.Pyramid
		if n > 5 {
			using = specs.Cupola
		}
		out = append(out, Entry{
			Left:         left,
			Right:        c,
			LeftOptions:  GraphOptions{Using: using, FaceType: n, Align: c.Align},
			RightOptions: GraphOptions{Using: using, Align: left.Align},
		})
	}
	return out
}

func diminishedAugments(u *specs.Universe) []Entry {
	var out []Entry
	for _, c := range u.Composite.Where(func(c specs.Composite) bool {
		return c.IsDiminishedSolid() && c.Diminished > 0 && c.Augmented == 0
	}) {
		src, _ := c.SourceClassical()
		if r, err := c.AugmentDiminished(false); err == nil && exists(u, r) {
			out = append(out, Entry{
				Left:         c,
				Right:        r,
				LeftOptions:  GraphOptions{Using: specs.Pyramid, FaceType: int(src.Family), Align: r.Align},
				RightOptions: GraphOptions{Using: specs.Pyramid, Align: c.Align},
			})
		}
		if !src.IsIcosahedral() || c.Diminished != 3 {
			continue
		}
		if r, err := c.AugmentDiminished(true); err == nil && exists(u, r) {
			out = append(out, Entry{
				Left:         c,
				Right:        r,
				LeftOptions:  GraphOptions{Using: specs.Pyramid, FaceType: 3},
				RightOptions: GraphOptions{Using: specs.Pyramid},
			})
		}
	}
	return out
}

// gyrateAugments fills a missing cupola of a cantellated solid, turned
// (ortho) or in place (gyro).
func gyrateAugments(u *specs.Universe) []Entry {
	var out []Entry
	for _, c := range u.Composite.Where(func(c specs.Composite) bool { return c.IsGyrateSolid() && c.Diminished > 0 }) {
		src, _ := c.SourceClassical()
		for _, g := range specs.Gyrations {
			r, err := c.AugmentGyrate(g)
			if err != nil || !exists(u, r) {
				continue
			}
			out = append(out, Entry{
				Left:         c,
				Right:        r,
				LeftOptions:  GraphOptions{Using: specs.Cupola, Gyrate: g, FaceType: 2 * int(src.Family)},
				RightOptions: GraphOptions{Using: specs.Cupola, Gyrate: g, Align: c.Align},
			})
		}
	}
	return out
}

func elementaryAugments(u *specs.Universe) []Entry {
	l, r := specs.Elementary{Base: specs.Sphenocorona}, specs.Elementary{Base: specs.AugmentedSphenocorona}
	if !exists(u, l) || !exists(u, r) {
		return nil
	}
	return []Entry{{
		Left:         l,
		Right:        r,
		LeftOptions:  GraphOptions{Using: specs.Pyramid, FaceType: 4},
		RightOptions: GraphOptions{Using: specs.Pyramid},
	}}
}

var (
	capstoneAugmentDef   = PairDef{Name: "capstone augment", Graph: capstoneAugments, Cut: capCut}
	compositeAugmentDef  = PairDef{Name: "composite augment", Graph: compositeAugments, Cut: capCut}
	diminishedAugmentDef = PairDef{Name: "diminished augment", Graph: diminishedAugments, Cut: capCut}
	gyrateAugmentDef     = PairDef{Name: "gyrate augment", Graph: gyrateAugments, Cut: capCut}
	elementaryAugmentDef = PairDef{Name: "elementary augment", Graph: elementaryAugments, Cut: capCut}
)

// capstoneGyrations turns ortho bi-capstones into gyro ones and left-twisted
// into right-twisted.
func capstoneGyrations(u *specs.Universe) []Entry {
	var out []Entry
	for _, c := range capstones(u, func(c specs.Capstone) bool {
		return (c.HasGyrate() && c.IsOrtho()) || (c.IsChiral() && c.Twist == specs.Left)
	}) {
		d := c
		if c.HasGyrate() {
			d.Gyration = specs.Gyro
		} else {
			d.Twist = specs.Right
		}
		if exists(u, d) {
			out = append(out, Entry{Left: c, Right: d})
		}
	}
	return out
}

// cantellatedGyrations turns one more cupola of a cantellated solid.
func cantellatedGyrations(u *specs.Universe) []Entry {
	var from []specs.Composite
	for _, c := range u.Classical.Where(func(c specs.Classical) bool { return c.IsCantellated() }) {
		if w, err := specs.Wrap(c); err == nil {
			from = append(from, w)
		}
	}
	from = append(from, u.Composite.Where(func(c specs.Composite) bool { return c.IsGyrateSolid() })...)
	var out []Entry
	for _, c := range from {
		next := c
		next.Gyrate++
		aligns := []specs.Align{""}
		if next.HasAlignment() {
			aligns = specs.Alignments
		}
		if next.TotalCount() == 3 && c.IsPara() {
			continue
		}
		for _, a := range aligns {
			next.Align = a
			d := next.Normalize()
			if !exists(u, d) {
				continue
			}
			out = append(out, Entry{
				Left:         c,
				Right:        d,
				LeftOptions:  GraphOptions{Align: d.Align},
				RightOptions: GraphOptions{Align: c.Align},
			})
		}
	}
	return out
}

var (
	capstoneGyrateDef    = PairDef{Name: "capstone gyrate", Graph: capstoneGyrations, Cut: gyrateCut, Turn: true}
	cantellatedGyrateDef = PairDef{Name: "cantellated gyrate", Graph: cantellatedGyrations, Cut: gyrateCut, Turn: true}
)
