// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// graph_prismatic.go: pairs that change the prismatic middle or the base of
// a capstone.

package operations

import (
	"github.com/katalvlaran/polyhedra/specs"
)

func capstones(u *specs.Universe, pred func(specs.Capstone) bool) []specs.Capstone {
	return u.Capstone.Where(pred)
}

// elongations pairs each capstone with its version carrying elongation e.
// Bi-cupolae lose their gyration to a twisted band; the right side then
// names the gyration the band came from and the left side the twist.
func elongations(u *specs.Universe, from []specs.Capstone, e specs.Elongation) []Entry {
	var out []Entry
	for _, c := range from {
		d := c
		d.Elongation = e
		d.Twist = ""
		if e == specs.Antiprism {
			d.Gyration = ""
		}
		d = d.Normalize()
		if !d.IsChiral() {
			if exists(u, d) {
				out = append(out, Entry{Left: c, Right: d})
			}
			continue
		}
		for _, t := range specs.Twists {
			d.Twist = t
			if !exists(u, d) {
				continue
			}
			out = append(out, Entry{
				Left:         c,
				Right:        d,
				LeftOptions:  GraphOptions{Twist: t},
				RightOptions: GraphOptions{Gyrate: c.Gyration},
			})
		}
	}
	return out
}

var elongateDef = PairDef{
	Name:   "elongate",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		return elongations(u, capstones(u, func(c specs.Capstone) bool {
			return c.IsShortened() && c.Base > 2 && c.HasCaps()
		}), specs.Prism)
	},
}

var gyroelongateDef = PairDef{
	Name:   "gyroelongate",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		return elongations(u, capstones(u, func(c specs.Capstone) bool {
			return c.IsShortened() && c.Base > 2 && c.HasCaps()
		}), specs.Antiprism)
	},
}

var turnDef = PairDef{
	Name:   "turn",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		return elongations(u, capstones(u, func(c specs.Capstone) bool {
			return c.IsElongated() && c.Base > 2
		}), specs.Antiprism)
	},
}

// resized maps c to a capstone with base n and polygon type t, keeping the
// caps and middle. A bi-cupola defaults to ortho and, when twisted, yields
// one entry per twist.
func resized(u *specs.Universe, c specs.Capstone, n int, t specs.PolygonType) []Entry {
	d := c
	d.Base, d.Type = n, t
	if c.RotundaCount > 0 && (n != 5 || t != specs.Secondary) {
		return nil
	}
	if d.HasGyrate() && d.Gyration == "" {
		d.Gyration = specs.Ortho
	}
	d = d.Normalize()
	if !d.IsChiral() || c.IsChiral() {
		if exists(u, d) {
			return []Entry{{Left: c, Right: d}}
		}
		return nil
	}
	var out []Entry
	for _, tw := range specs.Twists {
		d.Twist = tw
		if exists(u, d) {
			out = append(out, Entry{Left: c, Right: d, LeftOptions: GraphOptions{Twist: tw}})
		}
	}
	return out
}

var doubleDef = PairDef{
	Name:   "double",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, c := range capstones(u, func(c specs.Capstone) bool { return c.IsPrimary() && c.Base > 2 }) {
			out = append(out, resized(u, c, c.Base, specs.Secondary)...)
		}
		digonal := specs.Capstone{Base: 2, Type: specs.Primary, Elongation: specs.Antiprism}.Normalize()
		if sq := (specs.Capstone{Base: 4, Type: specs.Primary, Elongation: specs.Antiprism}).Normalize(); exists(u, digonal) && exists(u, sq) {
			out = append(out, Entry{Left: digonal, Right: sq})
		}
		for _, c := range u.Composite.Where(func(c specs.Composite) bool {
			p, ok := c.SourcePrism()
			return ok && p.Base == 3 && p.IsPrimary()
		}) {
			d := c
			d.Source = specs.Capstone{Base: 3, Type: specs.Secondary, Elongation: specs.Prism}.Normalize()
			if d.Align == "" {
				d.Align = specs.Meta
			}
			d = d.Normalize()
			if exists(u, d) {
				out = append(out, Entry{Left: c, Right: d})
			}
		}
		return out
	},
}

var incrementDef = PairDef{
	Name:   "increment",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, c := range capstones(u, func(c specs.Capstone) bool {
			return c.IsPrimary() && c.Base > 2 && c.Base < 5 && !c.IsGyroelongated()
		}) {
			out = append(out, resized(u, c, c.Base+1, specs.Primary)...)
		}
		hex := specs.Capstone{Base: 3, Type: specs.Secondary, Elongation: specs.Prism}.Normalize()
		if exists(u, prism(5)) && exists(u, hex) {
			out = append(out, Entry{Left: prism(5), Right: hex})
		}
		return out
	},
}
