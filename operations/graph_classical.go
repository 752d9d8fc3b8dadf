// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// graph_classical.go: pairs between Platonic and Archimedean solids, plus
// the prism/bipyramid duals and expansions that follow the same shapes.

package operations

import (
	"github.com/katalvlaran/polyhedra/specs"
)

// exists reports whether s is enumerated in u with exactly this data.
func exists(u *specs.Universe, s specs.Specs) bool {
	s = s.Unwrap()
	got, err := u.GetSpecs(s.Name())
	return err == nil && got.Equals(s)
}

func classical(f specs.Family, op specs.Operation, facet specs.Facet, twist specs.Twist) specs.Classical {
	return specs.Classical{Family: f, Operation: op, Facet: facet, Twist: twist}.Normalize()
}

func prism(n int) specs.Capstone {
	return specs.Capstone{Base: n, Type: specs.Primary, Elongation: specs.Prism}.Normalize()
}

func bipyramid(n int) specs.Capstone {
	return specs.Capstone{Base: n, Type: specs.Primary, Elongation: specs.None, Count: 2}.Normalize()
}

func elongatedOrthobicupola(n int) specs.Capstone {
	return specs.Capstone{Base: n, Type: specs.Secondary, Elongation: specs.Prism, Count: 2, Gyration: specs.Ortho}.Normalize()
}

// regulars iterates the family and facet of every regular solid.
func regulars(u *specs.Universe, fn func(specs.Classical)) {
	for _, c := range u.Classical.Where(func(c specs.Classical) bool { return c.IsRegular() }) {
		fn(c)
	}
}

// perFamily builds one entry per family from left and right operations,
// keeping those with both ends enumerated.
func perFamily(u *specs.Universe, left, right specs.Operation) []Entry {
	var out []Entry
	for _, f := range specs.Families {
		e := Entry{Left: classical(f, left, "", ""), Right: classical(f, right, "", "")}
		if exists(u, e.Left) && exists(u, e.Right) {
			out = append(out, e)
		}
	}
	return out
}

var truncateDef = PairDef{
	Name:   "truncate",
	Middle: Right,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		regulars(u, func(c specs.Classical) {
			out = append(out, Entry{Left: c, Right: classical(c.Family, specs.Truncate, c.Facet, "")})
		})
		return out
	},
}

var amboTruncateDef = PairDef{
	Name:   "ambo truncate",
	Middle: Right,
	Pose:   inradiusPose,
	Graph:  func(u *specs.Universe) []Entry { return perFamily(u, specs.Rectify, specs.Bevel) },
}

// augmentedTruncateDef swaps the source of an augmented regular solid for
// its truncation, pyramids becoming cupolae.
var augmentedTruncateDef = PairDef{
	Name:   "augmented truncate",
	Middle: Right,
	Pose:   capPlanePose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, c := range u.Composite.Where(func(c specs.Composite) bool { return c.IsAugmentedClassical() }) {
			src, _ := c.SourceClassical()
			if !src.IsRegular() {
				continue
			}
			d := c
			d.Source = classical(src.Family, specs.Truncate, src.Facet, "")
			d = d.Normalize()
			if exists(u, d) {
				out = append(out, Entry{Left: c, Right: d})
			}
		}
		return out
	},
}

var rectifyDef = PairDef{
	Name:   "rectify",
	Middle: Middle,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		regulars(u, func(c specs.Classical) {
			out = append(out, Entry{
				Left:         c,
				Right:        classical(c.Family, specs.Rectify, "", ""),
				RightOptions: GraphOptions{Facet: c.Facet},
			})
		})
		return out
	},
	Intermediate: func(e Entry) (specs.Specs, error) {
		c := e.Left.(specs.Classical)
		return classical(c.Family, specs.Truncate, c.Facet, ""), nil
	},
}

var amboRectifyDef = PairDef{
	Name:   "ambo rectify",
	Middle: Middle,
	Pose:   inradiusPose,
	Graph:  func(u *specs.Universe) []Entry { return perFamily(u, specs.Rectify, specs.Cantellate) },
	Intermediate: func(e Entry) (specs.Specs, error) {
		return classical(e.Left.(specs.Classical).Family, specs.Bevel, "", ""), nil
	},
}

var dualDef = PairDef{
	Name:   "dual",
	Middle: Middle,
	Pose:   midradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, f := range specs.Families {
			out = append(out, Entry{
				Left:  classical(f, specs.Regular, specs.FaceFacet, ""),
				Right: classical(f, specs.Regular, specs.VertexFacet, ""),
			})
		}
		return out
	},
	Intermediate: func(e Entry) (specs.Specs, error) {
		return classical(e.Left.(specs.Classical).Family, specs.Cantellate, "", ""), nil
	},
}

var prismDualDef = PairDef{
	Name:   "prism dual",
	Middle: Middle,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for n := 3; n <= 5; n++ {
			e := Entry{Left: prism(n), Right: bipyramid(n)}
			if exists(u, e.Left) && exists(u, e.Right) && exists(u, elongatedOrthobicupola(n)) {
				out = append(out, e)
			}
		}
		return out
	},
	Intermediate: func(e Entry) (specs.Specs, error) {
		return elongatedOrthobicupola(e.Left.(specs.Capstone).Base), nil
	},
}

var expandDef = PairDef{
	Name:   "expand",
	Middle: Right,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		regulars(u, func(c specs.Classical) {
			out = append(out, Entry{
				Left:         c,
				Right:        classical(c.Family, specs.Cantellate, "", ""),
				RightOptions: GraphOptions{Facet: c.Facet},
			})
		})
		return out
	},
}

var semiExpandDef = PairDef{
	Name:   "semi-expand",
	Middle: Right,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, c := range u.Classical.Where(func(c specs.Classical) bool { return c.IsTruncated() }) {
			out = append(out, Entry{
				Left:         c,
				Right:        classical(c.Family, specs.Bevel, "", ""),
				RightOptions: GraphOptions{Facet: c.Facet},
			})
		}
		return out
	},
}

var prismExpandDef = PairDef{
	Name:   "prism expand",
	Middle: Right,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for n := 3; n <= 5; n++ {
			r := elongatedOrthobicupola(n)
			if !exists(u, r) {
				continue
			}
			if exists(u, prism(n)) {
				out = append(out, Entry{Left: prism(n), Right: r, RightOptions: GraphOptions{Facet: specs.FaceFacet}})
			}
			if exists(u, bipyramid(n)) {
				out = append(out, Entry{Left: bipyramid(n), Right: r, RightOptions: GraphOptions{Facet: specs.VertexFacet}})
			}
		}
		return out
	},
}

var snubDef = PairDef{
	Name:   "snub",
	Middle: Right,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		regulars(u, func(c specs.Classical) {
			for _, s := range u.Classical.Where(func(s specs.Classical) bool { return s.IsSnub() && s.Family == c.Family }) {
				out = append(out, Entry{
					Left:         c,
					Right:        s,
					LeftOptions:  GraphOptions{Twist: s.Twist},
					RightOptions: GraphOptions{Facet: c.Facet},
				})
			}
		})
		return out
	},
}

var twistDef = PairDef{
	Name:   "twist",
	Middle: Right,
	Pose:   inradiusPose,
	Graph: func(u *specs.Universe) []Entry {
		var out []Entry
		for _, c := range u.Classical.Where(func(c specs.Classical) bool { return c.IsCantellated() }) {
			for _, s := range u.Classical.Where(func(s specs.Classical) bool { return s.IsSnub() && s.Family == c.Family }) {
				out = append(out, Entry{Left: c, Right: s, LeftOptions: GraphOptions{Twist: s.Twist}})
			}
		}
		return out
	},
}
