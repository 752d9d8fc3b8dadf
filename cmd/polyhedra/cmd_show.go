// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_show.go: everything known about one solid.

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/specs"
)

type symmetryDoc struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
	Order  int    `yaml:"order"`
}

type geometryDoc struct {
	Vertices int `yaml:"vertices"`
	Edges    int `yaml:"edges"`
	Faces    int `yaml:"faces"`
	// FaceSizes maps side count to face count.
	FaceSizes map[int]int `yaml:"faceSizes"`
}

type showDoc struct {
	Name       string       `yaml:"name"`
	Kind       string       `yaml:"kind"`
	Canonical  string       `yaml:"canonical"`
	Alternates []string     `yaml:"alternates,omitempty"`
	Symmetry   symmetryDoc  `yaml:"symmetry"`
	Group      string       `yaml:"group"`
	Conway     string       `yaml:"conway,omitempty"`
	Johnson    int          `yaml:"johnson,omitempty"`
	Chiral     bool         `yaml:"chiral"`
	Honeycomb  bool         `yaml:"honeycomb"`
	Geometry   *geometryDoc `yaml:"geometry,omitempty"`
	Operations []string     `yaml:"operations"`
}

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show names, symmetry, geometry and applicable operations of a solid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.resolve(args[0])
			if err != nil {
				return err
			}
			doc, err := e.describe(s)
			if err != nil {
				return err
			}
			return e.emit(cmd.OutOrStdout(), doc, func() format.TableBuilder { return doc.table(e) })
		},
	}
}

func (e *env) describe(s specs.Specs) (showDoc, error) {
	sym := s.Symmetry()
	doc := showDoc{
		Name:       s.Name(),
		Kind:       string(s.Kind()),
		Canonical:  s.CanonicalName(),
		Alternates: s.AlternateNames(),
		Symmetry:   symmetryDoc{Symbol: sym.SymbolStr(), Name: sym.Name(), Order: sym.Order()},
		Group:      s.Group(),
		Conway:     s.ConwaySymbol(),
		Chiral:     s.IsChiral(),
		Honeycomb:  s.IsHoneycomb(),
	}
	if n, ok := specs.JohnsonNumber(s.Name()); ok && s.Group() == specs.GroupJohnson {
		doc.Johnson = n
	}
	p, err := e.b.Realize(s)
	switch {
	case err == nil:
		doc.Geometry = &geometryDoc{
			Vertices:  p.NumVertices(),
			Edges:     p.NumEdges(),
			Faces:     p.NumFaces(),
			FaceSizes: p.FaceSizes(),
		}
	case !errors.Is(err, builder.ErrNoRealization):
		return showDoc{}, err
	}
	for _, op := range e.cat.All() {
		if op.CanApplyTo(s) {
			doc.Operations = append(doc.Operations, op.Name())
		}
	}
	return doc, nil
}

func (d showDoc) table(e *env) format.TableBuilder {
	tb := e.table()
	tb.Title(format.TitleName(d.Name))
	tb.Header("Property", "Value")
	tb.Row("kind", d.Kind)
	tb.Row("canonical name", d.Canonical)
	tb.Row("alternate names", format.Dash(strings.Join(d.Alternates, ", ")))
	tb.Row("symmetry", d.Symmetry.Symbol+" ("+d.Symmetry.Name+")")
	tb.Row("order", d.Symmetry.Order)
	tb.Row("group", d.Group)
	tb.Row("conway", format.Dash(d.Conway))
	if d.Johnson > 0 {
		tb.Row("johnson", d.Johnson)
	}
	tb.Row("chiral", format.BoolMark(d.Chiral))
	tb.Row("honeycomb", format.BoolMark(d.Honeycomb))
	if g := d.Geometry; g != nil {
		tb.Row("V / E / F", formatVEF(g.Vertices, g.Edges, g.Faces))
	} else {
		tb.Row("V / E / F", "no realization")
	}
	tb.Row("operations", format.Dash(strings.Join(d.Operations, ", ")))
	tb.Columns(format.ColumnConfig{Number: 2, MaxWidth: 60})
	return tb
}
