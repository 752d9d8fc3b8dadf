// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_tables.go: the classical and capstone catalogue tables.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/specs"
)

// catalogueTable is one table as a YAML document.
type catalogueTable struct {
	Title   string     `yaml:"title"`
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

func newTablesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the classical solids by operation and family, and the capstones by base and elongation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables := []catalogueTable{classicalTable(e.u), capstoneTable(e.u), prismTable(e.u)}
			if e.output == "yaml" {
				return e.emit(cmd.OutOrStdout(), tables, nil)
			}
			w := cmd.OutOrStdout()
			for _, t := range tables {
				if err := e.emit(w, t, t.render(e)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (t catalogueTable) render(e *env) func() format.TableBuilder {
	return func() format.TableBuilder {
		tb := e.table()
		tb.Title(t.Title)
		tb.Header(t.Columns...)
		for _, r := range t.Rows {
			vals := make([]any, len(r))
			for i, c := range r {
				vals[i] = c
			}
			tb.Row(vals...)
		}
		return tb
	}
}

// cell joins the names of ss, title-cased, or "-" when empty.
func cell(ss []string) string {
	for i, s := range ss {
		ss[i] = format.TitleName(s)
	}
	return format.Dash(strings.Join(ss, " / "))
}

func classicalTable(u *specs.Universe) catalogueTable {
	t := catalogueTable{Title: "Platonic and Archimedean solids", Columns: []string{"Operation"}}
	for _, f := range specs.Families {
		t.Columns = append(t.Columns, familyName(f))
	}
	for _, op := range specs.Operations {
		row := []string{string(op)}
		for _, f := range specs.Families {
			var names []string
			for _, c := range u.Classical.Where(func(c specs.Classical) bool {
				return c.Family == f && c.Operation == op && c.Twist != specs.Right
			}) {
				names = appendUnique(names, c.CanonicalName())
			}
			row = append(row, cell(names))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// capstoneTable lists every single-cap solid by elongation.
func capstoneTable(u *specs.Universe) catalogueTable {
	t := catalogueTable{Title: "Pyramids, cupolae and rotundae", Columns: []string{"Base"}}
	for _, el := range specs.Elongations {
		t.Columns = append(t.Columns, string(el))
	}
	type key struct {
		typ     specs.PolygonType
		base    int
		rotunda int
	}
	var order []key
	cells := make(map[key]map[specs.Elongation][]string)
	for _, c := range u.Capstone.Where(func(c specs.Capstone) bool { return c.Count == 1 }) {
		k := key{c.Type, c.Base, c.RotundaCount}
		if cells[k] == nil {
			cells[k] = make(map[specs.Elongation][]string)
			order = append(order, k)
		}
		cells[k][c.Elongation] = appendUnique(cells[k][c.Elongation], c.Name())
	}
	for _, k := range order {
		capName := "cupola"
		switch {
		case k.typ == specs.Primary:
			capName = "pyramid"
		case k.rotunda > 0:
			capName = "rotunda"
		}
		row := []string{fmt.Sprintf("%d %s", k.base, capName)}
		for _, el := range specs.Elongations {
			row = append(row, cell(cells[k][el]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func prismTable(u *specs.Universe) catalogueTable {
	t := catalogueTable{Title: "Prisms and antiprisms", Columns: []string{"Base", "prism", "antiprism"}}
	rows := make(map[int][]string)
	var bases []int
	for _, c := range u.Capstone.Where(func(c specs.Capstone) bool { return c.Count == 0 }) {
		n := c.BaseSides()
		if rows[n] == nil {
			rows[n] = []string{fmt.Sprint(n), "-", "-"}
			bases = append(bases, n)
		}
		col := 1
		if c.Elongation == specs.Antiprism {
			col = 2
		}
		rows[n][col] = format.TitleName(c.Name())
	}
	sort.Ints(bases)
	for _, n := range bases {
		t.Rows = append(t.Rows, rows[n])
	}
	return t
}

func familyName(f specs.Family) string {
	switch f {
	case 3:
		return "tetrahedral"
	case 4:
		return "octahedral"
	default:
		return "icosahedral"
	}
}

func appendUnique(xs []string, x string) []string {
	for _, y := range xs {
		if y == x {
			return xs
		}
	}
	return append(xs, x)
}
