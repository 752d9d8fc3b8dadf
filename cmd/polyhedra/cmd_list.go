// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_list.go: the enumeration as a table.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/specs"
)

type listRow struct {
	Name      string `yaml:"name"`
	Canonical string `yaml:"canonical"`
	Kind      string `yaml:"kind"`
	Symmetry  string `yaml:"symmetry"`
	Group     string `yaml:"group"`
	Conway    string `yaml:"conway,omitempty"`
}

func newListCmd(e *env) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every solid with its symmetry, group and Conway symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kind != "" && !validKind(specs.Kind(kind)) {
				return fmt.Errorf("unknown kind %q", kind)
			}
			var rows []listRow
			for _, s := range e.u.All() {
				if kind != "" && s.Kind() != specs.Kind(kind) {
					continue
				}
				rows = append(rows, listRow{
					Name:      s.Name(),
					Canonical: s.CanonicalName(),
					Kind:      string(s.Kind()),
					Symmetry:  s.Symmetry().SymbolStr(),
					Group:     s.Group(),
					Conway:    s.ConwaySymbol(),
				})
			}
			return e.emit(cmd.OutOrStdout(), rows, func() format.TableBuilder {
				tb := e.table()
				tb.Header("Name", "Canonical", "Symmetry", "Group", "Conway")
				for _, r := range rows {
					canonical := ""
					if r.Canonical != r.Name {
						canonical = format.TitleName(r.Canonical)
					}
					tb.Row(format.TitleName(r.Name), format.Dash(canonical), r.Symmetry, r.Group, format.Dash(r.Conway))
				}
				tb.Footer("", "", "", "total", len(rows))
				return tb
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only classical, capstone, composite or elementary solids")
	return cmd
}

func validKind(k specs.Kind) bool {
	switch k {
	case specs.KindClassical, specs.KindCapstone, specs.KindComposite, specs.KindElementary:
		return true
	}
	return false
}
