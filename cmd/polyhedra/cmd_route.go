// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_route.go: shortest operation route between two solids.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyhedra/atlas"
	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/internal/logging"
)

func newRouteCmd(e *env) *cobra.Command {
	var (
		maxDepth int
		ops      []string
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the fewest operations that turn one solid into another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := e.resolve(args[0])
			if err != nil {
				return err
			}
			to, err := e.resolve(args[1])
			if err != nil {
				return err
			}
			opts := []atlas.Option{
				atlas.WithContext(cmd.Context()),
				atlas.WithMaxDepth(maxDepth),
				atlas.WithLogger(logging.New("atlas")),
			}
			if len(ops) > 0 {
				opts = append(opts, atlas.WithOperations(ops...))
			}
			steps, err := atlas.Route(e.cat, from, to, opts...)
			if err != nil {
				return err
			}
			return e.emit(cmd.OutOrStdout(), steps, func() format.TableBuilder {
				tb := e.table()
				tb.Header("#", "Operation", "From", "To")
				for i, st := range steps {
					tb.Row(i+1, st.Op, format.TitleName(st.From), format.TitleName(st.To))
				}
				return tb
			})
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "give up after this many operations (0 = no limit)")
	cmd.Flags().StringSliceVar(&ops, "ops", nil, "only use these operations")
	return cmd
}
