// SPDX-License-Identifier: MIT
// Package: polyhedra/cmd/polyhedra
//
// cmd_verify.go: catalogue self-checks, one worker per operation.

package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/internal/format"
	"github.com/katalvlaran/polyhedra/internal/logging"
	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

type verifyRow struct {
	Operation  string   `yaml:"operation"`
	Entries    int      `yaml:"entries"`
	Solids     int      `yaml:"solids"`
	Unrealized int      `yaml:"unrealized"`
	Applied    int      `yaml:"applied,omitempty"`
	Problems   []string `yaml:"problems,omitempty"`
}

func newVerifyCmd(e *env) *cobra.Command {
	var (
		parallel int
		apply    bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every operation graph: round trips, realizations and, with --apply, results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be positive, got %d", parallel)
			}
			rows, err := e.verify(cmd.Context(), parallel, apply)
			if err != nil {
				return err
			}
			problems := 0
			for _, r := range rows {
				problems += len(r.Problems)
			}
			if err := e.emit(cmd.OutOrStdout(), rows, func() format.TableBuilder {
				tb := e.table()
				tb.Header("Operation", "Entries", "Solids", "Unrealized", "Applied", "Problems")
				for _, r := range rows {
					tb.Row(r.Operation, r.Entries, r.Solids, r.Unrealized, r.Applied, len(r.Problems))
				}
				tb.Columns(
					format.ColumnConfig{Number: 2, Align: format.AlignRight},
					format.ColumnConfig{Number: 3, Align: format.AlignRight},
					format.ColumnConfig{Number: 4, Align: format.AlignRight},
					format.ColumnConfig{Number: 5, Align: format.AlignRight},
					format.ColumnConfig{Number: 6, Align: format.AlignRight},
				)
				return tb
			}); err != nil {
				return err
			}
			if problems > 0 {
				return fmt.Errorf("verify: %d problems", problems)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "operations checked concurrently")
	cmd.Flags().BoolVar(&apply, "apply", false, "also apply every operation to every start solid with every option")
	return cmd
}

// verify checks each operation in its own worker; rows keep menu order.
func (e *env) verify(ctx context.Context, parallel int, apply bool) ([]verifyRow, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ops := e.cat.All()
	rows := make([]verifyRow, len(ops))
	log := logging.New("verify")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, op := range ops {
		g.Go(func() error {
			row, err := e.verifyOp(gctx, op, apply)
			if err != nil {
				return fmt.Errorf("%s: %w", op.Name(), err)
			}
			for _, p := range row.Problems {
				log.Warn("problem", "op", op.Name(), "detail", p)
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *env) verifyOp(ctx context.Context, op *operations.Operation, apply bool) (verifyRow, error) {
	row := verifyRow{Operation: op.Name()}
	graph := op.Graph()
	row.Entries = len(graph)

	for _, sub := range op.Subs() {
		if sub.Pair.IsCut() {
			continue
		}
		for _, en := range sub.Pair.Graph() {
			to, from := sub.To, sub.To.Opposite()
			back, err := sub.Pair.Opposite(from, en.Spec(to), en.Options(to))
			switch {
			case errors.Is(err, operations.ErrAmbiguousEntry):
			case err != nil:
				row.Problems = append(row.Problems, fmt.Sprintf("%s: %s has no way back: %v", sub.Pair.Name(), en.Spec(to).Name(), err))
			case !back.Equals(en.Spec(from)):
				row.Problems = append(row.Problems, fmt.Sprintf("%s: %s leads back to %s, want %s",
					sub.Pair.Name(), en.Spec(to).Name(), back.Name(), en.Spec(from).Name()))
			}
		}
	}

	isStart := make(map[string]bool)
	for _, en := range graph {
		isStart[en.Left.Name()] = true
	}
	seen := make(map[string]bool)
	var starts []forme.Forme
	for _, en := range graph {
		for _, s := range []specs.Specs{en.Left, en.Right} {
			if err := ctx.Err(); err != nil {
				return row, err
			}
			if seen[s.Name()] {
				continue
			}
			seen[s.Name()] = true
			row.Solids++
			p, err := e.b.Realize(s)
			if errors.Is(err, builder.ErrNoRealization) {
				row.Unrealized++
				continue
			}
			if err == nil {
				err = polyhedron.Validate(p, geom.Precision)
			}
			if err != nil {
				row.Problems = append(row.Problems, fmt.Sprintf("%s: %v", s.Name(), err))
				continue
			}
			if isStart[s.Name()] {
				if f, err := forme.CreateForme(s, p); err == nil {
					starts = append(starts, f)
				}
			}
		}
	}
	if !apply {
		return row, nil
	}
	for _, f := range starts {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		targets := make(map[string]bool)
		for _, t := range op.Targets(f.Specs()) {
			targets[t.Name()] = false
		}
		for _, opts := range op.AllOptionCombos(f) {
			row.Applied++
			res, err := op.Apply(f, opts)
			if err != nil {
				row.Problems = append(row.Problems, fmt.Sprintf("apply to %s with %s: %v", f.Specs().Name(), opts.GraphOptions, err))
				continue
			}
			if _, ok := targets[res.Specs.Name()]; !ok {
				row.Problems = append(row.Problems, fmt.Sprintf("apply to %s gave %s, not a listed target", f.Specs().Name(), res.Specs.Name()))
			}
			targets[res.Specs.Name()] = true
			if err := polyhedron.Validate(res.Forme.Geom(), geom.Precision); err != nil {
				row.Problems = append(row.Problems, fmt.Sprintf("apply to %s gave invalid %s: %v", f.Specs().Name(), res.Specs.Name(), err))
			}
		}
		for _, t := range op.Targets(f.Specs()) {
			if !targets[t.Name()] {
				row.Problems = append(row.Problems, fmt.Sprintf("%s never reaches %s", f.Specs().Name(), t.Name()))
			}
		}
	}
	return row, nil
}
