// SPDX-License-Identifier: MIT
// Package: polyhedra/atlas
//
// atlas.go: breadth-first walk over catalogue operations.

package atlas

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polyhedra/operations"
	"github.com/katalvlaran/polyhedra/specs"
)

// queueItem pairs a solid with its depth.
type queueItem struct {
	s     specs.Specs
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	ops   []*operations.Operation
	opts  Options
	ctx   context.Context
	goal  string
	queue []queueItem
	res   *Result
}

func newWalker(cat *operations.Catalogue, start specs.Specs, opts []Option) (*walker, error) {
	if cat == nil {
		return nil, ErrCatalogueNil
	}
	if start == nil {
		return nil, ErrStartNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	ops := cat.All()
	if len(o.Operations) > 0 {
		ops = ops[:0]
		for _, name := range o.Operations {
			op, err := cat.Get(name)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}
	return &walker{
		ops:  ops,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]Step),
			Specs:  make(map[string]specs.Specs),
		},
	}, nil
}

// Walk explores every solid reachable from start.
//
// Errors:
//   - ErrCatalogueNil, ErrStartNil: nil inputs.
//   - ErrOptionViolation: an invalid option.
//   - operations.ErrUnknownOperation: WithOperations named no such operation.
//   - the context error when cancelled; the partial result is returned.
func Walk(cat *operations.Catalogue, start specs.Specs, opts ...Option) (*Result, error) {
	w, err := newWalker(cat, start, opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(start.Unwrap(), 0, nil)
	return w.res, w.loop()
}

// Route returns one shortest operation sequence from one solid to another;
// an empty slice when they are the same solid.
//
// Errors:
//   - ErrUnreachable: to cannot be reached within the limits.
//   - every error of Walk.
func Route(cat *operations.Catalogue, from, to specs.Specs, opts ...Option) ([]Step, error) {
	if to == nil {
		return nil, ErrStartNil
	}
	w, err := newWalker(cat, from, opts)
	if err != nil {
		return nil, err
	}
	w.goal = to.Unwrap().Name()
	w.enqueue(from.Unwrap(), 0, nil)
	if err := w.loop(); err != nil {
		return nil, err
	}
	steps, err := w.res.PathTo(w.goal)
	if err != nil {
		return nil, fmt.Errorf("%w from %q", err, from.Name())
	}
	return steps, nil
}

// enqueue marks s visited at depth d and records the step that reached it.
func (w *walker) enqueue(s specs.Specs, d int, via *Step) {
	name := s.Name()
	w.res.Depth[name] = d
	w.res.Specs[name] = s
	if via != nil {
		w.res.Parent[name] = *via
	}
	w.queue = append(w.queue, queueItem{s: s, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		name := item.s.Name()
		w.res.Order = append(w.res.Order, name)
		if name == w.goal {
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues every unseen target of every operation from item.
func (w *walker) expand(item queueItem) {
	n := 0
	for _, op := range w.ops {
		for _, t := range op.Targets(item.s) {
			if _, seen := w.res.Depth[t.Name()]; seen {
				continue
			}
			if !w.opts.Filter(op.Name(), item.s, t) {
				continue
			}
			w.enqueue(t, item.depth+1, &Step{Op: op.Name(), From: item.s.Name(), To: t.Name()})
			n++
		}
	}
	w.opts.Logger.Debug("atlas expand", "solid", item.s.Name(), "depth", item.depth, "new", n)
}
