// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// catalogue.go: the named operations, built once over one universe.

package operations

import (
	"fmt"
	"sync"
)

// Catalogue holds the named operations in menu order. It is immutable
// after construction and safe for concurrent use.
type Catalogue struct {
	ops    []*Operation
	byName map[string]*Operation
}

// NewCatalogue enumerates every graph and composes the operations.
//
// Errors:
//   - ErrOptionViolation: an option received a meaningless value.
func NewCatalogue(opts ...Option) (*Catalogue, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	pair := func(d PairDef) *Pair { return newPair(d, cfg) }

	var (
		truncate    = pair(truncateDef)
		amboTrunc   = pair(amboTruncateDef)
		augTrunc    = pair(augmentedTruncateDef)
		rectify     = pair(rectifyDef)
		amboRectify = pair(amboRectifyDef)
		dual        = pair(dualDef)
		prismDual   = pair(prismDualDef)
		expand      = pair(expandDef)
		semiExpand  = pair(semiExpandDef)
		prismExpand = pair(prismExpandDef)
		snub        = pair(snubDef)
		twist       = pair(twistDef)
		elongate    = pair(elongateDef)
		gyroelong   = pair(gyroelongateDef)
		turn        = pair(turnDef)
		double      = pair(doubleDef)
		increment   = pair(incrementDef)
		capAug      = pair(capstoneAugmentDef)
		compAug     = pair(compositeAugmentDef)
		dimAug      = pair(diminishedAugmentDef)
		gyrAug      = pair(gyrateAugmentDef)
		elemAug     = pair(elementaryAugmentDef)
		capGyr      = pair(capstoneGyrateDef)
		cantGyr     = pair(cantellatedGyrateDef)
	)

	c := &Catalogue{byName: make(map[string]*Operation)}
	for _, op := range []*Operation{
		CombineOps("truncate", Sub{truncate, Right}, Sub{amboTrunc, Right}, Sub{augTrunc, Right}),
		CombineOps("sharpen", Sub{truncate, Left}, Sub{amboTrunc, Left}, Sub{augTrunc, Left},
			Sub{rectify, Left}, Sub{amboRectify, Left}),
		CombineOps("rectify", Sub{rectify, Right}, Sub{amboRectify, Right}),
		CombineOps("dual", Sub{dual, Right}, Sub{dual, Left}, Sub{prismDual, Right}, Sub{prismDual, Left}),
		CombineOps("expand", Sub{expand, Right}, Sub{semiExpand, Right}, Sub{prismExpand, Right}),
		CombineOps("contract", Sub{expand, Left}, Sub{semiExpand, Left}, Sub{prismExpand, Left}),
		CombineOps("snub", Sub{snub, Right}),
		CombineOps("twist", Sub{twist, Right}, Sub{twist, Left}),
		CombineOps("elongate", Sub{elongate, Right}),
		CombineOps("gyroelongate", Sub{gyroelong, Right}),
		CombineOps("shorten", Sub{elongate, Left}, Sub{gyroelong, Left}),
		CombineOps("turn", Sub{turn, Right}, Sub{turn, Left}),
		CombineOps("double", Sub{double, Right}),
		CombineOps("halve", Sub{double, Left}),
		CombineOps("increment", Sub{increment, Right}),
		CombineOps("decrement", Sub{increment, Left}),
		CombineOps("augment", Sub{capAug, Right}, Sub{compAug, Right}, Sub{dimAug, Right},
			Sub{gyrAug, Right}, Sub{elemAug, Right}),
		CombineOps("diminish", Sub{capAug, Left}, Sub{compAug, Left}, Sub{dimAug, Left},
			Sub{gyrAug, Left}, Sub{elemAug, Left}),
		CombineOps("gyrate", Sub{capGyr, Right}, Sub{capGyr, Left}, Sub{cantGyr, Right}, Sub{cantGyr, Left}),
	} {
		c.ops = append(c.ops, op)
		c.byName[op.Name()] = op
		cfg.logger.Debug("operation", "name", op.Name(), "entries", len(op.Graph()))
	}
	return c, nil
}

var defaultCatalogue = sync.OnceValue(func() *Catalogue {
	c, _ := NewCatalogue()
	return c
})

// Default returns the shared catalogue with default options.
func Default() *Catalogue { return defaultCatalogue() }

// Get returns the operation called name.
//
// Errors:
//   - ErrUnknownOperation: no such operation.
func (c *Catalogue) Get(name string) (*Operation, error) {
	op, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// All returns the operations in menu order.
func (c *Catalogue) All() []*Operation { return append([]*Operation(nil), c.ops...) }

// Names returns the operation names in menu order.
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Name()
	}
	return out
}
