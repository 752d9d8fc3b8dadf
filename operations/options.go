// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// options.go: functional options for NewCatalogue and NewPair.
//
// Defaults:
//   • logger  = discard
//   • builder = builder.Default()
//
// A meaningless value is recorded and returned from the constructor
// wrapped in ErrOptionViolation; later options override earlier ones.

package operations

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/polyhedra/builder"
	"github.com/katalvlaran/polyhedra/specs"
)

// Option customizes a Catalogue or a Pair.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	builder  *builder.Builder
	universe *specs.Universe

	err error
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   slog.New(slog.DiscardHandler),
		builder:  builder.Default(),
		universe: specs.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c *config) violate(what string) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrOptionViolation, what)
	}
}

// WithLogger routes debug records (graph sizes, apply start and finish,
// cut/paste identification) to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			c.violate("WithLogger(nil)")
			return
		}
		c.logger = l
	}
}

// WithBuilder realizes results with b instead of the shared builder.
func WithBuilder(b *builder.Builder) Option {
	return func(c *config) {
		if b == nil {
			c.violate("WithBuilder(nil)")
			return
		}
		c.builder = b
	}
}

// WithUniverse enumerates graphs over u instead of specs.Default().
func WithUniverse(u *specs.Universe) Option {
	return func(c *config) {
		if u == nil {
			c.violate("WithUniverse(nil)")
			return
		}
		c.universe = u
	}
}
