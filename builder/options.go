// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • A meaningless value does not panic; it is recorded in the config and
//     New returns it wrapped in ErrOptionViolation.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"log/slog"
)

// Option customizes a Builder.
type Option func(*builderConfig)

// WithLogger routes debug records (cache misses, composite selections) to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *builderConfig) {
		if l == nil {
			c.violate("WithLogger(nil)")
			return
		}
		c.logger = l
	}
}

// WithTolerance sets the construction tolerance, relative to the edge
// length, used for hull recovery and vertex merging. It must lie in
// (0, maxTolerance].
func WithTolerance(tol float64) Option {
	return func(c *builderConfig) {
		if !(tol > 0) || tol > maxTolerance {
			c.violate(fmt.Sprintf("WithTolerance(%g)", tol))
			return
		}
		c.tol = tol
	}
}
