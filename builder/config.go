// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • tol    = defaultTolerance (1e-6 of the edge length)
//   • logger = discard
//
// builderConfig is resolved once by New and never changes afterwards.

package builder

import (
	"fmt"
	"log/slog"
)

const (
	defaultTolerance = 1e-6
	maxTolerance     = 1e-2
)

// builderConfig aggregates the knobs of a Builder.
type builderConfig struct {
	tol    float64
	logger *slog.Logger

	// err holds the first option violation.
	err error
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		tol:    defaultTolerance,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c *builderConfig) violate(what string) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrOptionViolation, what)
	}
}
