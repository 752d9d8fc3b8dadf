// SPDX-License-Identifier: MIT
// Package: polyhedra/builder
//
// api.go: the Builder, its memoizing cache and the Realize entry point.
//
// Contract:
//   • Realize returns unit-edge geometry centred near the origin.
//   • Every call returns a fresh copy; the cached instance never escapes.
//   • Concurrent Realize calls for one solid build it once (singleflight),
//     calls for different solids proceed in parallel.

package builder

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Builder realizes Specs values as geometry.
type Builder struct {
	cfg builderConfig

	mu    sync.RWMutex
	cache map[string]*polyhedron.Polyhedron
	group singleflight.Group
}

// New resolves opts into a Builder.
//
// Errors:
//   - ErrOptionViolation: an option received a meaningless value.
func New(opts ...Option) (*Builder, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Builder{cfg: cfg, cache: make(map[string]*polyhedron.Polyhedron)}, nil
}

var defaultBuilder = sync.OnceValue(func() *Builder {
	b, _ := New()
	return b
})

// Default returns the shared Builder with default options.
func Default() *Builder { return defaultBuilder() }

// Realize builds s with the default Builder.
func Realize(s specs.Specs) (*polyhedron.Polyhedron, error) { return Default().Realize(s) }

// Tolerance is the relative construction tolerance.
func (b *Builder) Tolerance() float64 { return b.cfg.tol }

// Realize returns the geometry of s with unit edges.
//
// Errors:
//   - ErrNoRealization: s is nil or names no known solid.
//   - ErrInvalidResult: a composite selection found no valid solid.
func (b *Builder) Realize(s specs.Specs) (*polyhedron.Polyhedron, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil specs", ErrNoRealization)
	}
	key := s.Name()
	b.mu.RLock()
	p, ok := b.cache[key]
	b.mu.RUnlock()
	if ok {
		return p.Clone(), nil
	}
	v, err, _ := b.group.Do(key, func() (any, error) {
		b.cfg.logger.Debug("realization cache miss", "solid", key, "kind", s.Kind())
		p, err := b.build(s)
		if err != nil {
			return nil, err
		}
		b.mu.Lock()
		b.cache[key] = p
		b.mu.Unlock()
		b.cfg.logger.Debug("realized", "solid", key,
			"vertices", p.NumVertices(), "edges", p.NumEdges(), "faces", p.NumFaces())
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*polyhedron.Polyhedron).Clone(), nil
}

// Cached reports how many solids have been realized so far.
func (b *Builder) Cached() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.cache)
}

func (b *Builder) build(s specs.Specs) (*polyhedron.Polyhedron, error) {
	switch v := s.(type) {
	case specs.Classical:
		return b.classical(v)
	case specs.Capstone:
		return b.capstone(v)
	case specs.Composite:
		return b.composite(v)
	case specs.Elementary:
		return b.elementary(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoRealization, s.Name())
}

// hull recovers the faces of points, wrapping failures with the solid name.
func (b *Builder) hull(name string, points []geom.Vec) (*polyhedron.Polyhedron, error) {
	p, err := polyhedron.FromPoints(points, b.cfg.tol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidResult, name, err)
	}
	return p, nil
}
