// SPDX-License-Identifier: MIT
// Package: polyhedra/atlas
//
// types.go: options, steps and walk results.

package atlas

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/polyhedra/specs"
)

// Option configures a walk. An invalid Option is recorded and surfaced as
// ErrOptionViolation when Walk or Route runs.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding solids at this depth.
	MaxDepth int

	// Operations, if non-empty, restricts the walk to these operation names.
	Operations []string

	// Filter can skip an edge by returning false.
	Filter func(op string, from, to specs.Specs) bool

	Logger *slog.Logger

	err error
}

// DefaultOptions returns the options of a walk over every operation with
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Filter: func(string, specs.Specs, specs.Specs) bool { return true },
		Logger: slog.New(slog.DiscardHandler),
	}
}

func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the number of operations from the start.
//
//	d > 0: expand solids up to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOperations restricts the walk to the named operations. Unknown names
// surface as operations.ErrUnknownOperation when the walk starts.
func WithOperations(names ...string) Option {
	return func(o *Options) {
		if len(names) == 0 {
			o.violate("empty operation list")
			return
		}
		o.Operations = append([]string(nil), names...)
	}
}

// WithFilter skips edges for which fn returns false.
func WithFilter(fn func(op string, from, to specs.Specs) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.violate("nil logger")
			return
		}
		o.Logger = l
	}
}

// Step is one operation applied on the way.
type Step struct {
	Op   string `json:"op" yaml:"op"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// String renders "from -op-> to".
func (s Step) String() string { return fmt.Sprintf("%s -%s-> %s", s.From, s.Op, s.To) }

// Result holds the outcome of a walk:
//   - Order: solids visited, in visit sequence.
//   - Depth: solid name → operations from the start.
//   - Parent: solid name → the step that first reached it.
//   - Specs: solid name → its specs.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]Step
	Specs  map[string]specs.Specs
}

// Reached reports whether the walk visited name.
func (r *Result) Reached(name string) bool {
	_, ok := r.Depth[name]
	return ok
}

// PathTo reconstructs the steps from the start to dest. The start itself
// has an empty path.
//
// Errors:
//   - ErrUnreachable: dest was not reached.
func (r *Result) PathTo(dest string) ([]Step, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	var path []Step
	for cur := dest; ; {
		st, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, st)
		cur = st.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
