// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// operation.go: a named, user-facing operation over the union of several
// pair directions.
//
// Sub-operations are scanned in declaration order and the first that
// accepts the solid and options wins, so more specific graphs come first.
// Cut/paste sub-operations keep scanning while their candidates match no
// declared result. An entry whose result is listed only under an alternate
// name of another result from the same start is left out, so every
// remaining target is reachable.
//
// Cut/paste option records are found by applying every move and keeping
// the ones whose result is the declared target. The records for the last
// forme asked about are kept.

package operations

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// Selection is what an operation picks on the start geometry.
type Selection string

// Selections.
const (
	SelectNone Selection = ""
	SelectFace Selection = "face"
	SelectCap  Selection = "cap"
	// SelectTurn picks a cap to turn; pyramids never qualify.
	SelectTurn Selection = "turn"
)

// SelectionState tags a face for highlighting.
type SelectionState string

// Selection states.
const (
	Undefined  SelectionState = ""
	Selectable SelectionState = "selectable"
	Selected   SelectionState = "selected"
)

// Sub is one pair walked in one direction.
type Sub struct {
	Pair *Pair
	To   Side
}

// Operation is a named union of sub-operations.
type Operation struct {
	name   string
	subs   []Sub
	logger *slog.Logger

	mu   sync.Mutex
	last comboCache
}

type comboCache struct {
	p      *polyhedron.Polyhedron
	s      specs.Specs
	combos []Options
}

// CombineOps unions subs under name. Nil pairs are skipped.
func CombineOps(name string, subs ...Sub) *Operation {
	op := &Operation{name: name, logger: slog.New(slog.DiscardHandler)}
	for _, s := range subs {
		if s.Pair == nil {
			continue
		}
		if len(op.subs) == 0 {
			op.logger = s.Pair.cfg.logger
		}
		op.subs = append(op.subs, s)
	}
	return op
}

// Name returns the operation name.
func (o *Operation) Name() string { return o.name }

// Subs returns the sub-operations in scan order.
func (o *Operation) Subs() []Sub { return append([]Sub(nil), o.subs...) }

// Selection is what the operation picks: a face, a cap, a cap to turn, or
// nothing.
func (o *Operation) Selection() Selection {
	if len(o.subs) == 0 {
		return SelectNone
	}
	return o.subs[0].Pair.Selection(o.subs[0].To)
}

// Graph concatenates the sub-operation graphs, each entry oriented from
// the start solid to the result.
func (o *Operation) Graph() []Entry {
	var out []Entry
	for _, s := range o.subs {
		for _, e := range s.Pair.Graph() {
			if s.To == Left {
				e = Entry{Left: e.Right, Right: e.Left, LeftOptions: e.RightOptions, RightOptions: e.LeftOptions}
			}
			out = append(out, e)
		}
	}
	return out
}

func (o *Operation) applicable(s specs.Specs) []Sub {
	var out []Sub
	for _, sub := range o.subs {
		if sub.Pair.CanApplyTo(sub.To, s) {
			out = append(out, sub)
		}
	}
	return out
}

// CanApplyTo reports whether any sub-operation starts from s.
func (o *Operation) CanApplyTo(s specs.Specs) bool { return len(o.applicable(s)) > 0 }

// subEntry is an entry of sub, oriented by sub.To.
type subEntry struct {
	sub Sub
	e   Entry
}

func (x subEntry) target() specs.Specs { return x.e.Spec(x.sub.To) }

func (x subEntry) start() GraphOptions { return x.e.Options(x.sub.To.Opposite()) }

// entries lists the entries from s in scan order, leaving out those whose
// target aliasedTargets names.
func (o *Operation) entries(s specs.Specs) []subEntry {
	all := o.allEntries(s)
	skip := aliasedTargets(all)
	out := all[:0]
	for _, x := range all {
		if !skip[x.target().Name()] {
			out = append(out, x)
		}
	}
	return out
}

func (o *Operation) allEntries(s specs.Specs) []subEntry {
	var all []subEntry
	for _, sub := range o.applicable(s) {
		for _, e := range sub.Pair.Entries(sub.To, s) {
			all = append(all, subEntry{sub: sub, e: e})
		}
	}
	return all
}

// aliasedTargets names the targets of all that are alternate names of
// another target carrying its own canonical name. Both are one solid and
// identification by congruence cannot tell them apart.
func aliasedTargets(all []subEntry) map[string]bool {
	canonical := make(map[string]bool)
	for _, x := range all {
		if t := x.target(); !specs.IsAlternateName(t.Name()) {
			canonical[t.CanonicalName()] = true
		}
	}
	out := make(map[string]bool)
	for _, x := range all {
		if t := x.target(); specs.IsAlternateName(t.Name()) && canonical[t.CanonicalName()] {
			out[t.Name()] = true
		}
	}
	return out
}

func (o *Operation) skipped(s specs.Specs) map[string]bool { return aliasedTargets(o.allEntries(s)) }

// Targets lists the distinct solids reachable from s, in scan order.
func (o *Operation) Targets(s specs.Specs) []specs.Specs {
	seen := make(map[string]bool)
	var out []specs.Specs
	for _, x := range o.entries(s) {
		if t := x.target(); !seen[t.Name()] {
			seen[t.Name()] = true
			out = append(out, t)
		}
	}
	return out
}

// HasOptions reports whether applying to s involves a choice: declared
// options or a face or cap to pick.
func (o *Operation) HasOptions(s specs.Specs) bool {
	if !o.CanApplyTo(s) {
		return false
	}
	if o.Selection() != SelectNone {
		return true
	}
	for _, x := range o.entries(s) {
		if !x.start().IsZero() {
			return true
		}
	}
	return false
}

// AllOptions lists the distinct declared start options for s.
func (o *Operation) AllOptions(s specs.Specs) []GraphOptions {
	seen := make(map[GraphOptions]bool)
	var out []GraphOptions
	for _, x := range o.entries(s) {
		if g := x.start(); !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// AllOptionCombos enumerates every option record that applies to f. A
// symbolic entry contributes its declared start options. A cut/paste entry
// contributes one record per face or cap whose edit yields its target,
// carrying that entry's options.
func (o *Operation) AllOptionCombos(f forme.Forme) []Options {
	var out []Options
	seen := make(map[GraphOptions]bool)
	for _, x := range o.entries(f.Specs()) {
		if g := x.start(); !x.sub.Pair.IsCut() && !seen[g] {
			seen[g] = true
			out = append(out, Options{GraphOptions: g})
		}
	}
	return append(out, o.cutCombos(f)...)
}

// eligibleFaces is the set of faces some record selects.
func (o *Operation) eligibleFaces(f forme.Forme) map[int]bool {
	out := make(map[int]bool)
	for _, c := range o.cutCombos(f) {
		if c.HasFace() {
			out[c.Face.Index()] = true
		}
	}
	return out
}

func (o *Operation) eligibleCaps(f forme.Forme) []polyhedron.Cap {
	var out []polyhedron.Cap
	for _, c := range o.cutCombos(f) {
		if !c.HasCap() {
			continue
		}
		dup := false
		for _, cp := range out {
			dup = dup || cp.Equals(c.Cap)
		}
		if !dup {
			out = append(out, c.Cap)
		}
	}
	return out
}

// pickCombo is the record for the face or cap sel accepts that is closest
// to current: one current matches, else one with the same cap type, else
// the first.
func (o *Operation) pickCombo(f forme.Forme, current Options, sel func(Options) bool) (Options, bool) {
	var first, sameType *Options
	for _, c := range o.cutCombos(f) {
		if !sel(c) {
			continue
		}
		c := c
		if current.GraphOptions.Matches(c.GraphOptions) {
			return c, true
		}
		if first == nil {
			first = &c
		}
		if sameType == nil && current.Using != "" && c.Using == current.Using {
			sameType = &c
		}
	}
	switch {
	case sameType != nil:
		return *sameType, true
	case first != nil:
		return *first, true
	}
	return Options{}, false
}

func (o *Operation) usesFacet(s specs.Specs) bool {
	for _, g := range o.AllOptions(s) {
		if g.Facet != "" {
			return true
		}
	}
	return false
}

// HitOption returns the record a pick at point selects. For cut/paste
// operations that is the face or cap under it, with the options that make
// its edit legal (the gyration and alignment follow from the pick). For
// others it is current with the facet of the face under it. A pick that
// selects nothing returns current unchanged.
func (o *Operation) HitOption(f forme.Forme, point geom.Vec, current Options) Options {
	p := f.Geom()
	switch o.Selection() {
	case SelectFace:
		if face, ok := p.HitFace(point); ok {
			if c, ok := o.pickCombo(f, current, func(c Options) bool {
				return c.HasFace() && c.Face.Index() == face.Index()
			}); ok {
				return c
			}
		}
	case SelectCap, SelectTurn:
		if cp, ok := p.HitCap(o.eligibleCaps(f), point); ok {
			if c, ok := o.pickCombo(f, current, func(c Options) bool {
				return c.HasCap() && c.Cap.Equals(cp)
			}); ok {
				return c
			}
		}
	default:
		c, ok := f.(*forme.ClassicalForme)
		if !ok || !o.usesFacet(f.Specs()) {
			return current
		}
		if face, ok := p.HitFace(point); ok {
			if facet, ok := c.FacetOf(face.Index()); ok {
				current.Facet = facet
			}
		}
	}
	return current
}

// FaceSelectionStates tags every face of f as selected, selectable or
// undefined under opts.
func (o *Operation) FaceSelectionStates(f forme.Forme, opts Options) []SelectionState {
	p := f.Geom()
	out := make([]SelectionState, p.NumFaces())
	switch o.Selection() {
	case SelectFace:
		for i := range o.eligibleFaces(f) {
			out[i] = Selectable
		}
		if opts.HasFace() && opts.Face.Polyhedron() == p {
			out[opts.Face.Index()] = Selected
		}
	case SelectCap, SelectTurn:
		for _, cp := range o.eligibleCaps(f) {
			for _, face := range cp.Faces() {
				out[face.Index()] = Selectable
			}
		}
		if opts.HasCap() && opts.Cap.Polyhedron() == p {
			for _, face := range opts.Cap.Faces() {
				out[face.Index()] = Selected
			}
		}
	default:
		c, ok := f.(*forme.ClassicalForme)
		if !ok || !o.usesFacet(f.Specs()) {
			return out
		}
		for i := range out {
			facet, ok := c.FacetOf(i)
			switch {
			case !ok:
			case facet == opts.Facet:
				out[i] = Selected
			default:
				out[i] = Selectable
			}
		}
	}
	return out
}

// DefaultOptions is the first declared option set for s, preferring gyro
// over ortho when both are offered.
func (o *Operation) DefaultOptions(s specs.Specs) GraphOptions {
	all := o.AllOptions(s)
	if len(all) == 0 {
		return GraphOptions{}
	}
	d := all[0]
	if d.Gyrate == specs.Ortho {
		alt := d
		alt.Gyrate = specs.Gyro
		for _, g := range all {
			if g == alt {
				return g
			}
		}
	}
	return d
}

// Apply runs the operation on f.
//
// Errors:
//   - ErrNotApplicable: no sub-operation starts from f's solid. The error
//     wraps ErrNoEntry as well.
//   - ErrNoEntry, ErrUnrecognizedResult: the last failure after every
//     applicable sub-operation was tried.
//   - other errors from Pair.Apply are returned at once.
func (o *Operation) Apply(f forme.Forme, opts Options) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil forme", ErrInvalidOption)
	}
	subs := o.applicable(f.Specs())
	if len(subs) == 0 {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrNotApplicable, o.name, noEntry(f.Specs(), opts.GraphOptions))
	}
	skip := o.skipped(f.Specs())
	var last error
	for _, sub := range subs {
		res, err := sub.Pair.apply(sub.To, f, opts, skip)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrNoEntry) && !errors.Is(err, ErrUnrecognizedResult) {
			return Result{}, err
		}
		o.logger.Debug("sub-operation declined", "operation", o.name, "pair", sub.Pair.Name(), "err", err)
		last = err
	}
	return Result{}, last
}
