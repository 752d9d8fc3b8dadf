// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// pair.go: one bidirectional graph between two families of solids, and the
// apply step that walks one of its edges.
//
// Contract:
//   • Entry specs are stored unwrapped; lookups unwrap their input.
//   • Every method names the target side; the start is the opposite side
//     and caller options match against the start side's declared options.
//   • A symbolic apply realizes the target, aligns it onto the start by
//     pose, and morphs through one of the two ends or a realized
//     intermediate.
//   • A cut/paste apply edits the start geometry and keeps the first
//     candidate congruent to a matching entry's target.

package operations

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/geom"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/specs"
)

// PoseFunc places f, which stands at side of entry e.
type PoseFunc func(f forme.Forme, side Side, e Entry) (Pose, error)

// MorphDef restricts the faces a morph pairs up. Nil functions mean all
// faces.
type MorphDef struct {
	// Intermediate picks faces of the intermediate solid.
	Intermediate func(forme.Forme) []polyhedron.Face
	// Target picks faces of the end solid being morphed towards.
	Target func(forme.Forme) []polyhedron.Face
}

// PairDef declares a pair.
type PairDef struct {
	Name string
	// Graph enumerates the entries, left to right.
	Graph func(u *specs.Universe) []Entry
	// Middle names the solid the morph passes through: Left or Right, or
	// Middle for a separate intermediate.
	Middle Side
	// Intermediate returns the solid passed through when Middle is Middle.
	Intermediate func(e Entry) (specs.Specs, error)
	// Pose places a forme of the pair; nil uses its centroid, edge length
	// and orientation.
	Pose PoseFunc
	// ToLeft and ToRight shape the morph towards each side.
	ToLeft, ToRight MorphDef
	// Cut, when set, makes the pair a cut/paste pair: apply edits the start
	// geometry instead of realizing the target.
	Cut CutFunc
	// Turn marks a cut/paste pair that turns caps rather than adding or
	// removing them.
	Turn bool
}

// Pair is a resolved PairDef with its entries indexed by side and name.
type Pair struct {
	def     PairDef
	cfg     config
	entries []Entry
	index   map[Side]map[string][]int
}

// NewPair enumerates def.Graph over the configured universe.
//
// Errors:
//   - ErrOptionViolation: an option received a meaningless value.
func NewPair(def PairDef, opts ...Option) (*Pair, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	return newPair(def, cfg), nil
}

func newPair(def PairDef, cfg config) *Pair {
	p := &Pair{
		def:   def,
		cfg:   cfg,
		index: map[Side]map[string][]int{Left: {}, Right: {}},
	}
	var raw []Entry
	if def.Graph != nil {
		raw = def.Graph(cfg.universe)
	}
	for _, e := range raw {
		if e.Left == nil || e.Right == nil {
			continue
		}
		e.Left, e.Right = e.Left.Unwrap(), e.Right.Unwrap()
		i := len(p.entries)
		p.entries = append(p.entries, e)
		for _, side := range []Side{Left, Right} {
			k := e.Spec(side).Name()
			p.index[side][k] = append(p.index[side][k], i)
		}
	}
	cfg.logger.Debug("operation graph", "pair", def.Name, "entries", len(p.entries))
	return p
}

// Name returns the pair name.
func (p *Pair) Name() string { return p.def.Name }

// IsCut reports a cut/paste pair.
func (p *Pair) IsCut() bool { return p.def.Cut != nil }

// Selection is what an apply towards to picks on the start geometry.
func (p *Pair) Selection(to Side) Selection {
	switch {
	case !p.IsCut():
		return SelectNone
	case p.def.Turn:
		return SelectTurn
	case to == Right:
		return SelectFace
	}
	return SelectCap
}

// Graph returns a copy of every entry.
func (p *Pair) Graph() []Entry { return append([]Entry(nil), p.entries...) }

// Entries returns the entries that start from s and lead to side to.
func (p *Pair) Entries(to Side, s specs.Specs) []Entry {
	if s == nil {
		return nil
	}
	from := to.Opposite()
	var out []Entry
	for _, i := range p.index[from][s.Unwrap().Name()] {
		if e := p.entries[i]; e.Spec(from).Equals(s.Unwrap()) {
			out = append(out, e)
		}
	}
	return out
}

// CanApplyTo reports whether any entry starts from s towards to.
func (p *Pair) CanApplyTo(to Side, s specs.Specs) bool { return len(p.Entries(to, s)) > 0 }

// HasOptions reports whether an entry from s declares start options.
func (p *Pair) HasOptions(to Side, s specs.Specs) bool {
	for _, e := range p.Entries(to, s) {
		if !e.Options(to.Opposite()).IsZero() {
			return true
		}
	}
	return false
}

// AllOptions lists the distinct start options of the entries from s, in
// graph order.
func (p *Pair) AllOptions(to Side, s specs.Specs) []GraphOptions {
	seen := make(map[GraphOptions]bool)
	var out []GraphOptions
	for _, e := range p.Entries(to, s) {
		o := e.Options(to.Opposite())
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

// matching returns the entries from s whose start options opts matches,
// leaving out the targets named in skip.
func (p *Pair) matching(to Side, s specs.Specs, opts GraphOptions, skip map[string]bool) []Entry {
	var out []Entry
	for _, e := range p.Entries(to, s) {
		if opts.Matches(e.Options(to.Opposite())) && !skip[e.Spec(to).Name()] {
			out = append(out, e)
		}
	}
	return out
}

// FindEntry returns the entry from s to side to that opts selects.
//
// Errors:
//   - ErrNoEntry: nothing matches.
//   - ErrAmbiguousEntry: matches lead to different solids.
func (p *Pair) FindEntry(to Side, s specs.Specs, opts GraphOptions) (Entry, error) {
	return p.findEntry(to, s, opts, nil)
}

func (p *Pair) findEntry(to Side, s specs.Specs, opts GraphOptions, skip map[string]bool) (Entry, error) {
	if s == nil {
		return Entry{}, fmt.Errorf("%w: nil specs", ErrNoEntry)
	}
	found := p.matching(to, s, opts, skip)
	if len(found) == 0 {
		return Entry{}, noEntry(s, opts)
	}
	for _, e := range found[1:] {
		if !e.Spec(to).Equals(found[0].Spec(to)) {
			return Entry{}, fmt.Errorf("%w: %s with options %s leads to %s and %s",
				ErrAmbiguousEntry, s.Name(), opts, found[0].Spec(to).Name(), e.Spec(to).Name())
		}
	}
	return found[0], nil
}

// Opposite returns the solid reached from s towards to.
func (p *Pair) Opposite(to Side, s specs.Specs, opts GraphOptions) (specs.Specs, error) {
	e, err := p.FindEntry(to, s, opts)
	if err != nil {
		return nil, err
	}
	return e.Spec(to), nil
}

func noEntry(s specs.Specs, opts GraphOptions) error {
	return fmt.Errorf("%w: Could not find matching graph entry for %s with options %s", ErrNoEntry, s.Name(), opts)
}

// Apply walks an edge of the pair from f towards to.
//
// Errors:
//   - ErrNoEntry, ErrAmbiguousEntry: see FindEntry.
//   - ErrInvalidOption: a face or cap of another polyhedron.
//   - ErrUnrecognizedResult: no cut/paste candidate matched a target.
//   - builder and geom errors from realization and alignment.
func (p *Pair) Apply(to Side, f forme.Forme, opts Options) (Result, error) {
	return p.apply(to, f, opts, nil)
}

// apply is Apply with the entries leading to the names in skip left out.
func (p *Pair) apply(to Side, f forme.Forme, opts Options, skip map[string]bool) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil forme", ErrInvalidOption)
	}
	if err := checkSelection(f, opts); err != nil {
		return Result{}, err
	}
	p.cfg.logger.Debug("apply", "pair", p.def.Name, "to", to, "solid", f.Specs().Name(), "options", opts.GraphOptions.String())
	var (
		res Result
		err error
	)
	if p.IsCut() {
		res, err = p.applyCut(to, f, opts, skip)
	} else {
		res, err = p.applySymbolic(to, f, opts, skip)
	}
	if err != nil {
		p.cfg.logger.Debug("apply failed", "pair", p.def.Name, "solid", f.Specs().Name(), "err", err)
		return Result{}, err
	}
	p.cfg.logger.Debug("applied", "pair", p.def.Name, "solid", f.Specs().Name(), "result", res.Specs.Name())
	return res, nil
}

func checkSelection(f forme.Forme, opts Options) error {
	if opts.HasFace() && opts.Face.Polyhedron() != f.Geom() {
		return fmt.Errorf("%w: face %d belongs to another polyhedron", ErrInvalidOption, opts.Face.Index())
	}
	if opts.HasCap() && opts.Cap.Polyhedron() != f.Geom() {
		return fmt.Errorf("%w: %s cap belongs to another polyhedron", ErrInvalidOption, opts.Cap.Kind())
	}
	return nil
}

func (p *Pair) pose(f forme.Forme, side Side, e Entry) (Pose, error) {
	if p.def.Pose != nil {
		return p.def.Pose(f, side, e)
	}
	return defaultPose(f, side, e)
}

func (p *Pair) morphDef(to Side) MorphDef {
	if to == Left {
		return p.def.ToLeft
	}
	return p.def.ToRight
}

// alignTo realizes s and moves it from its own pose onto target.
func (p *Pair) alignTo(s specs.Specs, side Side, e Entry, target Pose) (forme.Forme, error) {
	g, err := forme.FromBuilder(p.cfg.builder, s)
	if err != nil {
		return nil, err
	}
	own, err := p.pose(g, side, e)
	if err != nil {
		return nil, err
	}
	sim, err := geom.NewSimilarity(own.Origin, own.Scale, own.Orientation, target.Origin, target.Scale, target.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%s: align %s: %w", p.def.Name, s.Name(), err)
	}
	return forme.CreateForme(s, g.Geom().Transform(sim.Apply))
}

func (p *Pair) applySymbolic(to Side, f forme.Forme, opts Options, skip map[string]bool) (Result, error) {
	from := to.Opposite()
	e, err := p.findEntry(to, f.Specs(), opts.GraphOptions, skip)
	if err != nil {
		return Result{}, err
	}
	start, err := p.pose(f, from, e)
	if err != nil {
		return Result{}, err
	}
	end, err := p.alignTo(e.Spec(to), to, e, start)
	if err != nil {
		return Result{}, err
	}
	if err := polyhedron.Validate(end.Geom(), geom.Precision); err != nil {
		return Result{}, fmt.Errorf("%s: %s: %w", p.def.Name, e.Spec(to).Name(), err)
	}

	var middle forme.Forme
	switch p.def.Middle {
	case from:
		middle = f
	case to:
		middle = end
	default:
		if p.def.Intermediate == nil {
			return Result{}, fmt.Errorf("%w: %s declares no intermediate", ErrNoEntry, p.def.Name)
		}
		s, err := p.def.Intermediate(e)
		if err != nil {
			return Result{}, fmt.Errorf("%s: intermediate: %w", p.def.Name, err)
		}
		if middle, err = p.alignTo(s, Middle, e, start); err != nil {
			return Result{}, err
		}
	}

	toStart := middle.Geom().Vertices()
	if middle != f {
		toStart = morph(middle, f, p.morphDef(from))
	}
	toEnd := middle.Geom().Vertices()
	if middle != end {
		toEnd = morph(middle, end, p.morphDef(to))
	}
	anim, err := middle.Geom().WithVertices(toStart)
	if err != nil {
		return Result{}, err
	}
	return Result{Specs: e.Spec(to), Forme: end, Animation: Animation{Start: anim, EndVertices: toEnd}}, nil
}

// congruenceTol is the relative tolerance for identifying cut/paste
// results.
const congruenceTol = 1e-5

func (p *Pair) applyCut(to Side, f forme.Forme, opts Options, skip map[string]bool) (Result, error) {
	from := to.Opposite()
	g := opts.GraphOptions
	var found []Entry
	for _, e := range p.matching(to, f.Specs(), g, skip) {
		if fitsSelection(e.Options(from), opts) {
			found = append(found, e)
		}
	}
	if len(found) == 0 {
		return Result{}, noEntry(f.Specs(), g)
	}
	done := make(map[string]cutResult)
	for _, e := range found {
		target, err := p.cfg.builder.Realize(e.Spec(to))
		if err != nil {
			return Result{}, err
		}
		for _, m := range p.def.Cut(p.cfg.builder, f, to, e.Options(from), opts) {
			r, ok := done[m.key]
			if !ok {
				r.c, r.err = m.run()
				done[m.key] = r
			}
			if r.err != nil || !polyhedron.Congruent(r.c.geom, target, congruenceTol) {
				continue
			}
			res, err := forme.CreateForme(e.Spec(to), r.c.geom)
			if err != nil {
				return Result{}, err
			}
			p.cfg.logger.Debug("cut/paste identified", "pair", p.def.Name, "move", m.key, "result", e.Spec(to).Name())
			return Result{Specs: e.Spec(to), Forme: res, Animation: r.c.anim}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: %s %s with options %s", ErrUnrecognizedResult, p.def.Name, f.Specs().Name(), g)
}

// fitsSelection drops entries whose declared face size or cap type
// contradicts the selected face or cap.
func fitsSelection(declared GraphOptions, opts Options) bool {
	if opts.HasFace() && declared.FaceType != 0 && declared.FaceType != opts.Face.NumSides() {
		return false
	}
	if opts.HasCap() && declared.Using != "" && declared.Using != capTypeOf(opts.Cap) {
		return false
	}
	return true
}

type cutResult struct {
	c   candidate
	err error
}
