// SPDX-License-Identifier: MIT
// Package: polyhedra/operations
//
// combos.go: the cut/paste option records that really apply to a forme.

package operations

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/forme"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// cutCombos runs every move of every cut/paste entry from f and keeps one
// record per entry options and face or cap whose result is congruent to
// the entry's target. Moves shared by several entries run once.
func (o *Operation) cutCombos(f forme.Forme) []Options {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.last.p == f.Geom() && o.last.s.Equals(f.Specs()) {
		return o.last.combos
	}

	done := make(map[string]cutResult)
	seen := make(map[string]bool)
	var out []Options
	for _, x := range o.entries(f.Specs()) {
		p := x.sub.Pair
		if !p.IsCut() {
			continue
		}
		target, err := p.cfg.builder.Realize(x.target())
		if err != nil {
			o.logger.Debug("target not realized", "operation", o.name, "target", x.target().Name(), "err", err)
			continue
		}
		declared := x.start()
		for _, m := range p.def.Cut(p.cfg.builder, f, x.sub.To, declared, Options{}) {
			r, ok := done[m.key]
			if !ok {
				r.c, r.err = m.run()
				done[m.key] = r
			}
			if r.err != nil || !polyhedron.Congruent(r.c.geom, target, congruenceTol) {
				continue
			}
			c := m.sel
			c.GraphOptions = declared
			if k := comboKey(c); !seen[k] {
				seen[k] = true
				out = append(out, c)
			}
		}
	}
	o.logger.Debug("option records", "operation", o.name, "solid", f.Specs().Name(), "moves", len(done), "records", len(out))
	o.last = comboCache{p: f.Geom(), s: f.Specs(), combos: out}
	return out
}

func comboKey(c Options) string {
	switch {
	case c.HasFace():
		return fmt.Sprintf("%s face %d", c.GraphOptions, c.Face.Index())
	case c.HasCap():
		return fmt.Sprintf("%s cap %s", c.GraphOptions, capKey(c.Cap))
	}
	return c.GraphOptions.String()
}
